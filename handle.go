package morph

import "fmt"

// Handle is a Bézier control handle in polar form, relative to the point that
// owns it.
type Handle struct {
	// Angle in radians, clockwise from the 3 o'clock direction.
	Angle float64
	// Length of the handle; never negative.
	Length float64
}

// Expand returns the absolute position of the handle's tip when the handle
// is attached to origin.
func (h Handle) Expand(origin Coord) Coord {
	return origin.Translate(VecFromAngle(h.Angle).Mul(h.Length))
}

// Scale returns the handle with its length multiplied by f. The angle is
// kept, even when the resulting length is zero.
func (h Handle) Scale(f float64) Handle {
	return Handle{Angle: h.Angle, Length: h.Length * f}
}

func (h Handle) String() string {
	return fmt.Sprintf("∠%g×%g", h.Angle, h.Length)
}

// HandleTo returns the handle that, attached to origin, has its tip at tip.
// It is the inverse of [Handle.Expand]; the angle is normalized into
// [0, 2π). A tip equal to origin yields a zero-length handle with angle 0.
func HandleTo(origin, tip Coord) Handle {
	d := tip.Sub(origin)
	return Handle{
		Angle:  d.Angle(),
		Length: d.Hypot(),
	}
}
