package morph

import "fmt"

// Interpolate returns the shape at progress t between a and b. Point i of the
// result lies at t between point i of a and of b; its handle lengths are
// interpolated linearly and its handle angles along the shorter arc.
//
// For t = 0 the result has the positions and handles of a, for t = 1 those of
// b. Interpolate does not align the shapes; use [Equalize] and [Align] first
// when they were not authored to correspond.
//
// Interpolate fails with [ErrShapeLengthMismatch] if the shapes differ in
// point count.
func Interpolate(t float64, a, b Shape) (Shape, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("interpolate %d and %d points: %w", len(a), len(b), ErrShapeLengthMismatch)
	}
	out := make(Shape, len(a))
	for i := range a {
		out[i] = Point{
			Coord:     a[i].Coord.Lerp(b[i].Coord, t),
			HandleIn:  lerpHandle(t, a[i].HandleIn, b[i].HandleIn),
			HandleOut: lerpHandle(t, a[i].HandleOut, b[i].HandleOut),
		}
	}
	return out, nil
}

func lerpHandle(t float64, a, b Handle) Handle {
	return Handle{
		Angle:  LerpAngle(t, a.Angle, b.Angle),
		Length: Lerp(t, a.Length, b.Length),
	}
}
