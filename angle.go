package morph

import "math"

const tau = 2 * math.Pi

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg / 360 * tau
}

// Lerp linearly interpolates between a and b. It computes a + t·(b−a) in a
// form that returns a exactly for t = 0 and b exactly for t = 1.
func Lerp(t, a, b float64) float64 {
	return (1-t)*a + t*b
}

// NormalizeAngle maps an angle in radians into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, tau)
	if a < 0 {
		a += tau
	}
	if a >= tau {
		// a was a tiny negative number and the addition rounded up.
		a = 0
	}
	return a
}

// LerpAngle interpolates between the angles a and b along the shorter of the
// two arcs connecting them. The result is normalized into [0, 2π).
func LerpAngle(t, a, b float64) float64 {
	na := NormalizeAngle(a)
	nb := NormalizeAngle(b)
	if math.Abs(na-nb) > math.Pi {
		if na < nb {
			na += tau
		} else {
			nb += tau
		}
	}
	return NormalizeAngle(Lerp(t, na, nb))
}
