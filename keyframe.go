package morph

// EasingFunc maps linear progress in [0, 1] to eased progress. It should be
// monotonic and map 0 to 0 and 1 to 1.
type EasingFunc func(progress float64) float64

// Keyframe is a shape together with the easing used when transitioning into
// it (EaseIn) and out of it (EaseOut). Nil easing functions mean [Linear].
//
// In a [Morph], the source keyframe's EaseOut covers the first half of the
// transition and the target keyframe's EaseIn the second half, so eased
// progress is always exactly 0.5 halfway through, whatever the easings.
type Keyframe struct {
	Shape   Shape
	EaseIn  EasingFunc
	EaseOut EasingFunc
}

// Linear is the identity easing.
func Linear(t float64) float64 {
	return t
}

var (
	// EaseIn starts slowly and accelerates.
	EaseIn = CubicBezierEasing(0.42, 0, 1, 1)
	// EaseOut starts quickly and decelerates.
	EaseOut = CubicBezierEasing(0, 0, 0.58, 1)
	// EaseInOut accelerates and then decelerates.
	EaseInOut = CubicBezierEasing(0.42, 0, 0.58, 1)
)

// CubicBezierEasing returns the easing described by the cubic Bézier curve
// starting at (0, 0) towards (x1, y1) and arriving at (1, 1) from (x2, y2),
// in the manner of CSS timing functions. x1 and x2 should lie in [0, 1].
func CubicBezierEasing(x1, y1, x2, y2 float64) EasingFunc {
	bez := func(t, p1, p2 float64) float64 {
		mt := 1 - t
		return 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t
	}
	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}
		// Solve x(t) = x with Newton's method, falling back to bisection
		// when the derivative vanishes or Newton leaves the interval.
		t := x
		for range 8 {
			mt := 1 - t
			dx := 3*mt*mt*x1 + 6*mt*t*(x2-x1) + 3*t*t*(1-x2)
			if dx == 0 {
				break
			}
			next := t - (bez(t, x1, x2)-x)/dx
			if next <= 0 || next >= 1 {
				break
			}
			t = next
		}
		if d := bez(t, x1, x2) - x; d > 1e-7 || d < -1e-7 {
			lo, hi := 0.0, 1.0
			for range 60 {
				t = (lo + hi) / 2
				if bez(t, x1, x2) < x {
					lo = t
				} else {
					hi = t
				}
			}
		}
		return bez(t, y1, y2)
	}
}

func easeOrLinear(f EasingFunc) EasingFunc {
	if f == nil {
		return Linear
	}
	return f
}
