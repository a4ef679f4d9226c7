package morph

import "fmt"

// SplitAt splits the segment from a to b at t ∈ (0, 1).
//
// It returns a copy of a with its outgoing handle shortened, the new point on
// the curve, and a copy of b with its incoming handle shortened. The three
// points describe the same curve as the original segment.
//
// The new point is found with de Casteljau's construction. With f the point
// at t between the two original handle tips, g the point at t between a's
// shortened handle tip and f, and h the point at t between f and b's
// shortened handle tip, the new point lies at t between g and h, and its
// handles point at g and h.
func SplitAt(t float64, a, b Point) (Point, Point, Point, error) {
	if !(t > 0 && t < 1) {
		return Point{}, Point{}, Point{}, fmt.Errorf("split at %g: %w", t, ErrInvalidParameter)
	}
	c := a
	c.HandleOut = a.HandleOut.Scale(t)
	e := b
	e.HandleIn = b.HandleIn.Scale(1 - t)

	f := a.Out().Lerp(b.In(), t)
	g := c.Out().Lerp(f, t)
	h := e.In().Lerp(f, 1-t)
	dc := g.Lerp(h, t)

	d := Point{
		Coord:     dc,
		HandleIn:  HandleTo(dc, g),
		HandleOut: HandleTo(dc, h),
	}
	return c, d, e, nil
}

// SplitInto splits the segment from a to b into n segments of equal
// parametric share, returning the n+1 points delimiting them. The first and
// last points are copies of a and b with shortened handles. For n = 1 it
// returns a and b unchanged. n must be at least 1; smaller values fail with
// [ErrInvalidParameter].
//
// Each step splits the remaining tail at 1/k, where k is the number of
// segments still owed, so that every piece ends up with 1/n of the original
// parameter range.
func SplitInto(n int, a, b Point) ([]Point, error) {
	if n < 1 {
		return nil, fmt.Errorf("split into %d: %w", n, ErrInvalidParameter)
	}
	out := make([]Point, 0, n+1)
	head, tail := a, b
	for k := n; k >= 2; k-- {
		c, d, e, err := SplitAt(1/float64(k), head, tail)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		head, tail = d, e
	}
	return append(out, head, tail), nil
}
