package morph

import (
	"testing"
)

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}
	diff(t, c.P0, c.Eval(0), coordComparer)
	diff(t, c.P3, c.Eval(1), coordComparer)
	diff(t, Pt(0.5, 0.75), c.Eval(0.5), coordComparer)
}

func TestShapeSegmentWraps(t *testing.T) {
	s := curvy()
	want := CubicBez{s[3].Coord, s[3].Out(), s[0].In(), s[0].Coord}
	diff(t, want, s.Segment(3))
}
