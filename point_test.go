package morph

import (
	"testing"
)

func TestCoordArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Translate(Vec(-10, 0)))
	diff(t, Vec(3, -4), Pt(4, 0).Sub(Pt(1, 4)))
}

func TestCoordDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestCoordLerpEndpoints(t *testing.T) {
	a := Pt(0.1, 0.7)
	b := Pt(0.3, -10)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("got %v at t=0, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("got %v at t=1, want %v", got, b)
	}
	diff(t, Pt(0.2, -4.65), a.Lerp(b, 0.5), coordComparer)
}

func TestPointHandleTips(t *testing.T) {
	p := PointDeg(10, 10, 180, 5, 90, 2)
	diff(t, Pt(5, 10), p.In(), coordComparer)
	diff(t, Pt(10, 12), p.Out(), coordComparer)
}

func TestPointCopiesHandles(t *testing.T) {
	p := PointDeg(0, 0, 0, 1, 0, 1)
	q := p
	q.HandleOut.Length = 5
	if p.HandleOut.Length != 1 {
		t.Errorf("modifying a copy changed the original handle")
	}
}
