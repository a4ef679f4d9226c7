package morph

// CubicBez is a cubic Bézier segment in control-point form.
type CubicBez struct {
	P0 Coord
	P1 Coord
	P2 Coord
	P3 Coord
}

func (c CubicBez) Eval(t float64) Coord {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	d := Vec2(c.P2).Mul(mt * 3.0)
	e := Vec2(c.P3)
	v := a.Add(b.Add(d.Add(e.Mul(t)).Mul(t)).Mul(t))
	return Coord(v)
}

// Segment returns the cubic running from a, along a's outgoing handle, to b,
// arriving along b's incoming handle.
func Segment(a, b Point) CubicBez {
	return CubicBez{a.Coord, a.Out(), b.In(), b.Coord}
}
