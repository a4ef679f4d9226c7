package main

import (
	"fmt"

	"honnef.co/go/morph"
)

// pt returns a point given in canvas fractions, scaled to size. Handle
// angles are in degrees.
func pt(size, x, y, ia, il, oa, ol float64) morph.Point {
	return morph.PointDeg(x*size, y*size, ia, il*size, oa, ol*size)
}

// blob is a rounded square.
func blob(size float64) morph.Shape {
	return morph.Shape{
		pt(size, 0.35, 0.35, 135, 0.15, -45, 0.15),
		pt(size, 0.65, 0.35, -135, 0.15, 45, 0.15),
		pt(size, 0.65, 0.65, -45, 0.15, 135, 0.15),
		pt(size, 0.35, 0.65, 45, 0.15, 225, 0.15),
	}
}

// diamond has sharp corners; its handles have zero length.
func diamond(size float64) morph.Shape {
	return morph.Shape{
		pt(size, 0.5, 0.35, 180, 0, 0, 0),
		pt(size, 0.65, 0.5, -90, 0, 90, 0),
		pt(size, 0.5, 0.65, 360*10, 0, 180, 0),
		pt(size, 0.35, 0.5, 90, 0, -90, 0),
	}
}

// triangle is a curved three-point shape.
func triangle(size float64) morph.Shape {
	return morph.Shape{
		pt(size, 0.5, 0.3, -10, 0.1, -45, 0.03),
		pt(size, 0.7, 0.65, 180, 0.03, 0, 0.03),
		pt(size, 0.3, 0.65, -135, 0.03, 170, 0.1),
	}
}

func demoPair(name string, size float64) (morph.Keyframe, morph.Keyframe, error) {
	shapes := map[string]func(float64) morph.Shape{
		"blob":     blob,
		"diamond":  diamond,
		"triangle": triangle,
	}
	pairs := map[string][2]string{
		"blob-diamond":     {"blob", "diamond"},
		"blob-triangle":    {"blob", "triangle"},
		"triangle-diamond": {"triangle", "diamond"},
	}
	p, ok := pairs[name]
	if !ok {
		return morph.Keyframe{}, morph.Keyframe{}, fmt.Errorf("unknown shape pair %q", name)
	}
	from := morph.Keyframe{Shape: shapes[p[0]](size), EaseOut: morph.EaseIn}
	to := morph.Keyframe{Shape: shapes[p[1]](size), EaseIn: morph.EaseOut}
	return from, to, nil
}
