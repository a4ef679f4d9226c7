package morph_test

import (
	"fmt"

	"honnef.co/go/morph"
)

func square() morph.Shape {
	return morph.Shape{
		{Coord: morph.Pt(0, 0)},
		{Coord: morph.Pt(1, 0)},
		{Coord: morph.Pt(1, 1)},
		{Coord: morph.Pt(0, 1)},
	}
}

func ExampleEqualize() {
	s, err := morph.Equalize(8, square())
	if err != nil {
		panic(err)
	}
	for _, p := range s {
		fmt.Printf("(%.2f, %.2f)\n", p.X, p.Y)
	}
	// Output:
	// (0.00, 0.00)
	// (0.50, 0.00)
	// (1.00, 0.00)
	// (1.00, 0.50)
	// (1.00, 1.00)
	// (0.50, 1.00)
	// (0.00, 1.00)
	// (0.00, 0.50)
}

func ExampleAlign() {
	a := square()
	// The same square, listed starting from its second corner.
	b := a.Rotate(1)

	k, err := morph.BestOffset(a.Coords(), b.Coords())
	if err != nil {
		panic(err)
	}
	fmt.Println("offset:", k)

	aligned, err := morph.Align(a, b)
	if err != nil {
		panic(err)
	}
	mid, err := morph.Interpolate(0.5, a, aligned)
	if err != nil {
		panic(err)
	}
	fmt.Println(morph.SVG(mid.PathElements(), morph.SVGOptions{MaxPrecision: 3}))
	// Output:
	// offset: 3
	// M0,0 C0,0 1,0 1,0 C1,0 1,1 1,1 C1,1 0,1 0,1 C0,1 0,0 0,0 Z
}

func ExampleNewMorph() {
	triangle := morph.Shape{
		{Coord: morph.Pt(0, 0)},
		{Coord: morph.Pt(2, 0)},
		{Coord: morph.Pt(1, 2)},
	}
	m, err := morph.NewMorph(
		morph.Keyframe{Shape: triangle},
		morph.Keyframe{Shape: square(), EaseIn: morph.EaseInOut},
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(m.From()), len(m.To()))
	fmt.Println(len(m.At(0.5)))
	// Output:
	// 4 4
	// 4
}
