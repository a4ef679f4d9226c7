package morph

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// angleDistance returns the length of the shorter arc between two angles.
func angleDistance(a, b float64) float64 {
	d := NormalizeAngle(a - b)
	return math.Min(d, tau-d)
}

var coordComparer = cmp.Comparer(func(a, b Coord) bool {
	return a.Distance(b) <= 1e-7
})

var handleComparer = cmp.Comparer(func(a, b Handle) bool {
	return math.Abs(a.Length-b.Length) <= 1e-7 && angleDistance(a.Angle, b.Angle) <= 1e-9
})

// curvy is a rounded square with handles of different lengths.
func curvy() Shape {
	return Shape{
		PointDeg(150, 150, 135, 100, 315, 200),
		PointDeg(850, 150, 225, 100, 45, 200),
		PointDeg(850, 850, 315, 100, 135, 200),
		PointDeg(150, 850, 45, 100, 225, 200),
	}
}

func unitSquare() Shape {
	return Shape{
		{Coord: Pt(0, 0)},
		{Coord: Pt(1, 0)},
		{Coord: Pt(1, 1)},
		{Coord: Pt(0, 1)},
	}
}
