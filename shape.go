package morph

import (
	"fmt"
	"iter"
	"slices"
)

// Shape is a closed outline: a cyclic sequence of points where the last point
// connects back to the first.
type Shape []Point

// Validate reports whether s has enough points to enclose an area.
func (s Shape) Validate() error {
	if len(s) < 3 {
		return fmt.Errorf("shape with %d points: %w", len(s), ErrInsufficientPoints)
	}
	return nil
}

// Clone returns a copy of s.
func (s Shape) Clone() Shape {
	return slices.Clone(s)
}

// Rotate returns a copy of s whose point j is point (j+k) mod n of s. k may
// be negative.
func (s Shape) Rotate(k int) Shape {
	n := len(s)
	if n == 0 {
		return Shape{}
	}
	k %= n
	if k < 0 {
		k += n
	}
	out := make(Shape, 0, n)
	out = append(out, s[k:]...)
	return append(out, s[:k]...)
}

// Coords returns the positions of the points of s.
func (s Shape) Coords() []Coord {
	out := make([]Coord, len(s))
	for i, p := range s {
		out[i] = p.Coord
	}
	return out
}

// Segment returns segment i of s, which runs from point i to point
// (i+1) mod n.
func (s Shape) Segment(i int) CubicBez {
	return Segment(s[i], s[(i+1)%len(s)])
}

// Segments iterates over the segments of s in order.
func (s Shape) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for i := range s {
			if !yield(s.Segment(i)) {
				return
			}
		}
	}
}

// Perimeter returns the sum of the estimated lengths of all segments. See
// [EstimateLength].
func (s Shape) Perimeter() float64 {
	var sum float64
	for i := range s {
		sum += EstimateLength(s[i], s[(i+1)%len(s)])
	}
	return sum
}

// PathElements returns the path a renderer traces to draw s: a move to the
// first point, one cubic per segment, and a closing element. An empty shape
// produces no elements.
func (s Shape) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(s) == 0 {
			return
		}
		if !yield(MoveTo(s[0].Coord)) {
			return
		}
		for seg := range s.Segments() {
			if !yield(CubicTo(seg.P1, seg.P2, seg.P3)) {
				return
			}
		}
		yield(ClosePath())
	}
}
