package morph

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestShapeValidate(t *testing.T) {
	if err := unitSquare().Validate(); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	for n := range 3 {
		if err := unitSquare()[:n].Validate(); !errors.Is(err, ErrInsufficientPoints) {
			t.Errorf("%d points: got error %v, want ErrInsufficientPoints", n, err)
		}
	}
}

func TestShapeRotate(t *testing.T) {
	s := irregular()
	coords := s.Coords()
	tests := []struct {
		k     int
		first Coord
	}{
		{0, coords[0]},
		{1, coords[1]},
		{5, coords[5]},
		{6, coords[0]},
		{-1, coords[5]},
		{-7, coords[5]},
		{14, coords[2]},
	}
	for _, tt := range tests {
		got := s.Rotate(tt.k)
		if len(got) != len(s) {
			t.Fatalf("Rotate(%d) returned %d points, want %d", tt.k, len(got), len(s))
		}
		if got[0].Coord != tt.first {
			t.Errorf("Rotate(%d) starts at %v, want %v", tt.k, got[0].Coord, tt.first)
		}
	}
	if got := Shape(nil).Rotate(3); len(got) != 0 {
		t.Errorf("rotating an empty shape returned %d points", len(got))
	}
	// Rotate must not alias its input.
	r := s.Rotate(2)
	r[0].X = 100
	if slices.ContainsFunc(s, func(p Point) bool { return p.X == 100 }) {
		t.Errorf("rotated shape shares memory with the input")
	}
}

func TestShapePerimeter(t *testing.T) {
	if got := unitSquare().Perimeter(); got != 4 {
		t.Errorf("got perimeter %v, want 4", got)
	}
}

func TestShapePathElements(t *testing.T) {
	s := curvy()
	var els []PathElement
	for el := range s.PathElements() {
		els = append(els, el)
	}
	if len(els) != len(s)+2 {
		t.Fatalf("got %d elements, want %d", len(els), len(s)+2)
	}
	diff(t, MoveTo(s[0].Coord), els[0])
	for i := range s {
		seg := s.Segment(i)
		diff(t, CubicTo(seg.P1, seg.P2, seg.P3), els[i+1])
	}
	diff(t, ClosePath(), els[len(els)-1])

	var n int
	for range Shape(nil).PathElements() {
		n++
	}
	if n != 0 {
		t.Errorf("empty shape produced %d elements", n)
	}
}

func TestSVG(t *testing.T) {
	got := SVG(unitSquare().PathElements(), SVGOptions{})
	want := "M0,0 C0,0 1,0 1,0 C1,0 1,1 1,1 C1,1 0,1 0,1 C0,1 0,0 0,0 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSVGPrecision(t *testing.T) {
	els := []PathElement{MoveTo(Pt(1.23456, 2)), CubicTo(Pt(10, 0.5), Pt(0.126, 3), Pt(100, 7.999)), ClosePath()}
	got := SVG(slices.Values(els), SVGOptions{MaxPrecision: 2})
	want := "M1.23,2 C10,0.5 0.13,3 100,8 Z"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(b []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("write failed")
	}
	w.n--
	return len(b), nil
}

func TestWriteSVGError(t *testing.T) {
	err := WriteSVG(&failingWriter{n: 1}, unitSquare().PathElements(), SVGOptions{})
	if err == nil || !strings.Contains(err.Error(), "write failed") {
		t.Errorf("got error %v, want write failure", err)
	}
}

func TestPathElementString(t *testing.T) {
	if got := MoveTo(Pt(1, 2)).String(); !strings.HasPrefix(got, "MoveTo((1, 2)") {
		t.Errorf("got %q", got)
	}
	if got := (PathElement{}).String(); !strings.HasPrefix(got, "InvalidPathElement") {
		t.Errorf("got %q", got)
	}
}
