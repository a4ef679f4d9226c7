// Package raster draws morph shapes into images.
//
// Shapes are filled with an anti-aliased rasterizer from
// golang.org/x/image/vector. Optionally, the handles of every point and the
// points themselves are drawn on top, which is useful when inspecting the
// output of subdivision.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"honnef.co/go/morph"

	"golang.org/x/image/vector"
)

// circleKappa is the handle length, relative to the radius, of a cubic
// quarter circle.
const circleKappa = 0.5522847498

// Options configures how shapes are drawn.
type Options struct {
	// Size is the width and height of canvases created by [NewCanvas].
	Size int
	// Fill is the color the shape's interior is painted with.
	Fill color.Color
	// Background is the color [NewCanvas] clears canvases to.
	Background color.Color

	// DebugHandles enables drawing handle lines and point markers.
	DebugHandles bool
	// HandleInColor and HandleOutColor color the incoming and outgoing
	// handle lines.
	HandleInColor  color.Color
	HandleOutColor color.Color
	// PointColor colors the on-curve point markers.
	PointColor color.Color
	// PointSize is the radius of point markers.
	PointSize float64
	// LineWidth is the width of handle lines.
	LineWidth float64
}

// DefaultOptions returns the options used by the demo.
func DefaultOptions() Options {
	return Options{
		Size:           1000,
		Fill:           color.RGBA{0x33, 0x33, 0x33, 0xff},
		Background:     color.White,
		DebugHandles:   false,
		HandleInColor:  color.RGBA{0xcc, 0xcc, 0xcc, 0xff},
		HandleOutColor: color.RGBA{0xbb, 0x66, 0xbb, 0xff},
		PointColor:     color.Black,
		PointSize:      2,
		LineWidth:      1,
	}
}

// NewCanvas returns an opts.Size × opts.Size image cleared to the background
// color.
func NewCanvas(opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	return img
}

// Draw paints s onto dst. It fails with [morph.ErrInsufficientPoints] if s
// cannot describe a closed outline; nothing is drawn in that case.
func Draw(dst draw.Image, s morph.Shape, opts Options) error {
	if err := s.Validate(); err != nil {
		return err
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	off := morph.Pt(float64(b.Min.X), float64(b.Min.Y))

	tracePath(z, s, off)
	fill(dst, z, opts.Fill)

	if !opts.DebugHandles {
		return nil
	}
	for _, p := range s {
		z.Reset(b.Dx(), b.Dy())
		line(z, p.Coord, p.In(), opts.LineWidth, off)
		fill(dst, z, opts.HandleInColor)

		z.Reset(b.Dx(), b.Dy())
		line(z, p.Coord, p.Out(), opts.LineWidth, off)
		fill(dst, z, opts.HandleOutColor)

		z.Reset(b.Dx(), b.Dy())
		dot(z, p.Coord, opts.PointSize, off)
		fill(dst, z, opts.PointColor)
	}
	return nil
}

func fill(dst draw.Image, z *vector.Rasterizer, c color.Color) {
	b := dst.Bounds()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// tracePath feeds the shape's path elements to the rasterizer, translated so
// that off maps to the rasterizer's origin.
func tracePath(z *vector.Rasterizer, s morph.Shape, off morph.Coord) {
	pt := func(c morph.Coord) (float32, float32) {
		return float32(c.X - off.X), float32(c.Y - off.Y)
	}
	for el := range s.PathElements() {
		switch el.Kind {
		case morph.MoveToKind:
			z.MoveTo(pt(el.P0))
		case morph.CubicToKind:
			x1, y1 := pt(el.P0)
			x2, y2 := pt(el.P1)
			x3, y3 := pt(el.P2)
			z.CubeTo(x1, y1, x2, y2, x3, y3)
		case morph.ClosePathKind:
			z.ClosePath()
		default:
			panic("unreachable")
		}
	}
}

// line adds a rectangle of the given width centered on the segment from a to
// b. Degenerate segments add nothing.
func line(z *vector.Rasterizer, a, b morph.Coord, width float64, off morph.Coord) {
	d := b.Sub(a)
	l := d.Hypot()
	if l == 0 || width <= 0 {
		return
	}
	n := d.Mul(width / 2 / l).Perp()
	corners := [4]morph.Coord{
		a.Translate(n),
		b.Translate(n),
		b.Translate(n.Mul(-1)),
		a.Translate(n.Mul(-1)),
	}
	z.MoveTo(float32(corners[0].X-off.X), float32(corners[0].Y-off.Y))
	for _, c := range corners[1:] {
		z.LineTo(float32(c.X-off.X), float32(c.Y-off.Y))
	}
	z.ClosePath()
}

// dot adds a circle of radius r around c, built from four cubic quarter
// arcs.
func dot(z *vector.Rasterizer, c morph.Coord, r float64, off morph.Coord) {
	if r <= 0 {
		return
	}
	k := r * circleKappa
	x, y := float32(c.X-off.X), float32(c.Y-off.Y)
	fr, fk := float32(r), float32(k)
	z.MoveTo(x+fr, y)
	z.CubeTo(x+fr, y+fk, x+fk, y+fr, x, y+fr)
	z.CubeTo(x-fk, y+fr, x-fr, y+fk, x-fr, y)
	z.CubeTo(x-fr, y-fk, x-fk, y-fr, x, y-fr)
	z.CubeTo(x+fk, y-fr, x+fr, y-fk, x+fr, y)
	z.ClosePath()
}

// Bounds returns the smallest integer rectangle containing every point and
// handle tip of s. The curve itself never leaves the convex hull of these.
func Bounds(s morph.Shape) image.Rectangle {
	if len(s) == 0 {
		return image.Rectangle{}
	}
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, p := range s {
		for _, c := range [...]morph.Coord{p.Coord, p.In(), p.Out()} {
			x0, y0 = math.Min(x0, c.X), math.Min(y0, c.Y)
			x1, y1 = math.Max(x1, c.X), math.Max(y1, c.Y)
		}
	}
	return image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1)))
}
