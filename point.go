package morph

import (
	"fmt"
	"math"
)

// Coord is a position on the canvas. The origin is the top-left corner and y
// grows downwards.
type Coord struct {
	X float64
	Y float64
}

// Pt returns the coordinate (x, y).
func Pt(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

func (pt Coord) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

func (pt Coord) Translate(o Vec2) Coord {
	return Coord{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Coord) Sub(o Coord) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two coordinates. The result is exactly
// pt for t = 0 and exactly o for t = 1.
func (pt Coord) Lerp(o Coord, t float64) Coord {
	return Coord{
		X: Lerp(t, pt.X, o.X),
		Y: Lerp(t, pt.Y, o.Y),
	}
}

// Distance returns the euclidean distance between two coordinates.
func (pt Coord) Distance(o Coord) float64 {
	x := pt.X - o.X
	y := pt.Y - o.Y
	return math.Hypot(x, y)
}

// Point is an on-curve point of a [Shape] together with the handles of the
// two segments meeting at it.
type Point struct {
	Coord
	// HandleIn controls the segment arriving at the point.
	HandleIn Handle
	// HandleOut controls the segment leaving the point.
	HandleOut Handle
}

// PointDeg returns a point at (x, y) whose handle angles are given in
// degrees.
func PointDeg(x, y, inDeg, inLen, outDeg, outLen float64) Point {
	return Point{
		Coord:     Pt(x, y),
		HandleIn:  Handle{Angle: Rad(inDeg), Length: inLen},
		HandleOut: Handle{Angle: Rad(outDeg), Length: outLen},
	}
}

// In returns the absolute position of the incoming handle's tip.
func (p Point) In() Coord {
	return p.HandleIn.Expand(p.Coord)
}

// Out returns the absolute position of the outgoing handle's tip.
func (p Point) Out() Coord {
	return p.HandleOut.Expand(p.Coord)
}

func (p Point) String() string {
	return fmt.Sprintf("%s in=%s out=%s", p.Coord, p.HandleIn, p.HandleOut)
}
