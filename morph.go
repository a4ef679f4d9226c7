package morph

import (
	"fmt"
	"math"
)

// Morph is a prepared transition between two keyframes. Both shapes have been
// equalized to the same point count and the target's points rotated to
// correspond to the source's.
type Morph struct {
	from, to  Shape
	easeOut   EasingFunc
	easeIn    EasingFunc
	rotatedBy int
}

// NewMorph prepares the transition from one keyframe to another. The shape
// with fewer points is equalized to the other's count and the target shape is
// aligned with [Align].
func NewMorph(from, to Keyframe) (*Morph, error) {
	if err := from.Shape.Validate(); err != nil {
		return nil, fmt.Errorf("source keyframe: %w", err)
	}
	if err := to.Shape.Validate(); err != nil {
		return nil, fmt.Errorf("target keyframe: %w", err)
	}
	n := max(len(from.Shape), len(to.Shape))
	a, err := Equalize(n, from.Shape)
	if err != nil {
		return nil, err
	}
	b, err := Equalize(n, to.Shape)
	if err != nil {
		return nil, err
	}
	k, err := BestOffset(a.Coords(), b.Coords())
	if err != nil {
		return nil, err
	}
	Logger().Debug("prepared morph", "from", len(from.Shape), "to", len(to.Shape), "points", n, "offset", k)
	return &Morph{
		from:      a,
		to:        b.Rotate(k),
		easeOut:   easeOrLinear(from.EaseOut),
		easeIn:    easeOrLinear(to.EaseIn),
		rotatedBy: k,
	}, nil
}

// From returns the equalized source shape.
func (m *Morph) From() Shape { return m.from.Clone() }

// To returns the equalized and aligned target shape.
func (m *Morph) To() Shape { return m.to.Clone() }

// Offset returns the rotation that was applied to the target's points.
func (m *Morph) Offset() int { return m.rotatedBy }

// Progress maps linear progress to eased progress. The source keyframe's
// EaseOut shapes the first half of the transition and the target keyframe's
// EaseIn the second half. t is clamped to [0, 1].
func (m *Morph) Progress(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	if t < 0.5 {
		return m.easeOut(2*t) / 2
	}
	return 0.5 + m.easeIn(2*t-1)/2
}

// At returns the shape at linear progress t ∈ [0, 1].
func (m *Morph) At(t float64) Shape {
	s, err := Interpolate(m.Progress(t), m.from, m.to)
	if err != nil {
		panic(fmt.Sprintf("morph shapes out of sync: %s", err))
	}
	return s
}

// PingPong maps progress t ∈ [0, 1] to a forward-then-back progress: it rises
// from 0 to 1 over the first half and returns to 0 over the second.
func PingPong(t float64) float64 {
	if t < 0.5 {
		return 2 * t
	}
	return 2 - 2*t
}

// Advance steps progress t by step, wrapping around into [0, 1).
func Advance(t, step float64) float64 {
	t = math.Mod(t+step, 1)
	if t < 0 {
		t++
	}
	return t
}
