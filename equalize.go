package morph

import "fmt"

// Equalize returns a shape with exactly count points that traces the same
// outline as s. New points are inserted by subdividing segments; the points
// of s are kept, in order, with their positions and handle angles intact.
//
// The extra points are handed out one at a time to the segment whose
// estimated length per allotted piece is currently the largest, so longer
// segments receive more points.
//
// Equalize fails with [ErrInsufficientPoints] if s has fewer than three
// points and with [ErrCannotRemovePoints] if count is less than len(s).
func Equalize(count int, s Shape) (Shape, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if count < len(s) {
		return nil, fmt.Errorf("equalize %d points to %d: %w", len(s), count, ErrCannotRemovePoints)
	}
	if count == len(s) {
		return s.Clone(), nil
	}

	n := len(s)
	lengths := make([]float64, n)
	for i := range s {
		lengths[i] = EstimateLength(s[i], s[(i+1)%n])
	}
	divisors := allotDivisors(lengths, count-n)
	Logger().Debug("equalizing shape", "from", n, "to", count, "divisors", divisors)

	out := make(Shape, 0, count+1)
	for i := range s {
		// The previous segment's end point, with its incoming handle already
		// shortened, starts this segment.
		curr := s[i]
		if len(out) > 0 {
			curr = out[len(out)-1]
			out = out[:len(out)-1]
		}
		next := s[(i+1)%n]
		pts, err := SplitInto(divisors[i], curr, next)
		if err != nil {
			return nil, err
		}
		out = append(out, pts...)
	}
	// The final point is the first point again, arriving from the last
	// segment.
	last := out[len(out)-1]
	out = out[:len(out)-1]
	out[0].HandleIn = last.HandleIn
	return out, nil
}

// allotDivisors distributes add extra points over segments of the given
// lengths. It returns, per segment, the number of pieces it is split into.
// Ties between equal densities go to the longer segment, then to the lower
// index.
func allotDivisors(lengths []float64, add int) []int {
	divisors := make([]int, len(lengths))
	sizes := make([]float64, len(lengths))
	for i, l := range lengths {
		divisors[i] = 1
		sizes[i] = l
	}
	for range add {
		best := 0
		for j := 1; j < len(sizes); j++ {
			if sizes[j] > sizes[best] || (sizes[j] == sizes[best] && lengths[j] > lengths[best]) {
				best = j
			}
		}
		divisors[best]++
		sizes[best] = lengths[best] / float64(divisors[best])
	}
	return divisors
}
