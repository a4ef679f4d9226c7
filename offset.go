package morph

import (
	"fmt"
	"math"
)

// BestOffset returns the cyclic rotation of b that best matches a: the
// offset k minimizing the sum over j of the distance between a[j] and
// b[(j+k) mod m]. Rotating b's shape by k with [Shape.Rotate] aligns it
// with a.
//
// Only rotations are considered; the cyclic order of points is preserved.
// Candidate sums are abandoned as soon as they exceed the best sum found so
// far. When several rotations tie, the smallest offset wins.
//
// BestOffset fails with [ErrShapeLengthMismatch] if a and b differ in
// length. Empty sequences have offset 0.
func BestOffset(a, b []Coord) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("best offset of %d and %d coordinates: %w", len(a), len(b), ErrShapeLengthMismatch)
	}
	m := len(a)
	best := math.Inf(1)
	offset := 0
	for k := range m {
		var sum float64
		for j := range m {
			sum += a[j].Distance(b[(j+k)%m])
			if sum > best {
				break
			}
		}
		if sum < best {
			best = sum
			offset = k
		}
	}
	Logger().Debug("found best offset", "points", m, "offset", offset, "distance", best)
	return offset, nil
}

// Align returns b rotated so that its points correspond to the points of a
// with the least total travel. See [BestOffset].
func Align(a, b Shape) (Shape, error) {
	k, err := BestOffset(a.Coords(), b.Coords())
	if err != nil {
		return nil, err
	}
	return b.Rotate(k), nil
}
