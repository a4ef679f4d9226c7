package morph

import "errors"

var (
	// ErrInsufficientPoints is returned when a shape has fewer than three
	// points where a closed outline is required.
	ErrInsufficientPoints = errors.New("morph: shape needs at least 3 points")
	// ErrCannotRemovePoints is returned by [Equalize] when asked to reduce a
	// shape's point count.
	ErrCannotRemovePoints = errors.New("morph: cannot remove points")
	// ErrShapeLengthMismatch is returned when two shapes or coordinate
	// sequences that must correspond point by point differ in length.
	ErrShapeLengthMismatch = errors.New("morph: shapes have different number of points")
	// ErrInvalidParameter is returned when a subdivision parameter is out of
	// range.
	ErrInvalidParameter = errors.New("morph: invalid parameter")
)
