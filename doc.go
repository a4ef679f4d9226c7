// Package morph computes smooth transitions between two closed shapes made
// of cubic Bézier segments, even when the shapes have different numbers of
// points.
//
// # Shapes and points
//
// A [Shape] is a cyclic sequence of [Point] values. Each point carries an
// incoming and an outgoing [Handle], expressed in polar form relative to the
// point: an angle in radians, measured clockwise from the positive x axis
// (the coordinate system is y-down), and a length. Segment i runs from point
// i, leaving along its outgoing handle, to point (i+1) mod n, arriving along
// that point's incoming handle. [Shape.Segment] returns the equivalent
// control-point form as a [CubicBez].
//
// All functions treat their arguments as immutable and return new values.
//
// # Morphing
//
// Morphing two shapes takes three steps, each of which is exposed on its own:
//
//   - [Equalize] raises the point count of a shape by subdividing its
//     segments, distributing the new points proportionally to the estimated
//     length of each segment. Existing points are never moved.
//   - [BestOffset] finds the cyclic rotation of one shape's points that
//     minimizes the total distance to the other shape's points. [Shape.Rotate]
//     and [Align] apply it.
//   - [Interpolate] produces the intermediate shape for a progress value in
//     [0, 1], interpolating positions linearly and handle angles along the
//     shorter arc.
//
// [NewMorph] composes the three for a pair of [Keyframe] values.
//
// # Subdivision
//
// [SplitAt] splits a single segment at a parameter using de Casteljau's
// construction, re-deriving the handles of both endpoints and of the new
// point. [SplitInto] splits a segment into n parts of equal parametric share.
//
// # Rendering
//
// This package does not draw. [Shape.PathElements] describes the closed path
// as a sequence of [PathElement] values that a renderer can trace, and
// [WriteSVG] formats them as SVG path data. The raster subpackage fills
// shapes into images.
package morph
