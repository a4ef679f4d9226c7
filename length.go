package morph

// EstimateLength approximates the length of the segment from a to b. It
// averages the chord length plus the distance between the handle tips with
// the sum of the two handle lengths:
//
//	(|b−a| + |b.In−a.Out| + |a.HandleOut| + |b.HandleIn|) / 2
//
// The estimate is cheap and correlates with the true arc length, which is all
// that comparing segments against each other requires.
func EstimateLength(a, b Point) float64 {
	chord := a.Distance(b.Coord)
	handleChord := a.Out().Distance(b.In())
	return (chord + handleChord + a.HandleOut.Length + b.HandleIn.Length) / 2
}
