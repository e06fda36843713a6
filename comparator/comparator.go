// Package comparator implements C3, the segment comparator: the above/below
// predicate the status structure uses to order segments currently crossing
// the sweep line.
package comparator

import (
	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/segment"
	"github.com/segsweep/segsweep/types"
)

// Compare decides whether a lies above b (positive), below b (negative), at
// the current sweep position, given that a and b are known to overlap in x.
// It returns 0 only when rle's left endpoint lies on ref's line within tol and
// the two direction vectors are exactly parallel (collinear segments). The
// result for two segments meeting head-to-tail is not meaningful; the sweep
// driver is responsible for avoiding that case (see §4.3).
//
// The segment with the rightmost left endpoint ("rle") is tested against the
// other segment's ("ref") supporting line: the signed cross product of ref's
// unit direction with the vector from ref's left endpoint to rle's left
// endpoint decides the side. (Using ref's left endpoint rather than its right
// endpoint, as worded in the reference, is equivalent: both lie on ref's
// line, and the cross product of a direction with itself is zero, so the
// choice of anchor point along that line does not change the sign.)
//
// Ties within tol (a T-junction, shared endpoint, or near-parallel touch) are
// broken by the signed cross product of the two segments' own direction
// vectors, ordering them by counterclockwise angle -- the order they will
// have on the far side of the shared point.
func Compare(a, b segment.Segment, tol float64) int {
	ref, rle, refIsA := pickRef(a, b)

	refDir := ref.UnitVector()
	refTip := ref.P1().Add(refDir)
	switch point.Orientation(ref.P1(), refTip, rle.P1(), tol) {
	case types.PointsCounterClockwise:
		return resolve(true, refIsA)
	case types.PointsClockwise:
		return resolve(false, refIsA)
	}

	dirCross := refDir.CrossProduct(rle.UnitVector())
	if dirCross != 0 {
		return resolve(dirCross > 0, refIsA)
	}
	return 0
}

// pickRef returns (ref, rle, refIsA): rle is whichever of a, b has the
// lexicographically rightmost left endpoint, ref is the other.
func pickRef(a, b segment.Segment) (ref, rle segment.Segment, refIsA bool) {
	if a.P1().Less(b.P1()) {
		return a, b, true
	}
	return b, a, false
}

// resolve converts "is rle above ref" plus "is ref segment a" into the final
// signed comparison result for Compare(a, b).
func resolve(rleAboveRef bool, refIsA bool) int {
	switch {
	case refIsA && rleAboveRef:
		return -1 // ref == a, rle == b is above => a < b
	case refIsA && !rleAboveRef:
		return 1
	case !refIsA && rleAboveRef:
		return 1 // ref == b, rle == a is above => a > b
	default:
		return -1
	}
}
