// Package intersect implements C6, the geometric primitive that classifies
// how (or whether) two segments meet.
package intersect

import (
	"math"

	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/segment"
	"github.com/segsweep/segsweep/types"
)

// Kind discriminates the possible outcomes of Intersect.
type Kind uint8

const (
	// None means the segments do not meet at all.
	None Kind = iota
	// Overlap means the segments share a sub-segment of positive length.
	Overlap
	// PointKind means the segments meet at exactly one point.
	PointKind
)

// Result is the outcome of classifying two segments against each other.
type Result struct {
	Kind  Kind
	Point point.Point
	// RoleA and RoleB describe how segment a and segment b, respectively,
	// meet Point. Only meaningful when Kind == PointKind.
	RoleA, RoleB types.Role
}

// Intersect classifies how segments a and b meet, per §4.5:
//
//  1. If any endpoint of a coincides with any endpoint of b (within tol),
//     that is the intersection point, labeled by which endpoints matched.
//  2. Otherwise, each endpoint of b is tested against a's supporting line:
//     both on the same side beyond tol => None; one on the line within a's
//     extent => a T-junction Point; both on the line => collinear, resolved
//     by projection overlap into Overlap or None.
//  3. The symmetric test of a's endpoints against b's line.
//  4. Otherwise both endpoint pairs straddle the opposite segment: the
//     crossing point is computed from the signed perpendicular distances.
func Intersect(a, b segment.Segment, tol float64) Result {
	if res, ok := endpointCoincidence(a, b, tol); ok {
		return res
	}
	if res, ok := axisTest(a, b, tol); ok {
		return res
	}
	if res, ok := axisTestSwapped(a, b, tol); ok {
		return res
	}
	return crossingPoint(a, b, tol)
}

func endpointCoincidence(a, b segment.Segment, tol float64) (Result, bool) {
	type candidate struct {
		ap, bp point.Point
		ra, rb types.Role
	}
	candidates := []candidate{
		{a.P1(), b.P1(), types.Left, types.Left},
		{a.P1(), b.P2(), types.Left, types.Right},
		{a.P2(), b.P1(), types.Right, types.Left},
		{a.P2(), b.P2(), types.Right, types.Right},
	}
	for _, c := range candidates {
		if c.ap.EqTol(c.bp, tol) {
			return Result{Kind: PointKind, Point: c.ap, RoleA: c.ra, RoleB: c.rb}, true
		}
	}
	return Result{}, false
}

// perpDist returns the signed perpendicular distance from p to seg's
// supporting line, in actual distance units (normalized by seg's length so
// the result is directly comparable against tol).
func perpDist(seg segment.Segment, p point.Point) float64 {
	return seg.UnitVector().CrossProduct(p.Sub(seg.P1()))
}

// project returns the parameter t such that seg.P1 + t*seg.Vector ~ p's
// projection onto seg's line, in units of seg's own length (0 at P1, 1 at P2).
func project(seg segment.Segment, p point.Point) float64 {
	len2 := seg.Length()
	if len2 == 0 {
		return 0
	}
	v := seg.Vector()
	w := p.Sub(seg.P1())
	return v.DotProduct(w) / (len2 * len2)
}

// axisTest tests b's endpoints against a's supporting line (the "On-axis
// test of B's endpoints against A" of §4.5 step 2).
func axisTest(a, b segment.Segment, tol float64) (Result, bool) {
	return axisTestGeneric(a, b, tol, false)
}

// axisTestSwapped tests a's endpoints against b's supporting line (§4.5
// step 3), the symmetric case.
func axisTestSwapped(a, b segment.Segment, tol float64) (Result, bool) {
	return axisTestGeneric(b, a, tol, true)
}

// axisTestGeneric tests other's endpoints against ref's supporting line.
// swapped indicates ref is b and other is a (so roles must be swapped back
// into (roleA, roleB) order on return).
func axisTestGeneric(ref, other segment.Segment, tol float64, swapped bool) (Result, bool) {
	d0 := perpDist(ref, other.P1())
	d1 := perpDist(ref, other.P2())

	onLine0 := math.Abs(d0) <= tol
	onLine1 := math.Abs(d1) <= tol

	switch {
	case onLine0 && onLine1:
		// Collinear: resolve by projection overlap along ref.
		t0 := project(ref, other.P1())
		t1 := project(ref, other.P2())
		lo, hi := t0, t1
		if lo > hi {
			lo, hi = hi, lo
		}
		margin := tol / ref.Length()
		if hi < -margin || lo > 1+margin {
			return mkResult(None, point.Point{}, 0, 0, swapped), true
		}
		return mkResult(Overlap, point.Point{}, 0, 0, swapped), true

	case onLine0 || onLine1:
		var onPoint point.Point
		var otherRole types.Role
		if onLine0 {
			onPoint, otherRole = other.P1(), types.Left
		} else {
			onPoint, otherRole = other.P2(), types.Right
		}
		t := project(ref, onPoint)
		margin := tol / ref.Length()
		if t < -margin || t > 1+margin {
			// On ref's infinite line but beyond its finite extent: not a
			// touch on ref; let the caller's remaining tests decide.
			return Result{}, false
		}
		return mkResult(PointKind, onPoint, types.Internal, otherRole, swapped), true

	case sameSign(d0, d1) && math.Abs(d0) > tol && math.Abs(d1) > tol:
		return mkResult(None, point.Point{}, 0, 0, swapped), true

	default:
		return Result{}, false
	}
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}

// mkResult builds a Result, assigning (refRole, otherRole) into (roleA, roleB)
// according to whether ref was segment a (swapped == false) or segment b
// (swapped == true).
func mkResult(kind Kind, p point.Point, refRole, otherRole types.Role, swapped bool) Result {
	if !swapped {
		return Result{Kind: kind, Point: p, RoleA: refRole, RoleB: otherRole}
	}
	return Result{Kind: kind, Point: p, RoleA: otherRole, RoleB: refRole}
}

// crossingPoint computes the interior/interior crossing point of a and b,
// assuming both axis tests above concluded both endpoint pairs straddle the
// opposite segment's line.
func crossingPoint(a, b segment.Segment, tol float64) Result {
	s0 := perpDist(a, b.P1())
	s1 := perpDist(a, b.P2())
	denom := math.Abs(s0) + math.Abs(s1)
	if denom == 0 {
		// Degenerate: both endpoints of b sit exactly on a's line but the
		// earlier axis tests did not resolve it (shouldn't happen given tol
		// > 0); treat as no intersection rather than divide by zero.
		return Result{Kind: None}
	}
	t := math.Abs(s0) / denom
	v := a.Vector()
	p := a.P1().Add(point.New(v.X()*t, v.Y()*t))
	return Result{Kind: PointKind, Point: p, RoleA: types.Internal, RoleB: types.Internal}
}
