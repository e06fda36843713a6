// Package segment defines the engine's Segment, SegmentIndex, and EventPoint
// types: the data model of §3 of the sweep specification.
//
// A Segment is immutable once constructed and always normalized: non-vertical
// segments store their lexicographically smaller endpoint first, vertical
// segments store their bottommost endpoint first. Construction is the only
// place this ordering decision is made; every other package trusts it.
package segment

import (
	"fmt"

	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/types"
)

// Index identifies a segment by its position in the caller-supplied input
// slice. Indexes are stable across snapping and re-normalization.
type Index = int

// Segment is a finite straight segment between two distinct points, normalized
// at construction time: non-vertical segments have their lexicographically
// smaller endpoint (by x, then y) first; vertical segments have their
// bottommost endpoint first.
type Segment struct {
	p1, p2   point.Point
	vertical bool
}

// New constructs a Segment from two endpoints, normalizing their order.
// Verticality is decided by exact equality of the x-coordinates: callers that
// need "near-vertical" treatment (within TOL) must snap both endpoints to a
// common x before calling New (see the sweep driver's preprocessing pass).
func New(a, b point.Point) Segment {
	vertical := a.X() == b.X()
	p1, p2 := a, b
	if vertical {
		if p2.Y() < p1.Y() {
			p1, p2 = p2, p1
		}
	} else if !p1.Less(p2) {
		p1, p2 = p2, p1
	}
	return Segment{p1: p1, p2: p2, vertical: vertical}
}

// P1 returns the segment's first (left, or bottom if vertical) endpoint.
func (s Segment) P1() point.Point { return s.p1 }

// P2 returns the segment's second (right, or top if vertical) endpoint.
func (s Segment) P2() point.Point { return s.p2 }

// IsVertical reports whether the segment's two endpoints share an x-coordinate
// exactly.
func (s Segment) IsVertical() bool { return s.vertical }

// Vector returns the segment's direction vector, p2 - p1.
func (s Segment) Vector() point.Point { return s.p2.Sub(s.p1) }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 { return s.p1.DistanceToPoint(s.p2) }

// UnitVector returns the segment's direction vector normalized to unit length.
// Returns the zero vector for a degenerate (zero-length) segment, which should
// never occur past entry validation.
func (s Segment) UnitVector() point.Point {
	l := s.Length()
	if l == 0 {
		return point.New(0, 0)
	}
	v := s.Vector()
	return point.New(v.X()/l, v.Y()/l)
}

// XAtY returns the x-coordinate of the segment at the given y. For a vertical
// or horizontal segment it returns p1's x; otherwise it interpolates linearly
// along the segment's line, so a y outside [p1.Y, p2.Y] yields a point beyond
// the segment's extent.
func (s Segment) XAtY(y float64) float64 {
	if s.vertical {
		return s.p1.X()
	}
	dy := s.p2.Y() - s.p1.Y()
	if dy == 0 {
		return s.p1.X()
	}
	t := (y - s.p1.Y()) / dy
	return s.p1.X() + t*(s.p2.X()-s.p1.X())
}

// WithEndpoints returns a copy of s with its endpoints replaced and
// re-normalized; it is equivalent to New(a, b).
func (s Segment) WithEndpoints(a, b point.Point) Segment {
	return New(a, b)
}

// String returns a human-readable representation of the segment.
func (s Segment) String() string {
	return fmt.Sprintf("%s -> %s", s.p1, s.p2)
}

// Participant names one (segment, role) pairing recorded at an EventPoint.
type Participant struct {
	Index Index
	Role  types.Role
}

// String returns a human-readable representation of the participant.
func (p Participant) String() string {
	return fmt.Sprintf("(%d,%s)", p.Index, p.Role)
}

// ParticipantSet is a deduplicated set of Participants sharing an EventPoint.
type ParticipantSet map[Participant]struct{}

// NewParticipantSet returns a ParticipantSet containing the given participants.
func NewParticipantSet(ps ...Participant) ParticipantSet {
	s := make(ParticipantSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p into the set.
func (s ParticipantSet) Add(p Participant) { s[p] = struct{}{} }

// Union returns a new set containing every participant in s or other.
func (s ParticipantSet) Union(other ParticipantSet) ParticipantSet {
	out := make(ParticipantSet, len(s)+len(other))
	for p := range s {
		out[p] = struct{}{}
	}
	for p := range other {
		out[p] = struct{}{}
	}
	return out
}

// Clone returns a shallow copy of s.
func (s ParticipantSet) Clone() ParticipantSet {
	return s.Union(nil)
}

// HasRole reports whether the set contains (idx, role).
func (s ParticipantSet) HasRole(idx Index, role types.Role) bool {
	_, ok := s[Participant{Index: idx, Role: role}]
	return ok
}

// EventPoint is a Point together with the set of segment participants that
// meet there: one endpoint pairing per segment endpoint, or an Internal
// pairing per segment whose interior crosses another segment there.
type EventPoint struct {
	Point        point.Point
	Participants ParticipantSet
}

// IsIntersection reports whether e represents a "true" intersection as
// opposed to a lone, unshared segment endpoint: either more than one
// participant is recorded, or any participant meets the point in its
// interior.
func (e EventPoint) IsIntersection() bool {
	if len(e.Participants) >= 2 {
		return true
	}
	for p := range e.Participants {
		if p.Role == types.Internal {
			return true
		}
	}
	return false
}
