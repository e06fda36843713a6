// Package eventstore implements C2, the event store: a specialization of the
// avltree ordered map keyed by plane points, with box range queries and a
// glomming insert that canonicalizes coincident and near-coincident event
// points into a single entry.
package eventstore

import (
	"fmt"

	"github.com/segsweep/segsweep/avltree"
	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/segment"
	"github.com/segsweep/segsweep/types"
)

// Store is the event store: an ordered map from Point to the set of segment
// participants recorded there, with a tolerance-aware glomming insert.
type Store struct {
	tree *avltree.Tree[point.Point, segment.ParticipantSet]
	tol  float64
}

// New returns an empty Store using the given tolerance for glomming and box
// queries.
func New(tol float64) *Store {
	return &Store{
		tree: avltree.New[point.Point, segment.ParticipantSet](point.Compare),
		tol:  tol,
	}
}

// Len returns the number of distinct events currently stored.
func (s *Store) Len() int { return s.tree.Len() }

// RangeBox yields every stored EventPoint whose coordinates fall within
// [lo, hi] on both axes, in ascending point order. Implemented by pruning the
// underlying tree's lex order on x and then filtering on y, per §4.2.
func (s *Store) RangeBox(lo, hi point.Point) []segment.EventPoint {
	candidates := s.tree.Range(point.New(lo.X(), -maxFloat), point.New(hi.X(), maxFloat))
	out := make([]segment.EventPoint, 0, len(candidates))
	for _, e := range candidates {
		if e.Key.Y() >= lo.Y() && e.Key.Y() <= hi.Y() {
			out = append(out, segment.EventPoint{Point: e.Key, Participants: e.Value})
		}
	}
	return out
}

const maxFloat = 1.0e308

// AddPoint performs a glomming insert: any existing event within TOL of
// (x, y) on both axes is merged into the result rather than left as a
// separate entry.
//
//  1. Range-query the box [x-TOL, y-TOL] .. [x+TOL, y+TOL].
//  2. If empty, insert a fresh EventPoint at (x, y) with the given
//     participants.
//  3. Otherwise, delete every matched EventPoint, union their participant
//     sets with the new ones, and insert a single entry at the first matched
//     entry's Point (preserving that coordinate for stability across repeated
//     glomming), carrying the unioned set.
func (s *Store) AddPoint(x, y float64, participants ...segment.Participant) {
	p := point.New(x, y)
	lo := point.New(x-s.tol, y-s.tol)
	hi := point.New(x+s.tol, y+s.tol)
	matches := s.RangeBox(lo, hi)

	merged := segment.NewParticipantSet(participants...)
	if len(matches) == 0 {
		s.tree.Insert(p, merged)
		return
	}

	key := matches[0].Point
	for _, m := range matches {
		s.tree.Delete(m.Point)
		merged = merged.Union(m.Participants)
	}
	s.tree.Insert(key, merged)
}

// GlomToVertical pulls every stored event near a truly-vertical segment's
// line onto that segment's exact x-coordinate. For a segment at x = x0 with
// y-range [ymin, ymax], every event with |x - x0| < TOL and
// ymin+TOL <= y <= ymax-TOL is re-keyed (by delete then insert) to x = x0.
func (s *Store) GlomToVertical(seg segment.Segment) {
	if !seg.IsVertical() {
		return
	}
	x0 := seg.P1().X()
	ymin, ymax := seg.P1().Y(), seg.P2().Y()

	lo := point.New(x0-s.tol, ymin+s.tol)
	hi := point.New(x0+s.tol, ymax-s.tol)
	if lo.Y() > hi.Y() {
		return
	}
	matches := s.RangeBox(lo, hi)
	for _, m := range matches {
		if m.Point.X() == x0 {
			continue
		}
		s.tree.Delete(m.Point)
		s.AddPoint(x0, m.Point.Y(), setToSlice(m.Participants)...)
	}
}

func setToSlice(set segment.ParticipantSet) []segment.Participant {
	out := make([]segment.Participant, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	return out
}

// ProcessedSegments walks every stored event and reconstructs each segment's
// canonical (left, right) endpoints from its Left/Right participant records.
// Returns a ProgrammingInvariant-flavored error if a segment has two Left
// events or two Right events recorded.
func (s *Store) ProcessedSegments() (map[segment.Index][2]point.Point, error) {
	out := make(map[segment.Index][2]point.Point)
	haveLeft := make(map[segment.Index]bool)
	haveRight := make(map[segment.Index]bool)

	for _, e := range s.tree.Traverse() {
		for part := range e.Value {
			switch part.Role {
			case types.Left:
				if haveLeft[part.Index] {
					return nil, fmt.Errorf("segment %d has duplicate Left events", part.Index)
				}
				haveLeft[part.Index] = true
				pair := out[part.Index]
				pair[0] = e.Key
				out[part.Index] = pair
			case types.Right:
				if haveRight[part.Index] {
					return nil, fmt.Errorf("segment %d has duplicate Right events", part.Index)
				}
				haveRight[part.Index] = true
				pair := out[part.Index]
				pair[1] = e.Key
				out[part.Index] = pair
			}
		}
	}
	return out, nil
}

// Traverse returns every stored EventPoint in ascending point order.
func (s *Store) Traverse() []segment.EventPoint {
	entries := s.tree.Traverse()
	out := make([]segment.EventPoint, len(entries))
	for i, e := range entries {
		out[i] = segment.EventPoint{Point: e.Key, Participants: e.Value}
	}
	return out
}

// Min returns the lexicographically smallest stored EventPoint, if any.
func (s *Store) Min() (segment.EventPoint, bool) {
	e, ok := s.tree.Min()
	if !ok {
		return segment.EventPoint{}, false
	}
	return segment.EventPoint{Point: e.Key, Participants: e.Value}, true
}

// Successor returns the smallest stored EventPoint strictly greater than p,
// if any.
func (s *Store) Successor(p point.Point) (segment.EventPoint, bool) {
	e, ok := s.tree.Successor(p)
	if !ok {
		return segment.EventPoint{}, false
	}
	return segment.EventPoint{Point: e.Key, Participants: e.Value}, true
}

// Lookup returns the participant set recorded at exactly p, if any.
func (s *Store) Lookup(p point.Point) (segment.ParticipantSet, bool) {
	return s.tree.Lookup(p)
}
