// Package status implements C4, the status structure: an ordered map of the
// segments currently crossing the sweep line, ordered by the segment
// comparator (C3) but keyed internally by synthetic numeric scalars so that
// interior-crossing events can reorder entries by swapping payloads instead
// of restructuring the tree.
package status

import (
	"github.com/segsweep/segsweep/avltree"
	"github.com/segsweep/segsweep/comparator"
	"github.com/segsweep/segsweep/debug"
	"github.com/segsweep/segsweep/segment"
	"github.com/segsweep/segsweep/sweeperrors"
)

type entry struct {
	idx segment.Index
	seg segment.Segment
}

func keyCompare(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Status is the sweep line's status structure.
type Status struct {
	tree        *avltree.Tree[float64, entry]
	keys        map[segment.Index]float64
	tol         float64
	valueSpread float64
	valueMin    float64
}

// New returns an empty Status using tol for the comparator's tie-breaking
// and the given synthetic-key layout constants.
func New(tol, valueSpread, valueMin float64) *Status {
	return &Status{
		tree:        avltree.New[float64, entry](keyCompare),
		keys:        make(map[segment.Index]float64),
		tol:         tol,
		valueSpread: valueSpread,
		valueMin:    valueMin,
	}
}

// Len returns the number of segments currently active in the status.
func (s *Status) Len() int { return s.tree.Len() }

// Contains reports whether segment idx is currently active.
func (s *Status) Contains(idx segment.Index) bool {
	_, ok := s.keys[idx]
	return ok
}

// Insert places seg (identified by idx) into the status at the position
// dictated by the segment comparator, minting a synthetic key between its
// new topological neighbors (or beyond the current min/max if it has none on
// one side). Triggers a key rebalance if the resulting key separation falls
// below valueMin.
func (s *Status) Insert(idx segment.Index, seg segment.Segment) {
	needsRebalance := false

	if s.tree.Root() == nil {
		n := s.tree.InsertChild(nil, true, 0, entry{idx: idx, seg: seg})
		s.keys[idx] = n.Key()
		return
	}

	cur := s.tree.Root()
	for {
		c := comparator.Compare(seg, cur.Value().seg, s.tol)
		if c < 0 {
			if cur.Left() == nil {
				key, rebalance := s.mintKey(cur, true)
				needsRebalance = rebalance
				n := s.tree.InsertChild(cur, true, key, entry{idx: idx, seg: seg})
				s.keys[idx] = n.Key()
				break
			}
			cur = cur.Left()
		} else {
			if cur.Right() == nil {
				key, rebalance := s.mintKey(cur, false)
				needsRebalance = rebalance
				n := s.tree.InsertChild(cur, false, key, entry{idx: idx, seg: seg})
				s.keys[idx] = n.Key()
				break
			}
			cur = cur.Right()
		}
	}

	if needsRebalance {
		debug.Logf("status: key separation below valueMin=%g near segment %d, rebalancing", s.valueMin, idx)
		s.RebalanceKeys()
	}
}

// mintKey computes a synthetic key for a new node attaching to parent as its
// left or right child, per §4.4: midpoint between topological neighbors, or
// neighbor +/- valueSpread if one side has no neighbor. Reports whether the
// resulting separation fell below valueMin (a NeighborLossWarning condition).
func (s *Status) mintKey(parent *avltree.Node[float64, entry], asLeftChild bool) (float64, bool) {
	var haveLower, haveUpper bool
	var lower, upper float64

	if asLeftChild {
		upper, haveUpper = parent.Key(), true
		if p := avltree.NodeBefore(parent); p != nil {
			lower, haveLower = p.Key(), true
		}
	} else {
		lower, haveLower = parent.Key(), true
		if p := avltree.NodeAfter(parent); p != nil {
			upper, haveUpper = p.Key(), true
		}
	}

	switch {
	case !haveLower && !haveUpper:
		return 0, false
	case !haveLower:
		return upper - s.valueSpread, false
	case !haveUpper:
		return lower + s.valueSpread, false
	default:
		key := lower + (upper-lower)/2
		return key, upper-lower < s.valueMin
	}
}

// RebalanceKeys walks the status in order and reassigns keys as evenly
// spaced multiples of valueSpread, rewriting the auxiliary segment-index map.
// Triggered automatically by Insert when key separation is exhausted, and
// callable directly in response to a NeighborLossWarning.
func (s *Status) RebalanceKeys() {
	entries := s.tree.Traverse()
	n := len(entries)
	if n == 0 {
		return
	}
	newTree := avltree.New[float64, entry](keyCompare)
	base := -s.valueSpread * float64(n/2)
	for i, e := range entries {
		key := base + float64(i)*s.valueSpread
		newTree.Insert(key, e.Value)
		s.keys[e.Value.idx] = key
	}
	s.tree = newTree
}

// Swap exchanges the segment payloads of the entries for segment indices i
// and j in place, via [avltree.Node.SetValue], leaving their synthetic keys
// (and hence tree structure) untouched. Used to implement order reversal
// across interior intersections without rotating the tree.
//
// The two *avltree.Node handles this looks up are used only for the
// duration of this call, never cached on Status: the tree's two-children
// delete can reuse a node object for an unrelated key, so a node pointer
// held across separate Status calls could silently end up pointing at the
// wrong segment's entry.
func (s *Status) Swap(i, j segment.Index) error {
	ki, ok := s.keys[i]
	if !ok {
		return sweeperrors.NewSweepError(sweeperrors.ErrProgrammingInvariant, []segment.Index{i}, "swap: segment not in status")
	}
	kj, ok := s.keys[j]
	if !ok {
		return sweeperrors.NewSweepError(sweeperrors.ErrProgrammingInvariant, []segment.Index{j}, "swap: segment not in status")
	}
	ni := s.tree.LookupNode(ki)
	nj := s.tree.LookupNode(kj)
	if ni == nil || nj == nil {
		return sweeperrors.NewSweepError(sweeperrors.ErrProgrammingInvariant, []segment.Index{i, j}, "swap: key present in aux map but missing from tree")
	}
	vi, vj := ni.Value(), nj.Value()
	ni.SetValue(vj)
	nj.SetValue(vi)
	s.keys[i] = kj
	s.keys[j] = ki
	return nil
}

// DeleteBySegment removes segment idx from the status.
func (s *Status) DeleteBySegment(idx segment.Index) error {
	key, ok := s.keys[idx]
	if !ok {
		return sweeperrors.NewSweepError(sweeperrors.ErrProgrammingInvariant, []segment.Index{idx}, "delete: segment not in status")
	}
	s.tree.Delete(key)
	delete(s.keys, idx)
	return nil
}

// Predecessor returns the segment immediately below idx in the status, if
// any.
func (s *Status) Predecessor(idx segment.Index) (segment.Index, segment.Segment, bool) {
	key, ok := s.keys[idx]
	if !ok {
		return 0, segment.Segment{}, false
	}
	e, ok := s.tree.Predecessor(key)
	if !ok {
		return 0, segment.Segment{}, false
	}
	return e.Value.idx, e.Value.seg, true
}

// Successor returns the segment immediately above idx in the status, if any.
func (s *Status) Successor(idx segment.Index) (segment.Index, segment.Segment, bool) {
	key, ok := s.keys[idx]
	if !ok {
		return 0, segment.Segment{}, false
	}
	e, ok := s.tree.Successor(key)
	if !ok {
		return 0, segment.Segment{}, false
	}
	return e.Value.idx, e.Value.seg, true
}

// Get returns the current Segment payload for idx, if active.
func (s *Status) Get(idx segment.Index) (segment.Segment, bool) {
	key, ok := s.keys[idx]
	if !ok {
		return segment.Segment{}, false
	}
	e, ok := s.tree.Lookup(key)
	if !ok {
		return segment.Segment{}, false
	}
	return e.seg, true
}
