// Package sweep implements C5, the sweep driver, and exposes the engine's
// single public entry point, RunSweepLine.
package sweep

import (
	"context"
	"sort"

	"github.com/segsweep/segsweep/debug"
	"github.com/segsweep/segsweep/eventstore"
	"github.com/segsweep/segsweep/intersect"
	"github.com/segsweep/segsweep/numeric"
	"github.com/segsweep/segsweep/options"
	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/segment"
	"github.com/segsweep/segsweep/status"
	"github.com/segsweep/segsweep/sweeperrors"
	"github.com/segsweep/segsweep/types"
)

// RunSweepLine runs the tolerance-aware Bentley-Ottmann sweep over segments,
// returning a canonicalized (snapped) copy of the input segments in the same
// order, and the ordered list of every event point discovered -- every
// segment endpoint and every intersection.
//
// segments is not mutated; RunSweepLine takes no ownership of it. ctx is
// checked for cancellation between events, since a pathological input can in
// principle make the sweep run for a long time.
func RunSweepLine(ctx context.Context, segments [][2]point.Point, opts ...options.Option) ([]segment.Segment, []segment.EventPoint, error) {
	cfg := options.Apply(options.Defaults(), opts...)

	segs, vert, err := preprocess(segments, cfg.Tolerance)
	if err != nil {
		return nil, nil, err
	}

	store := eventstore.New(cfg.Tolerance)
	loadEvents(store, segs, vert)

	segs, err = reextract(store, segs)
	if err != nil {
		return nil, nil, err
	}

	for _, i := range vert {
		store.GlomToVertical(segs[i])
	}

	segs, err = reextract(store, segs)
	if err != nil {
		return nil, nil, err
	}

	if err := mainLoop(ctx, store, segs, cfg); err != nil {
		return nil, nil, err
	}

	segs, err = reextract(store, segs)
	if err != nil {
		return nil, nil, err
	}

	return segs, store.Traverse(), nil
}

// preprocess validates each input segment, forces near-vertical segments
// (|dx| <= tol) exactly vertical at the x of their first endpoint, and
// normalizes every segment. Returns the
// canonical segments and the indices of those that were snapped vertical.
func preprocess(segments [][2]point.Point, tol float64) ([]segment.Segment, []segment.Index, error) {
	segs := make([]segment.Segment, len(segments))
	var vert []segment.Index

	for i, pair := range segments {
		p1, p2 := pair[0], pair[1]
		if !numeric.Finite(p1.X()) || !numeric.Finite(p1.Y()) || !numeric.Finite(p2.X()) || !numeric.Finite(p2.Y()) {
			return nil, nil, sweeperrors.NewSweepError(sweeperrors.ErrMalformedSegment, []segment.Index{i}, "non-finite coordinate")
		}
		if p1.EqTol(p2, tol) {
			return nil, nil, sweeperrors.NewSweepError(sweeperrors.ErrMalformedSegment, []segment.Index{i}, "coincident endpoints")
		}

		if abs(p1.X()-p2.X()) <= tol {
			commonX := p1.X()
			p1 = point.New(commonX, p1.Y())
			p2 = point.New(commonX, p2.Y())
			vert = append(vert, i)
		}
		segs[i] = segment.New(p1, p2)
	}
	return segs, vert, nil
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// loadEvents populates store with one Left and one Right event per segment,
// visiting vertical segments first so their canonical coordinates win any
// glomming race against nearby non-vertical endpoints.
func loadEvents(store *eventstore.Store, segs []segment.Segment, vert []segment.Index) {
	isVert := make(map[segment.Index]bool, len(vert))
	for _, i := range vert {
		isVert[i] = true
	}

	emit := func(i segment.Index) {
		s := segs[i]
		store.AddPoint(s.P1().X(), s.P1().Y(), segment.Participant{Index: i, Role: types.Left})
		store.AddPoint(s.P2().X(), s.P2().Y(), segment.Participant{Index: i, Role: types.Right})
	}

	for _, i := range vert {
		emit(i)
	}
	for i := range segs {
		if !isVert[i] {
			emit(i)
		}
	}
}

// reextract recovers each segment's canonical endpoints from the event
// store's Left/Right records and re-normalizes, producing the current
// canonical segment list.
func reextract(store *eventstore.Store, prev []segment.Segment) ([]segment.Segment, error) {
	endpoints, err := store.ProcessedSegments()
	if err != nil {
		return nil, sweeperrors.NewSweepError(sweeperrors.ErrProgrammingInvariant, nil, "%v", err)
	}
	out := make([]segment.Segment, len(prev))
	for i := range prev {
		pair, ok := endpoints[i]
		if !ok {
			return nil, sweeperrors.NewSweepError(sweeperrors.ErrProgrammingInvariant, []segment.Index{i}, "segment missing Left/Right events")
		}
		out[i] = segment.New(pair[0], pair[1])
	}
	return out, nil
}

// mainLoop drives the sweep over store's events, maintaining st and
// discovering new intersection events, per §4.6.
func mainLoop(ctx context.Context, store *eventstore.Store, segs []segment.Segment, cfg options.Config) error {
	st := status.New(cfg.Tolerance, cfg.ValueSpread, cfg.ValueMin)

	first, ok := store.Min()
	if !ok {
		return nil
	}
	p := first.Point

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		participants, ok := store.Lookup(p)
		if !ok {
			return sweeperrors.NewSweepError(sweeperrors.ErrProgrammingInvariant, nil, "current event point vanished from store")
		}
		L, U, C := partition(participants)
		debug.Logf("event p=%s L=%v U=%v C=%v", p, L, U, C)

		var savedAbove, savedBelow segment.Index
		var hasAbove, hasBelow bool

		if len(L) > 0 && len(U) == 0 && len(C) == 0 {
			lSet := toSet(L)
			highest, lowest := extremesOf(st, lSet)
			if idx, _, ok := st.Successor(highest); ok {
				savedAbove, hasAbove = idx, true
			}
			if idx, _, ok := st.Predecessor(lowest); ok {
				savedBelow, hasBelow = idx, true
			}
		}

		for _, i := range L {
			if err := st.DeleteBySegment(i); err != nil {
				return err
			}
		}

		if len(C) >= 2 {
			ordered := orderedByStatus(st, toSet(C))
			for lo, hi := 0, len(ordered)-1; lo < hi; lo, hi = lo+1, hi-1 {
				if err := st.Swap(ordered[lo], ordered[hi]); err != nil {
					return err
				}
			}
		}

		for _, i := range U {
			st.Insert(i, segs[i])
		}

		if len(U)+len(C) == 0 {
			if hasAbove && hasBelow {
				if err := testAndAdd(store, segs, savedAbove, savedBelow, p, cfg.Tolerance); err != nil {
					return err
				}
			}
		} else {
			mSet := toSet(append(append([]segment.Index{}, U...), C...))
			if len(mSet) > 0 {
				ordered := orderedByStatus(st, mSet)
				highestM, lowestM := ordered[len(ordered)-1], ordered[0]
				if succ, _, ok := st.Successor(highestM); ok {
					if err := testAndAdd(store, segs, highestM, succ, p, cfg.Tolerance); err != nil {
						return err
					}
				}
				if pred, _, ok := st.Predecessor(lowestM); ok {
					if err := testAndAdd(store, segs, lowestM, pred, p, cfg.Tolerance); err != nil {
						return err
					}
				}
			}
		}

		next, ok := store.Successor(p)
		if !ok {
			break
		}
		p = next.Point
	}
	return nil
}

// testAndAdd classifies segs[i] against segs[j] and, if they meet at or
// beyond the current sweep position p (see notBehind), records the new event. An Overlap
// result is fatal (ErrInfiniteOverlap): the sweep has no representation for
// a segment pair sharing a positive-length subsegment as a single event.
func testAndAdd(store *eventstore.Store, segs []segment.Segment, i, j segment.Index, p point.Point, tol float64) error {
	res := intersect.Intersect(segs[i], segs[j], tol)
	switch res.Kind {
	case intersect.Overlap:
		return sweeperrors.NewSweepError(sweeperrors.ErrInfiniteOverlap, []segment.Index{i, j}, "overlapping collinear segments")
	case intersect.PointKind:
		if notBehind(p, res.Point, tol) {
			store.AddPoint(res.Point.X(), res.Point.Y(),
				segment.Participant{Index: i, Role: res.RoleA},
				segment.Participant{Index: j, Role: res.RoleB},
			)
		}
	}
	return nil
}

// notBehind reports whether candidate lies at or beyond cur in lex (x, y)
// order, with a tol margin. A candidate strictly behind cur has already been
// swept past and is discarded; a candidate exactly at cur (the common
// T-junction case, where a segment's interior meets another's endpoint at
// the very point being processed) still needs recording, so it gloms into
// the current event rather than being dropped.
func notBehind(cur, candidate point.Point, tol float64) bool {
	if candidate.X() < cur.X()-tol {
		return false
	}
	if candidate.X() > cur.X()+tol {
		return true
	}
	return candidate.Y() >= cur.Y()-tol
}

// partition splits an event's participants into closing (Right), opening
// (Left), and crossing (Internal) segment indices, each sorted ascending for
// deterministic processing order.
func partition(participants segment.ParticipantSet) (L, U, C []segment.Index) {
	for part := range participants {
		switch part.Role {
		case types.Right:
			L = append(L, part.Index)
		case types.Left:
			U = append(U, part.Index)
		case types.Internal:
			C = append(C, part.Index)
		}
	}
	sort.Ints(L)
	sort.Ints(U)
	sort.Ints(C)
	return
}

func toSet(idxs []segment.Index) map[segment.Index]bool {
	out := make(map[segment.Index]bool, len(idxs))
	for _, i := range idxs {
		out[i] = true
	}
	return out
}

// extremesOf returns the lowest- and highest-ordered members of set within
// st's current status order.
func extremesOf(st *status.Status, set map[segment.Index]bool) (highest, lowest segment.Index) {
	first := true
	for idx := range set {
		if first {
			highest, lowest = idx, idx
			first = false
		}
		if succ, _, ok := st.Successor(idx); !ok || !set[succ] {
			highest = idx
		}
		if pred, _, ok := st.Predecessor(idx); !ok || !set[pred] {
			lowest = idx
		}
	}
	return highest, lowest
}

// orderedByStatus returns set's members in ascending status order, assuming
// they form a single contiguous run in the status structure (true for the L,
// C, and U∪C groups the sweep driver builds them from).
func orderedByStatus(st *status.Status, set map[segment.Index]bool) []segment.Index {
	var start segment.Index
	found := false
	for idx := range set {
		if pred, _, ok := st.Predecessor(idx); !ok || !set[pred] {
			start = idx
			found = true
			break
		}
	}
	if !found {
		// Degenerate (shouldn't happen for a well-formed contiguous run):
		// fall back to an arbitrary member so the caller still makes
		// progress instead of panicking on an empty slice.
		for idx := range set {
			start = idx
			break
		}
	}

	out := make([]segment.Index, 0, len(set))
	out = append(out, start)
	cur := start
	for {
		next, _, ok := st.Successor(cur)
		if !ok || !set[next] {
			break
		}
		out = append(out, next)
		cur = next
	}
	return out
}
