package sweep_test

import (
	"context"
	"testing"

	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/segment"
	"github.com/segsweep/segsweep/sweep"
	"github.com/segsweep/segsweep/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seg(x1, y1, x2, y2 float64) [2]point.Point {
	return [2]point.Point{point.New(x1, y1), point.New(x2, y2)}
}

func TestSingleXCrossing(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 1, 1),
		seg(0, 1, 1, 0),
	}
	_, events, err := sweep.RunSweepLine(context.Background(), segments)
	require.NoError(t, err)

	var crossing *point.Point
	for i, e := range events {
		if e.IsIntersection() {
			crossing = &events[i].Point
		}
	}
	require.NotNil(t, crossing)
	assert.InDelta(t, 0.5, crossing.X(), 1e-9)
	assert.InDelta(t, 0.5, crossing.Y(), 1e-9)

	// Four endpoint events plus the one crossing.
	assert.Len(t, events, 5)
}

func TestTJunction(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 2, 0),
		seg(1, 0, 1, 1),
	}
	_, events, err := sweep.RunSweepLine(context.Background(), segments)
	require.NoError(t, err)

	found := false
	for _, e := range events {
		if e.Point == point.New(1, 0) {
			found = true
			assert.True(t, e.Participants.HasRole(0, types.Internal))
			assert.True(t, e.Participants.HasRole(1, types.Left))
		}
	}
	assert.True(t, found, "expected a T-junction event at (1,0)")
}

func TestThreeConcurrent(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 2, 2),
		seg(0, 2, 2, 0),
		seg(0, 1, 2, 1),
	}
	_, events, err := sweep.RunSweepLine(context.Background(), segments)
	require.NoError(t, err)

	var triple *point.Point
	for i, e := range events {
		if len(e.Participants) == 3 {
			triple = &events[i].Point
		}
	}
	require.NotNil(t, triple)
	assert.InDelta(t, 1.0, triple.X(), 1e-9)
	assert.InDelta(t, 1.0, triple.Y(), 1e-9)
}

func TestCoincidentEndpoints(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 1, 1),
		seg(0, 0, 1, -1),
	}
	_, events, err := sweep.RunSweepLine(context.Background(), segments)
	require.NoError(t, err)

	for _, e := range events {
		if e.Point == point.New(0, 0) {
			assert.True(t, e.Participants.HasRole(0, types.Left))
			assert.True(t, e.Participants.HasRole(1, types.Left))
		}
		for p := range e.Participants {
			assert.NotEqual(t, types.Internal, p.Role, "no interior intersection expected")
		}
	}
}

func TestNearVerticalSnap(t *testing.T) {
	tol := 1e-9
	segments := [][2]point.Point{
		seg(0, 0, tol/2, 1),
		seg(0, 0.5, 1, 0.5),
	}
	snapped, events, err := sweep.RunSweepLine(context.Background(), segments)
	require.NoError(t, err)

	assert.Equal(t, 0.0, snapped[0].P1().X())
	assert.True(t, snapped[0].IsVertical())

	found := false
	for _, e := range events {
		if e.IsIntersection() && e.Point.X() == 0 {
			found = true
			assert.InDelta(t, 0.5, e.Point.Y(), 1e-6)
		}
	}
	assert.True(t, found)
}

func TestDisjointParallelSegments(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 1, 0),
		seg(0, 1, 1, 1),
	}
	_, events, err := sweep.RunSweepLine(context.Background(), segments)
	require.NoError(t, err)

	assert.Len(t, events, 4)
	for _, e := range events {
		assert.False(t, e.IsIntersection())
	}
}

func TestEveryIndexHasExactlyOneLeftAndOneRight(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 2, 2),
		seg(0, 2, 2, 0),
		seg(0, 1, 2, 1),
		seg(0, 0, 1, 1),
	}
	_, events, err := sweep.RunSweepLine(context.Background(), segments)
	require.NoError(t, err)

	lefts := map[int]int{}
	rights := map[int]int{}
	for _, e := range events {
		for p := range e.Participants {
			switch p.Role {
			case types.Left:
				lefts[p.Index]++
			case types.Right:
				rights[p.Index]++
			}
		}
	}
	for i := range segments {
		assert.Equal(t, 1, lefts[i], "segment %d should have exactly one Left event", i)
		assert.Equal(t, 1, rights[i], "segment %d should have exactly one Right event", i)
	}
}

func TestEventListIsStrictlyOrdered(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 2, 2),
		seg(0, 2, 2, 0),
		seg(0, 1, 2, 1),
	}
	_, events, err := sweep.RunSweepLine(context.Background(), segments)
	require.NoError(t, err)

	for i := 1; i < len(events); i++ {
		assert.True(t, events[i-1].Point.Less(events[i].Point))
	}
}

func TestMalformedSegmentRejected(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 0, 0),
	}
	_, _, err := sweep.RunSweepLine(context.Background(), segments)
	assert.Error(t, err)
}

// intersectionSet reduces an event list to the comparable part of §8's
// idempotence invariant: the set of points carrying more than one
// participant or any Internal role, independent of exact floating-point
// key or participant ordering.
func intersectionSet(events []segment.EventPoint) map[point.Point]bool {
	out := make(map[point.Point]bool)
	for _, e := range events {
		if e.IsIntersection() {
			out[e.Point] = true
		}
	}
	return out
}

func TestIdempotenceOfSnappedSegments(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 2, 2),
		seg(0, 2, 2, 0),
		seg(0, 1, 2, 1),
		seg(0, 0, 1, 1),
	}
	snapped, firstEvents, err := sweep.RunSweepLine(context.Background(), segments)
	require.NoError(t, err)

	again := make([][2]point.Point, len(snapped))
	for i, s := range snapped {
		again[i] = [2]point.Point{s.P1(), s.P2()}
	}
	_, secondEvents, err := sweep.RunSweepLine(context.Background(), again)
	require.NoError(t, err)

	assert.Equal(t, intersectionSet(firstEvents), intersectionSet(secondEvents))
}

func TestOverlappingCollinearSegmentsIsFatal(t *testing.T) {
	segments := [][2]point.Point{
		seg(0, 0, 2, 0),
		seg(1, 0, 3, 0),
	}
	_, _, err := sweep.RunSweepLine(context.Background(), segments)
	assert.Error(t, err)
}
