package eventstore_test

import (
	"testing"

	"github.com/segsweep/segsweep/eventstore"
	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/segment"
	"github.com/segsweep/segsweep/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPointFreshInsert(t *testing.T) {
	s := eventstore.New(1e-9)
	s.AddPoint(1, 1, segment.Participant{Index: 0, Role: types.Left})
	assert.Equal(t, 1, s.Len())

	got, ok := s.Lookup(point.New(1, 1))
	require.True(t, ok)
	assert.True(t, got.HasRole(0, types.Left))
}

func TestAddPointGlomsNearbyEvent(t *testing.T) {
	tol := 1e-6
	s := eventstore.New(tol)
	s.AddPoint(1.0, 1.0, segment.Participant{Index: 0, Role: types.Left})
	s.AddPoint(1.0+tol/10, 1.0, segment.Participant{Index: 1, Role: types.Left})

	assert.Equal(t, 1, s.Len())
	got, ok := s.Lookup(point.New(1.0, 1.0))
	require.True(t, ok)
	assert.True(t, got.HasRole(0, types.Left))
	assert.True(t, got.HasRole(1, types.Left))
}

func TestAddPointDoesNotGlomFarEvent(t *testing.T) {
	s := eventstore.New(1e-9)
	s.AddPoint(0, 0, segment.Participant{Index: 0, Role: types.Left})
	s.AddPoint(5, 5, segment.Participant{Index: 1, Role: types.Left})
	assert.Equal(t, 2, s.Len())
}

func TestRangeBox(t *testing.T) {
	s := eventstore.New(1e-9)
	s.AddPoint(0, 0, segment.Participant{Index: 0, Role: types.Left})
	s.AddPoint(5, 5, segment.Participant{Index: 1, Role: types.Left})
	s.AddPoint(10, 10, segment.Participant{Index: 2, Role: types.Left})

	results := s.RangeBox(point.New(-1, -1), point.New(6, 6))
	assert.Len(t, results, 2)
}

func TestGlomToVertical(t *testing.T) {
	tol := 1e-6
	s := eventstore.New(tol)
	// A near-but-not-exact-vertical event sitting beside a vertical segment.
	s.AddPoint(0.0+tol/10, 0.5, segment.Participant{Index: 1, Role: types.Internal})

	vertical := segment.New(point.New(0, 0), point.New(0, 1))
	s.GlomToVertical(vertical)

	got, ok := s.Lookup(point.New(0, 0.5))
	require.True(t, ok)
	assert.True(t, got.HasRole(1, types.Internal))
}

func TestProcessedSegments(t *testing.T) {
	s := eventstore.New(1e-9)
	s.AddPoint(0, 0, segment.Participant{Index: 0, Role: types.Left})
	s.AddPoint(1, 1, segment.Participant{Index: 0, Role: types.Right})

	out, err := s.ProcessedSegments()
	require.NoError(t, err)
	require.Contains(t, out, 0)
	assert.Equal(t, point.New(0, 0), out[0][0])
	assert.Equal(t, point.New(1, 1), out[0][1])
}

func TestProcessedSegmentsDuplicateLeftIsError(t *testing.T) {
	s := eventstore.New(1e-9)
	s.AddPoint(0, 0, segment.Participant{Index: 0, Role: types.Left})
	s.AddPoint(5, 5, segment.Participant{Index: 0, Role: types.Left})

	_, err := s.ProcessedSegments()
	assert.Error(t, err)
}

func TestTraverseIsOrdered(t *testing.T) {
	s := eventstore.New(1e-9)
	s.AddPoint(5, 5, segment.Participant{Index: 0, Role: types.Left})
	s.AddPoint(1, 1, segment.Participant{Index: 1, Role: types.Left})
	s.AddPoint(3, 3, segment.Participant{Index: 2, Role: types.Left})

	events := s.Traverse()
	require.Len(t, events, 3)
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i-1].Point.Less(events[i].Point))
	}
}
