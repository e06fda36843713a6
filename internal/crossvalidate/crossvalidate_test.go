package crossvalidate_test

import (
	"math/rand"
	"testing"

	"github.com/segsweep/segsweep/eventstore"
	"github.com/segsweep/segsweep/internal/crossvalidate"
	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/segment"
	"github.com/segsweep/segsweep/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrderingsAgree inserts the same widely-spaced point set into the
// hand-rolled event store and both off-the-shelf backends and checks all
// three produce the same ascending lex order.
func TestOrderingsAgree(t *testing.T) {
	pts := []point.Point{
		point.New(5, 5),
		point.New(1, 9),
		point.New(1, 2),
		point.New(-3, 0),
		point.New(7, -1),
		point.New(0, 0),
		point.New(3.5, 2.25),
	}

	store := eventstore.New(1e-9)
	rbt := crossvalidate.NewRBTEventQueue()
	bt := crossvalidate.NewBTreeEventQueue(8)

	for i, p := range pts {
		store.AddPoint(p.X(), p.Y(), segment.Participant{Index: i, Role: types.Left})
		rbt.Insert(p)
		bt.Insert(p)
	}

	var want []point.Point
	for _, e := range store.Traverse() {
		want = append(want, e.Point)
	}

	assert.Equal(t, want, rbt.Ordered())
	assert.Equal(t, want, bt.Ordered())
}

// TestOrderingsAgreeRandom repeats the comparison over randomly generated
// point sets, including duplicates, to flex the glomming/replace-on-equal
// paths of all three backends together.
func TestOrderingsAgreeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(40)
		pts := make([]point.Point, n)
		for i := range pts {
			x := float64(rng.Intn(10))
			y := float64(rng.Intn(10))
			pts[i] = point.New(x, y)
		}

		store := eventstore.New(1e-9)
		rbt := crossvalidate.NewRBTEventQueue()
		bt := crossvalidate.NewBTreeEventQueue(8)

		for i, p := range pts {
			store.AddPoint(p.X(), p.Y(), segment.Participant{Index: i, Role: types.Left})
			rbt.Insert(p)
			bt.Insert(p)
		}

		var want []point.Point
		for _, e := range store.Traverse() {
			want = append(want, e.Point)
		}

		require.Equal(t, want, rbt.Ordered(), "trial %d: rbt ordering diverged", trial)
		require.Equal(t, want, bt.Ordered(), "trial %d: btree ordering diverged", trial)
	}
}
