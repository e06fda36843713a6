package comparator_test

import (
	"testing"

	"github.com/segsweep/segsweep/comparator"
	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/segment"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

func TestCompareParallelHorizontal(t *testing.T) {
	above := segment.New(point.New(0, 1), point.New(2, 1))
	below := segment.New(point.New(0, 0), point.New(2, 0))

	assert.Positive(t, comparator.Compare(above, below, tol))
	assert.Negative(t, comparator.Compare(below, above, tol))
}

func TestCompareSharedLeftEndpointTieBreak(t *testing.T) {
	horizontal := segment.New(point.New(0, 0), point.New(2, 0))
	rising := segment.New(point.New(0, 0), point.New(2, 2))

	// To the right of their shared origin, the rising segment is above the
	// horizontal one; the comparator's tie rule must reflect that order.
	assert.Negative(t, comparator.Compare(horizontal, rising, tol))
	assert.Positive(t, comparator.Compare(rising, horizontal, tol))
}

func TestCompareDiagonalCrossing(t *testing.T) {
	// Two segments crossing in an X shape; each is above the other on
	// opposite sides of the crossing, so away from the crossing point
	// (where each is evaluated by its own left endpoint) the comparator
	// must still produce a consistent answer for their overlap region.
	a := segment.New(point.New(0, 0), point.New(2, 2))
	b := segment.New(point.New(0, 2), point.New(2, 0))

	resAB := comparator.Compare(a, b, tol)
	resBA := comparator.Compare(b, a, tol)
	assert.Equal(t, -resAB, resBA)
}
