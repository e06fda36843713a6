package point_test

import (
	"testing"

	"github.com/segsweep/segsweep/point"
	"github.com/segsweep/segsweep/types"
	"github.com/stretchr/testify/assert"
)

func TestPointBasics(t *testing.T) {
	p := point.New(1, 2)
	q := point.New(3, 4)

	assert.Equal(t, point.New(4, 6), p.Add(q))
	assert.Equal(t, point.New(-2, -2), p.Sub(q))
	assert.Equal(t, 1.0*4-2.0*3, p.CrossProduct(q))
	assert.Equal(t, 1.0*3+2.0*4, p.DotProduct(q))
	assert.Equal(t, "(1,2)", p.String())
}

func TestPointLessAndCompare(t *testing.T) {
	a := point.New(0, 1)
	b := point.New(0, 2)
	c := point.New(1, 0)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Less(c))

	assert.Equal(t, -1, point.Compare(a, b))
	assert.Equal(t, 1, point.Compare(c, a))
	assert.Equal(t, 0, point.Compare(a, a))
}

func TestPointEqTol(t *testing.T) {
	a := point.New(1.0, 1.0)
	b := point.New(1.0+1e-10, 1.0-1e-10)
	c := point.New(1.1, 1.0)

	assert.True(t, a.EqTol(b, 1e-9))
	assert.False(t, a.EqTol(c, 1e-9))
}

func TestOrientation(t *testing.T) {
	origin := point.New(0, 0)
	right := point.New(1, 0)
	up := point.New(0, 1)
	down := point.New(0, -1)
	collinear := point.New(2, 0)

	assert.Equal(t, types.PointsCounterClockwise, point.Orientation(origin, right, up, 1e-9))
	assert.Equal(t, types.PointsClockwise, point.Orientation(origin, right, down, 1e-9))
	assert.Equal(t, types.PointsCollinear, point.Orientation(origin, right, collinear, 1e-9))
}

func TestPointJSONRoundTrip(t *testing.T) {
	p := point.New(3.5, -2.25)
	data, err := p.MarshalJSON()
	assert.NoError(t, err)

	var q point.Point
	assert.NoError(t, q.UnmarshalJSON(data))
	assert.Equal(t, p, q)
}
