// Package point defines the foundational geometric primitive of the sweep engine: a
// point in the plane with float64 coordinates.
//
// # Overview
//
// Point is deliberately non-generic (the engine works exclusively in float64, per
// its tolerance-driven design) and carries no global epsilon state. Every
// tolerance-sensitive comparison here takes TOL as an explicit parameter, so
// callers and tests can vary it per call rather than mutating shared state.
//
// # Key Features
//
//   - Ordering: Less implements the lexicographic (x, then y) order the sweep
//     advances through.
//   - Tolerance-based equality: EqTol treats two points as the same event if both
//     coordinates differ by less than TOL.
//   - Vector arithmetic: Sub, Add, CrossProduct, and DotProduct support the
//     segment comparator and the intersection classifier.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/segsweep/segsweep/types"
)

// Point represents a point in two-dimensional space with float64 coordinates.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{x: x, y: y}
}

// X returns the x-coordinate of the Point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the Point.
func (p Point) Y() float64 {
	return p.y
}

// Coordinates returns the X and Y coordinates of the Point as separate values.
func (p Point) Coordinates() (x, y float64) {
	return p.x, p.y
}

// Add returns the sum of two points as if they were vectors.
func (p Point) Add(q Point) Point {
	return New(p.x+q.x, p.y+q.y)
}

// Sub returns the vector from q to p (i.e. p - q).
func (p Point) Sub(q Point) Point {
	return New(p.x-q.x, p.y-q.y)
}

// CrossProduct returns the 2D cross product (determinant) of two vectors:
//
//	a x b = a.x*b.y - a.y*b.x
//
// A positive result indicates a counterclockwise turn, negative a clockwise
// turn, and zero indicates the vectors are collinear.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DotProduct returns the dot product of p and q.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// DistanceSquaredToPoint returns the squared Euclidean distance between p and q,
// avoiding a square root when only relative distance matters.
func (p Point) DistanceSquaredToPoint(q Point) float64 {
	dx := q.x - p.x
	dy := q.y - p.y
	return dx*dx + dy*dy
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Sqrt(p.DistanceSquaredToPoint(q))
}

// Less reports whether p sorts strictly before q in lexicographic (x, then y)
// order, the order the sweep advances through. It is a plain, tolerance-free
// comparison, as is its three-way form [Compare]; use [Point.EqTol] when
// TOL-aware behavior is required (event ordering still needs a strict order
// even between points that are within TOL of each other but not exactly
// coincident).
func (p Point) Less(q Point) bool {
	if p.x != q.x {
		return p.x < q.x
	}
	return p.y < q.y
}

// Compare returns -1, 0, or 1 as p is less than, equal to, or greater than q in
// lexicographic (x, then y) order. Suitable for use as an ordered-map key
// comparator (see the avltree package).
func Compare(p, q Point) int {
	switch {
	case p.x < q.x:
		return -1
	case p.x > q.x:
		return 1
	case p.y < q.y:
		return -1
	case p.y > q.y:
		return 1
	default:
		return 0
	}
}

// EqTol reports whether p and q are within tol of each other in both
// coordinates: the definition of "same event point" used throughout the sweep.
func (p Point) EqTol(q Point, tol float64) bool {
	return math.Abs(p.x-q.x) < tol && math.Abs(p.y-q.y) < tol
}

// String returns a string representation of p in the format "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.x, p.y)
}

// Orientation determines whether p, q, r form a clockwise turn, a
// counterclockwise turn, or are collinear, via the sign of the cross product
// of (q-p) and (r-p). tol is an absolute threshold on that cross product
// below which the three points are reported collinear. When q-p has unit
// length the cross product is the perpendicular distance of r from the line
// through p and q, so tol acts as an absolute distance (the comparator
// package calls it this way).
func Orientation(p, q, r Point, tol float64) types.PointOrientation {
	val := q.Sub(p).CrossProduct(r.Sub(p))
	switch {
	case val > tol:
		return types.PointsCounterClockwise
	case val < -tol:
		return types.PointsClockwise
	default:
		return types.PointsCollinear
	}
}

// MarshalJSON serializes Point as JSON.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{X: p.x, Y: p.y})
}

// UnmarshalJSON deserializes JSON into a Point.
func (p *Point) UnmarshalJSON(data []byte) error {
	var temp struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.x = temp.X
	p.y = temp.Y
	return nil
}
