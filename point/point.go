// Package point defines the foundational geometric primitive of the sweep
// library, the Point type, together with the homogeneous coordinate kernel
// used by the segment intersection routine.
//
// # Overview
//
// [Point] represents a two-dimensional point with float64 coordinates and
// provides the vector arithmetic (translation, cross and dot products,
// distances) that the higher-level types are built on.
//
// Points additionally carry the sweep's event order: an event point p
// precedes q when p.y > q.y, or p.y == q.y and p.x < q.x. The sweep line
// moves from high y to low y, breaking ties left to right; see
// [Point.CompareEventOrder].
//
// # Homogeneous coordinates
//
// [HomogeneousPoint] and [HomogeneousLine] represent projective points
// (x, y, w) and lines a·x + b·y + c·w = 0. The line through two points and
// the intersection of two lines are both cross products, which turns the
// segment intersection predicate into two cross products and a bounding-box
// check. Parallel lines meet at a point at infinity (w == 0) rather than
// producing a division error.
//
// # Notes
//
// Comparison operations accept the usual [options.WithEpsilon] tolerance;
// with no option they are exact.
package point

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-sweep/sweep/numeric"
	"github.com/go-sweep/sweep/options"
)

// Point represents a point in two-dimensional space with x and y coordinates
// of type float64.
type Point struct {
	x float64
	y float64
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float64) Point {
	return Point{
		x: x,
		y: y,
	}
}

// CompareEventOrder compares p and q under the sweep's event order and
// returns -1 if p precedes q, +1 if q precedes p, and 0 if the two are equal
// within the configured epsilon.
//
// The event order processes higher y first, then lower x: p precedes q if and
// only if p.y > q.y, or p.y == q.y and p.x < q.x.
func (p Point) CompareEventOrder(q Point, opts ...options.GeometryOptionsFunc) int {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	if c := numeric.FloatCompare(q.y, p.y, geoOpts.Epsilon); c != 0 {
		return c
	}
	return numeric.FloatCompare(p.x, q.x, geoOpts.Epsilon)
}

// CrossProduct computes the 2D scalar cross product (determinant) of vectors
// p and q:
//
//	p.X*q.Y - p.Y*q.X
//
// The sign indicates the rotational direction from p to q; a zero result
// means the vectors are collinear.
func (p Point) CrossProduct(q Point) float64 {
	return p.x*q.y - p.y*q.x
}

// DistanceToPoint returns the Euclidean distance between p and q.
func (p Point) DistanceToPoint(q Point) float64 {
	return math.Hypot(p.x-q.x, p.y-q.y)
}

// DotProduct computes the dot product of vectors p and q.
func (p Point) DotProduct(q Point) float64 {
	return p.x*q.x + p.y*q.y
}

// Eq reports whether p and q are equal, comparing each coordinate within the
// configured epsilon. With no options the comparison is exact.
func (p Point) Eq(q Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return numeric.FloatEquals(p.x, q.x, geoOpts.Epsilon) &&
		numeric.FloatEquals(p.y, q.y, geoOpts.Epsilon)
}

// Homogeneous lifts p onto the projective plane as (x, y, 1).
func (p Point) Homogeneous() HomogeneousPoint {
	return HomogeneousPoint{X: p.x, Y: p.y, W: 1}
}

// MarshalJSON serialises the point as {"x": ..., "y": ...}.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		X float64 `json:"x"`
		Y float64 `json:"y"`
	}{
		X: p.x,
		Y: p.y,
	})
}

// Sub returns the vector difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{
		x: p.x - q.x,
		y: p.y - q.y,
	}
}

// String returns the point formatted as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// Translate returns p shifted by the vector delta.
func (p Point) Translate(delta Point) Point {
	return Point{
		x: p.x + delta.x,
		y: p.y + delta.y,
	}
}

// UnmarshalJSON deserialises a point from {"x": ..., "y": ...}.
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

// X returns the x-coordinate of the point.
func (p Point) X() float64 {
	return p.x
}

// Y returns the y-coordinate of the point.
func (p Point) Y() float64 {
	return p.y
}
