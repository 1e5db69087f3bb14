// Package rectangle provides axis-aligned rectangles. Within the sweep
// library they serve as bounding boxes: the segment intersection predicate
// accepts a candidate point only if it falls inside the bounding boxes of
// both segments.
package rectangle

import (
	"fmt"
	"math"

	"github.com/go-sweep/sweep/numeric"
	"github.com/go-sweep/sweep/options"
	"github.com/go-sweep/sweep/point"
)

// Rectangle represents an axis-aligned rectangle defined by its bottom-left
// and top-right corners.
type Rectangle struct {
	bottomLeft point.Point
	topRight   point.Point
}

// New creates a rectangle from two corner coordinates. The corners may be
// given in any order; they are normalised so the stored bottom-left corner
// has the minimum coordinates on each axis.
func New(x1, y1, x2, y2 float64) Rectangle {
	return NewFromPoints(point.New(x1, y1), point.New(x2, y2))
}

// NewFromPoints creates a rectangle spanning the two points pt1 and pt2,
// normalising the corners per axis. A degenerate rectangle (zero width or
// height) is valid; the bounding box of a horizontal or vertical segment has
// zero extent on one axis.
func NewFromPoints(pt1, pt2 point.Point) Rectangle {
	return Rectangle{
		bottomLeft: point.New(math.Min(pt1.X(), pt2.X()), math.Min(pt1.Y(), pt2.Y())),
		topRight:   point.New(math.Max(pt1.X(), pt2.X()), math.Max(pt1.Y(), pt2.Y())),
	}
}

// BottomLeft returns the corner with the minimum x and y coordinates.
func (r Rectangle) BottomLeft() point.Point {
	return r.bottomLeft
}

// ContainsPoint reports whether p lies inside the rectangle or on its
// boundary, with each per-axis comparison made within the configured epsilon.
func (r Rectangle) ContainsPoint(p point.Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	return numeric.FloatGreaterThanOrEqualTo(p.X(), r.bottomLeft.X(), geoOpts.Epsilon) &&
		numeric.FloatLessThanOrEqualTo(p.X(), r.topRight.X(), geoOpts.Epsilon) &&
		numeric.FloatGreaterThanOrEqualTo(p.Y(), r.bottomLeft.Y(), geoOpts.Epsilon) &&
		numeric.FloatLessThanOrEqualTo(p.Y(), r.topRight.Y(), geoOpts.Epsilon)
}

// Eq reports whether two rectangles have the same corners within the
// configured epsilon.
func (r Rectangle) Eq(other Rectangle, opts ...options.GeometryOptionsFunc) bool {
	return r.bottomLeft.Eq(other.bottomLeft, opts...) && r.topRight.Eq(other.topRight, opts...)
}

// Height returns the vertical extent of the rectangle.
func (r Rectangle) Height() float64 {
	return r.topRight.Y() - r.bottomLeft.Y()
}

// String returns the rectangle formatted as "[(x1, y1), (x2, y2)]".
func (r Rectangle) String() string {
	return fmt.Sprintf("[%s, %s]", r.bottomLeft, r.topRight)
}

// TopRight returns the corner with the maximum x and y coordinates.
func (r Rectangle) TopRight() point.Point {
	return r.topRight
}

// Width returns the horizontal extent of the rectangle.
func (r Rectangle) Width() float64 {
	return r.topRight.X() - r.bottomLeft.X()
}
