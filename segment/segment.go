// Package segment provides the line segment type and the pairwise
// intersection predicate at the heart of the sweep library.
//
// # Overview
//
// A [Segment] is a finite straight segment between two distinct points,
// stored in canonical orientation: the upper endpoint precedes the lower one
// under the sweep's event order (higher y first; for a horizontal segment the
// upper endpoint is therefore its left endpoint). The canonical orientation
// is what lets the sweep driver treat "upper endpoint reached" and "lower
// endpoint reached" as the segment entering and leaving the status
// structure.
//
// # Intersection detection
//
// [Segment.Intersection] classifies the intersection of two segments as one
// of:
//   - [IntersectionNone]: disjoint, or parallel without touching.
//   - [IntersectionPoint]: a single shared point, including shared endpoints
//     of collinear segments.
//   - [IntersectionOverlappingSegment]: collinear segments sharing more than
//     one point; the overlap is returned as a sub-segment.
//
// The predicate works projectively: the segments' supporting lines are the
// cross products of their lifted endpoints, the candidate intersection is the
// cross product of the lines, and a finite candidate is accepted if it falls
// inside both segments' bounding boxes. Parallel lines surface as a meet at
// infinity rather than a division by zero.
package segment

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-sweep/sweep/numeric"
	"github.com/go-sweep/sweep/options"
	"github.com/go-sweep/sweep/point"
	"github.com/go-sweep/sweep/rectangle"
	"github.com/go-sweep/sweep/types"
)

// Segment represents a line segment in 2D space in canonical orientation:
// the upper endpoint precedes the lower endpoint under the event order
// (higher y first, then lower x).
type Segment struct {
	upper point.Point
	lower point.Point

	// Marked indicates the segment should be highlighted by a presentation
	// layer. The engine ignores it.
	Marked bool

	// Shown indicates the segment is visible in a presentation layer. The
	// engine ignores it.
	Shown bool
}

// New creates a Segment from two endpoint coordinates of any signed numeric
// type. The endpoints may be given in either order; they are sorted into
// canonical orientation. New returns an error if the endpoints coincide
// exactly: zero-length segments are rejected at construction and never reach
// the engine.
func New[T types.SignedNumber](x1, y1, x2, y2 T) (Segment, error) {
	return NewFromPoints(
		point.New(float64(x1), float64(y1)),
		point.New(float64(x2), float64(y2)),
	)
}

// NewFromPoints creates a Segment from two endpoints, sorting them into
// canonical orientation. It returns an error if the endpoints coincide.
func NewFromPoints(p1, p2 point.Point) (Segment, error) {
	if p1.X() == p2.X() && p1.Y() == p2.Y() {
		return Segment{}, fmt.Errorf("zero-length segment at %s", p1)
	}
	return orient(p1, p2), nil
}

// orient builds a Segment with the endpoints sorted into canonical
// orientation, without the zero-length check. Internal callers (the overlap
// branch of the intersection predicate) guarantee distinct endpoints.
func orient(p1, p2 point.Point) Segment {
	if p2.Y() > p1.Y() || (p2.Y() == p1.Y() && p2.X() < p1.X()) {
		p1, p2 = p2, p1
	}
	return Segment{
		upper: p1,
		lower: p2,
		Shown: true,
	}
}

// Bounds returns the axis-aligned bounding box of the segment. The box is
// degenerate (zero extent on one axis) for horizontal and vertical segments.
func (l Segment) Bounds() rectangle.Rectangle {
	return rectangle.NewFromPoints(l.upper, l.lower)
}

// ContainsPoint reports whether p lies on the segment: on the infinite line
// through the endpoints and inside the segment's bounding box.
//
// The collinearity test compares the cross product of (p - upper) and
// (lower - upper) against the configured epsilon scaled by the segment
// length, so that long segments tolerate the same per-coordinate rounding as
// short ones.
func (l Segment) ContainsPoint(p point.Point, opts ...options.GeometryOptionsFunc) bool {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)

	ap := p.Sub(l.upper)
	ab := l.lower.Sub(l.upper)

	adaptiveEpsilon := geoOpts.Epsilon * math.Max(l.Length(), 1)

	if numeric.Abs(ap.CrossProduct(ab)) > adaptiveEpsilon {
		return false
	}

	return l.Bounds().ContainsPoint(p, options.WithEpsilon(geoOpts.Epsilon))
}

// Eq reports whether two segments have the same endpoints within the
// configured epsilon. Canonical orientation makes the comparison
// order-insensitive.
func (l Segment) Eq(other Segment, opts ...options.GeometryOptionsFunc) bool {
	return l.upper.Eq(other.upper, opts...) && l.lower.Eq(other.lower, opts...)
}

// IsHorizontal reports whether both endpoints share a y-coordinate.
func (l Segment) IsHorizontal() bool {
	return l.upper.Y() == l.lower.Y()
}

// IsVertical reports whether both endpoints share an x-coordinate.
func (l Segment) IsVertical() bool {
	return l.upper.X() == l.lower.X()
}

// Length returns the Euclidean length of the segment.
func (l Segment) Length() float64 {
	return l.upper.DistanceToPoint(l.lower)
}

// Line returns the homogeneous line through the segment's endpoints.
func (l Segment) Line() point.HomogeneousLine {
	return l.upper.Homogeneous().Line(l.lower.Homogeneous())
}

// Lower returns the lower endpoint of the segment.
func (l Segment) Lower() point.Point {
	return l.lower
}

// MarshalJSON serialises the segment as its canonical endpoints.
func (l Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Upper point.Point `json:"upper"`
		Lower point.Point `json:"lower"`
	}{
		Upper: l.upper,
		Lower: l.lower,
	})
}

// Slope returns the slope dy/dx of the segment, or NaN for a vertical
// segment. Use math.IsNaN to test for the vertical case.
func (l Segment) Slope() float64 {
	dx := l.lower.X() - l.upper.X()
	dy := l.lower.Y() - l.upper.Y()
	if dx == 0 {
		return math.NaN()
	}
	return dy / dx
}

// String returns the segment formatted as "(x1,y1)(x2,y2)", upper endpoint
// first.
func (l Segment) String() string {
	return fmt.Sprintf("(%v,%v)(%v,%v)", l.upper.X(), l.upper.Y(), l.lower.X(), l.lower.Y())
}

// UnmarshalJSON deserialises a segment and restores canonical orientation.
// It rejects zero-length segments like the constructors do.
func (l *Segment) UnmarshalJSON(data []byte) error {
	var temp struct {
		Upper point.Point `json:"upper"`
		Lower point.Point `json:"lower"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	seg, err := NewFromPoints(temp.Upper, temp.Lower)
	if err != nil {
		return err
	}
	*l = seg
	return nil
}

// Upper returns the upper endpoint of the segment.
func (l Segment) Upper() point.Point {
	return l.upper
}

// XAtY returns the x-coordinate where the segment crosses the horizontal line
// at y, or NaN if y is outside the segment's y-range or the segment is
// horizontal at a different y. For a vertical segment the result is the
// constant x; for a horizontal segment at its own y the x-coordinate is not
// unique and NaN is returned; callers that need a key for a horizontal
// segment clamp their query x into the segment's x-range instead.
func (l Segment) XAtY(y float64) float64 {
	if (y < l.upper.Y() && y < l.lower.Y()) || (y > l.upper.Y() && y > l.lower.Y()) {
		return math.NaN()
	}
	if l.IsHorizontal() {
		return math.NaN()
	}
	if l.IsVertical() {
		return l.upper.X()
	}
	return l.upper.X() + (y-l.upper.Y())*(l.lower.X()-l.upper.X())/(l.lower.Y()-l.upper.Y())
}
