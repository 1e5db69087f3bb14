package segment

import (
	"fmt"

	"github.com/go-sweep/sweep/numeric"
	"github.com/go-sweep/sweep/options"
	"github.com/go-sweep/sweep/point"
)

// IntersectionType classifies the result of intersecting two segments.
type IntersectionType uint8

const (
	// IntersectionNone indicates the segments do not touch.
	IntersectionNone IntersectionType = iota

	// IntersectionPoint indicates the segments share exactly one point.
	IntersectionPoint

	// IntersectionOverlappingSegment indicates the segments are collinear and
	// share more than one point; the shared portion is itself a segment.
	IntersectionOverlappingSegment
)

// String returns a human-readable representation of the IntersectionType.
// It panics on an unsupported value.
func (t IntersectionType) String() string {
	switch t {
	case IntersectionNone:
		return "IntersectionNone"
	case IntersectionPoint:
		return "IntersectionPoint"
	case IntersectionOverlappingSegment:
		return "IntersectionOverlappingSegment"
	default:
		panic(fmt.Errorf("unsupported segment intersection type %d", uint8(t)))
	}
}

// IntersectionResult describes the intersection of two segments.
//
// IntersectionPoint is meaningful only when IntersectionType ==
// IntersectionPoint, and OverlappingSegment only when IntersectionType ==
// IntersectionOverlappingSegment.
type IntersectionResult struct {
	IntersectionType   IntersectionType
	IntersectionPoint  point.Point
	OverlappingSegment Segment
}

// String returns a human-readable representation of the result.
func (ir IntersectionResult) String() string {
	switch ir.IntersectionType {
	case IntersectionPoint:
		return fmt.Sprintf("%s: %s", ir.IntersectionType, ir.IntersectionPoint)
	case IntersectionOverlappingSegment:
		return fmt.Sprintf("%s: %s", ir.IntersectionType, ir.OverlappingSegment)
	default:
		return ir.IntersectionType.String()
	}
}

// Eq reports whether two results describe the same intersection within the
// configured epsilon.
func (ir IntersectionResult) Eq(other IntersectionResult, opts ...options.GeometryOptionsFunc) bool {
	if ir.IntersectionType != other.IntersectionType {
		return false
	}
	switch ir.IntersectionType {
	case IntersectionPoint:
		return ir.IntersectionPoint.Eq(other.IntersectionPoint, opts...)
	case IntersectionOverlappingSegment:
		return ir.OverlappingSegment.Eq(other.OverlappingSegment, opts...)
	default:
		return true
	}
}

// Intersection calculates the intersection between segments l and other.
//
// The supporting lines are met projectively: a finite meet lying inside both
// segments' bounding boxes is a point intersection (this covers proper
// crossings and shared endpoints of non-parallel segments alike). Otherwise
// the segments are parallel, collinear, or miss each other:
//
//   - identical endpoint sets yield the whole of l as an overlap;
//   - two distinct endpoints of either segment lying on the other yield the
//     overlap between those points;
//   - exactly one such point is a shared endpoint of collinear segments and
//     yields a point intersection;
//   - anything else is no intersection.
//
// Every comparison goes through the epsilon configured via
// [options.WithEpsilon]; reported point coordinates are snapped to whole
// numbers when within epsilon of one.
func (l Segment) Intersection(other Segment, opts ...options.GeometryOptionsFunc) IntersectionResult {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)

	meet := l.Line().Intersection(other.Line())
	if p, ok := meet.Cartesian(opts...); ok {
		if l.Bounds().ContainsPoint(p, opts...) && other.Bounds().ContainsPoint(p, opts...) {
			return IntersectionResult{
				IntersectionType: IntersectionPoint,
				IntersectionPoint: point.New(
					numeric.SnapToEpsilon(p.X(), geoOpts.Epsilon),
					numeric.SnapToEpsilon(p.Y(), geoOpts.Epsilon),
				),
			}
		}
		// A finite meet outside either bounding box: the segments can still
		// touch if they are collinear, which the endpoint checks below cover.
	}

	if l.upper.Eq(other.upper, opts...) && l.lower.Eq(other.lower, opts...) {
		return IntersectionResult{
			IntersectionType:   IntersectionOverlappingSegment,
			OverlappingSegment: l,
		}
	}

	// Collect every endpoint of one segment that lies on the other.
	shared := make([]point.Point, 0, 4)
	for _, p := range []point.Point{other.upper, other.lower} {
		if l.ContainsPoint(p, opts...) {
			shared = append(shared, p)
		}
	}
	for _, p := range []point.Point{l.upper, l.lower} {
		if other.ContainsPoint(p, opts...) {
			shared = append(shared, p)
		}
	}

	if len(shared) == 0 {
		return IntersectionResult{IntersectionType: IntersectionNone}
	}

	first := shared[0]
	for _, p := range shared[1:] {
		if !p.Eq(first, opts...) {
			return IntersectionResult{
				IntersectionType:   IntersectionOverlappingSegment,
				OverlappingSegment: orient(first, p),
			}
		}
	}

	// All collected points coincide: the segments share a single endpoint.
	return IntersectionResult{
		IntersectionType:  IntersectionPoint,
		IntersectionPoint: first,
	}
}
