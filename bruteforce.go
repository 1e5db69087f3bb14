package sweep

import (
	"github.com/go-sweep/sweep/options"
	"github.com/go-sweep/sweep/segment"
)

// FindIntersectionsBruteForce performs a naive O(n²) check of every segment
// pair and reports each pair whose intersection is not empty. Overlapping
// collinear pairs are reported directly as overlaps; no merge pass is
// needed.
//
// It accepts the same input and produces the same result format as
// [FindIntersections], and serves as the reference oracle in tests and
// fuzzing. For small inputs its lower constant overhead often makes it the
// faster choice.
func FindIntersectionsBruteForce(segments []segment.Segment, opts ...options.GeometryOptionsFunc) []Intersection {
	var intersections []Intersection
	step := 0
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			step++
			result := segments[i].Intersection(segments[j], opts...)
			if result.IntersectionType == segment.IntersectionNone {
				continue
			}
			pair := sortedPair(SegmentIndex(i), SegmentIndex(j))
			intersections = append(intersections, Intersection{
				IntersectionType:   result.IntersectionType,
				IntersectionPoint:  result.IntersectionPoint,
				OverlappingSegment: result.OverlappingSegment,
				Segments:           pair[:],
				Step:               step,
			})
		}
	}
	return intersections
}
