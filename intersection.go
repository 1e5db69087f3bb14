package sweep

import (
	"fmt"
	"slices"

	"github.com/google/btree"

	"github.com/go-sweep/sweep/options"
	"github.com/go-sweep/sweep/point"
	"github.com/go-sweep/sweep/segment"
)

// SegmentIndex identifies a segment by its position in the caller's input
// slice. The input slice is read-only during a run and indices are stable for
// the whole computation, so the index doubles as the segment's per-run
// identifier, display id, and the final tie-breaker in the status structure.
type SegmentIndex int

// NoSegment is the SegmentIndex used where a segment reference is absent,
// such as a missing neighbor in a step record.
const NoSegment SegmentIndex = -1

// Intersection is one reported intersection: either a single point shared by
// the participating segments, or, for collinear segments sharing more than
// one point, the overlapping sub-segment.
type Intersection struct {
	// IntersectionType is either [segment.IntersectionPoint] or
	// [segment.IntersectionOverlappingSegment]; no-intersection results are
	// never reported.
	IntersectionType segment.IntersectionType

	// IntersectionPoint holds the shared point when IntersectionType is
	// IntersectionPoint.
	IntersectionPoint point.Point

	// OverlappingSegment holds the shared sub-segment when IntersectionType
	// is IntersectionOverlappingSegment; its endpoints are the extreme points
	// of the overlap.
	OverlappingSegment segment.Segment

	// Segments holds the participating segment indices in ascending order.
	Segments []SegmentIndex

	// Step is the monotone step counter value at which the intersection was
	// reported.
	Step int
}

// String returns a human-readable representation of the intersection.
func (i Intersection) String() string {
	switch i.IntersectionType {
	case segment.IntersectionOverlappingSegment:
		return fmt.Sprintf("%s %s between segments %v", i.IntersectionType, i.OverlappingSegment, i.Segments)
	default:
		return fmt.Sprintf("%s %s between segments %v", i.IntersectionType, i.IntersectionPoint, i.Segments)
	}
}

// Eq reports whether two intersections are equal within the configured
// epsilon: same type, same participants, and the same point or overlap
// endpoints.
func (i Intersection) Eq(other Intersection, opts ...options.GeometryOptionsFunc) bool {
	if i.IntersectionType != other.IntersectionType {
		return false
	}
	if !slices.Equal(i.Segments, other.Segments) {
		return false
	}
	switch i.IntersectionType {
	case segment.IntersectionOverlappingSegment:
		return i.OverlappingSegment.Eq(other.OverlappingSegment, opts...)
	default:
		return i.IntersectionPoint.Eq(other.IntersectionPoint, opts...)
	}
}

// representative returns the point the intersection is sorted by: the point
// itself, or the upper endpoint of an overlap.
func (i Intersection) representative() point.Point {
	if i.IntersectionType == segment.IntersectionOverlappingSegment {
		return i.OverlappingSegment.Upper()
	}
	return i.IntersectionPoint
}

// Normalize returns a copy of the intersection list in canonical order:
// by coordinate under the event order, then by participating indices, then
// by type. Participant slices are already ascending; normalisation makes
// whole result lists comparable regardless of the order they were produced
// in.
func Normalize(intersections []Intersection, opts ...options.GeometryOptionsFunc) []Intersection {
	out := append([]Intersection{}, intersections...)
	slices.SortStableFunc(out, func(a, b Intersection) int {
		if c := a.representative().CompareEventOrder(b.representative(), opts...); c != 0 {
			return c
		}
		if c := slices.Compare(a.Segments, b.Segments); c != 0 {
			return c
		}
		return int(a.IntersectionType) - int(b.IntersectionType)
	})
	return out
}

// sortedPair returns the two indices in ascending order.
func sortedPair(a, b SegmentIndex) [2]SegmentIndex {
	if b < a {
		a, b = b, a
	}
	return [2]SegmentIndex{a, b}
}

// pairBucket accumulates the reported points of one unordered segment pair
// during the merge pass. Buckets live in a B-tree keyed by the pair, giving
// the merged output a deterministic per-pair order.
type pairBucket struct {
	pair   [2]SegmentIndex
	points []point.Point
	step   int
}

func pairBucketLess(a, b pairBucket) bool {
	if a.pair[0] != b.pair[0] {
		return a.pair[0] < b.pair[0]
	}
	return a.pair[1] < b.pair[1]
}

// mergeIntersections collapses the pairwise point reports produced during
// the sweep into the final result list: a pair reported at a single point
// stays a point intersection, while a pair reported at two or more distinct
// points is collinear and becomes a single overlap between the extreme
// points under the event order.
func mergeIntersections(lean []Intersection, rec *stepLog, opts ...options.GeometryOptionsFunc) []Intersection {
	buckets := btree.NewG(2, pairBucketLess)
	for idx, inter := range lean {
		rec.record(StepMergeQueueAppend, func(s *Step) {
			s.Intersection = idx
		})
		key := pairBucket{pair: sortedPair(inter.Segments[0], inter.Segments[1])}
		bucket, found := buckets.Get(key)
		if !found {
			bucket = key
			bucket.step = inter.Step
		}
		duplicate := false
		for _, p := range bucket.points {
			if p.Eq(inter.IntersectionPoint, opts...) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			bucket.points = append(bucket.points, inter.IntersectionPoint)
		}
		buckets.ReplaceOrInsert(bucket)
	}

	out := make([]Intersection, 0, buckets.Len())
	buckets.Ascend(func(bucket pairBucket) bool {
		if len(bucket.points) == 1 {
			out = append(out, Intersection{
				IntersectionType:  segment.IntersectionPoint,
				IntersectionPoint: bucket.points[0],
				Segments:          bucket.pair[:],
				Step:              bucket.step,
			})
			return true
		}

		upper := bucket.points[0]
		lower := bucket.points[0]
		for _, p := range bucket.points[1:] {
			if p.CompareEventOrder(upper, opts...) < 0 {
				upper = p
			}
			if p.CompareEventOrder(lower, opts...) > 0 {
				lower = p
			}
		}
		overlap, err := segment.NewFromPoints(upper, lower)
		if err != nil {
			panic(fmt.Errorf("merge produced a degenerate overlap for pair %v: %w", bucket.pair, err))
		}
		result := len(out)
		step := rec.record(StepMerge, func(s *Step) {
			s.Pair = bucket.pair
			s.Points = append([]point.Point{}, bucket.points...)
			s.Result = result
		})
		out = append(out, Intersection{
			IntersectionType:   segment.IntersectionOverlappingSegment,
			OverlappingSegment: overlap,
			Segments:           bucket.pair[:],
			Step:               step,
		})
		return true
	})
	return out
}
