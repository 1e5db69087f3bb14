package sweep

import (
	"slices"

	"github.com/go-sweep/sweep/numeric"
	"github.com/go-sweep/sweep/options"
	"github.com/go-sweep/sweep/point"
	"github.com/go-sweep/sweep/segment"
)

// FindIntersections computes all intersection points and overlapping
// sub-segments among the given segments using the plane-sweep algorithm, in
// O((n+k) log n) time for n segments and k intersections.
//
// The input slice is read-only during the call; reported intersections refer
// to segments by their index into it. Zero-length segments cannot be
// constructed, so every element is a valid segment. The same input with the
// same epsilon always produces the same result, and permuting the input
// changes only the indices, not the set of intersections.
//
// If [options.WithEpsilon] is provided, every comparison made during the
// sweep (event ordering, status ordering, containment, bounding boxes)
// goes through that tolerance.
func FindIntersections(segments []segment.Segment, opts ...options.GeometryOptionsFunc) []Intersection {
	return calculate(segments, &stepLog{}, opts...)
}

// FindIntersectionsWithSteps runs the same sweep as [FindIntersections] and
// additionally returns a record of every internal transition: queue
// initialisation, event pops, the U/L/C sets, status mutations, neighbor
// lookups, discovered events, and the merge pass. Recording does not change
// the result.
func FindIntersectionsWithSteps(segments []segment.Segment, opts ...options.GeometryOptionsFunc) ([]Intersection, []Step) {
	rec := &stepLog{capture: true}
	intersections := calculate(segments, rec, opts...)
	return intersections, rec.steps
}

// calculate is the sweep driver shared by the fast and recording entry
// points.
func calculate(segments []segment.Segment, rec *stepLog, opts ...options.GeometryOptionsFunc) []Intersection {
	rec.record(StepInit, nil)

	// Initialize an empty event queue Q. Next, insert the segment endpoints
	// into Q; when an upper endpoint is inserted, the corresponding segment
	// should be stored with it.
	rec.record(StepInitQueueBegin, nil)
	Q := newEventQueue(opts...)
	for i, seg := range segments {
		Q.Insert(seg.Upper(), SegmentIndex(i))
		Q.Insert(seg.Lower())
		rec.record(StepInsertEndpoint, func(s *Step) {
			s.Segment = SegmentIndex(i)
			s.Queue = Q.snapshot()
		})
	}

	// Initialize an empty status structure T.
	T := newStatusTree(segments, opts...)
	rec.record(StepStatusInit, func(s *Step) {
		s.Queue = Q.snapshot()
	})

	var lean []Intersection

	// while Q is not empty: determine the next event point p in Q, delete
	// it, and handle it.
	for !Q.IsEmpty() {
		p, UofP := Q.Pop()
		rec.record(StepPopEvent, func(s *Step) {
			s.Event = &p
			s.UofP = slices.Clone(UofP)
			s.Queue = Q.snapshot()
			s.Status = T.InOrder()
		})
		handleEventPoint(p, UofP, Q, T, &lean, rec, opts...)
	}

	intersections := mergeIntersections(lean, rec, opts...)
	rec.record(StepEnd, nil)
	return intersections
}

// handleEventPoint processes one event point p: it reports p if more than
// one segment passes through it, updates the status structure so that the
// order of segments corresponds to a sweep line just below p, and tests the
// segments that became adjacent for future intersection events.
func handleEventPoint(
	p point.Point,
	UofP []SegmentIndex,
	Q *eventQueue,
	T *statusTree,
	lean *[]Intersection,
	rec *stepLog,
	opts ...options.GeometryOptionsFunc,
) {
	// Let U(p) be the set of segments whose upper endpoint is p; these
	// segments are stored with the event point. (For horizontal segments the
	// upper endpoint is by definition the left endpoint.)
	//
	// Find all segments stored in T that contain p; they are adjacent in T.
	// L(p) is the subset whose lower endpoint is p; C(p) the subset that
	// contains p in its interior.
	var LofP, CofP []SegmentIndex
	for _, s := range T.ContainingSegments(p) {
		switch {
		case T.segments[s].Lower().Eq(p, opts...):
			LofP = append(LofP, s)
		case T.segments[s].Upper().Eq(p, opts...):
			// Stored with the event point already.
		default:
			CofP = append(CofP, s)
		}
	}
	rec.record(StepComputeLCSets, func(s *Step) {
		s.Event = &p
		s.UofP = slices.Clone(UofP)
		s.LofP = slices.Clone(LofP)
		s.CofP = slices.Clone(CofP)
		s.Queue = Q.snapshot()
		s.Status = T.InOrder()
	})

	union := make([]SegmentIndex, 0, len(UofP)+len(LofP)+len(CofP))
	union = append(union, UofP...)
	union = append(union, LofP...)
	union = append(union, CofP...)
	rec.record(StepComputeULCUnion, func(s *Step) {
		s.Event = &p
		s.Union = slices.Clone(union)
		s.UofP = slices.Clone(UofP)
		s.LofP = slices.Clone(LofP)
		s.CofP = slices.Clone(CofP)
	})

	// if L(p) ∪ U(p) ∪ C(p) contains more than one segment, report p as an
	// intersection. Each pair is reported separately; pairs sharing more
	// than one point collapse to an overlap in the merge pass.
	if len(union) > 1 {
		for i := 0; i < len(union); i++ {
			for j := i + 1; j < len(union); j++ {
				pair := sortedPair(union[i], union[j])
				idx := len(*lean)
				step := rec.record(StepReportIntersection, func(s *Step) {
					s.Event = &p
					s.Intersection = idx
				})
				*lean = append(*lean, Intersection{
					IntersectionType:  segment.IntersectionPoint,
					IntersectionPoint: p,
					Segments:          pair[:],
					Step:              step,
				})
			}
		}
	}

	// Delete the segments in L(p) ∪ C(p) from T.
	for _, s := range LofP {
		T.Delete(s, p)
	}
	for _, s := range CofP {
		T.Delete(s, p)
	}
	rec.record(StepDeleteLC, func(s *Step) {
		s.Event = &p
		s.Status = T.InOrder()
	})

	// Insert the segments in U(p) ∪ C(p) into T. The order in T corresponds
	// to the order in which they are intersected by a sweep line just below
	// p; a horizontal segment comes last among all segments containing p.
	for _, s := range UofP {
		T.Insert(s, p)
	}
	for _, s := range CofP {
		T.Insert(s, p)
	}
	T.verifyOrder(p)
	rec.record(StepInsertUC, func(s *Step) {
		s.Event = &p
		s.Status = T.InOrder()
	})

	if len(UofP)+len(CofP) == 0 {
		// Let sl and sr be the left and right neighbors of p in T.
		sl, okL := T.LeftOfEvent(p)
		sr, okR := T.RightOfEvent(p)
		rec.record(StepNeighborsNone, func(s *Step) {
			s.Event = &p
			s.Left = sl
			s.Right = sr
		})
		if okL && okR {
			findNewEvent(sl, sr, p, Q, T, rec, opts...)
		}
		return
	}

	// Let s′ be the leftmost segment of U(p) ∪ C(p) in T and sl its left
	// neighbor; let s″ be the rightmost segment of U(p) ∪ C(p) in T and sr
	// its right neighbor.
	sPrime, _ := T.LeftMostThrough(p)
	sl, okL := T.LeftOfEvent(p)
	sDoublePrime, _ := T.RightMostThrough(p)
	sr, okR := T.RightOfEvent(p)
	rec.record(StepNeighborsBoth, func(s *Step) {
		s.Event = &p
		s.LeftMost = sPrime
		s.RightMost = sDoublePrime
		s.Left = sl
		s.Right = sr
	})
	if okL {
		findNewEvent(sl, sPrime, p, Q, T, rec, opts...)
	}
	if okR {
		findNewEvent(sDoublePrime, sr, p, Q, T, rec, opts...)
	}
}

// findNewEvent intersects the adjacent segments sl and sr. If they meet in a
// single point strictly below the sweep line, or on it and to the right of
// the current event point p, the point is inserted into the event queue. The
// queue merges by point, so rediscovering a known event is a no-op. Overlaps
// are not events; overlapping pairs are reported at their shared endpoints
// and collapsed by the merge pass.
func findNewEvent(
	sl, sr SegmentIndex,
	p point.Point,
	Q *eventQueue,
	T *statusTree,
	rec *stepLog,
	opts ...options.GeometryOptionsFunc,
) {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)

	rec.record(StepFindEvent, func(s *Step) {
		s.Event = &p
		s.Left = sl
		s.Right = sr
	})

	result := T.segments[sl].Intersection(T.segments[sr], opts...)
	if result.IntersectionType != segment.IntersectionPoint {
		return
	}

	q := result.IntersectionPoint
	below := numeric.FloatLessThan(q.Y(), p.Y(), geoOpts.Epsilon)
	rightOnLine := numeric.FloatEquals(q.Y(), p.Y(), geoOpts.Epsilon) &&
		numeric.FloatGreaterThan(q.X(), p.X(), geoOpts.Epsilon)
	if !below && !rightOnLine {
		return
	}

	rec.record(StepInsertIntersectionEvent, func(s *Step) {
		s.Event = &p
		s.Left = sl
		s.Right = sr
		s.Point = &q
	})
	Q.Insert(q)
}
