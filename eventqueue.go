package sweep

import (
	"fmt"
	"strings"

	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/go-sweep/sweep/options"
	"github.com/go-sweep/sweep/point"
)

// eventQueue is the ordered collection of future event points, a red-black
// tree keyed by event point in sweep order (highest y first, then lowest x).
//
// Each entry maps an event point to U(p), the set of segment indices whose
// upper endpoint is that point. Lower endpoints and discovered intersection
// points carry an empty set. No two entries share a point: inserting an
// existing point merges the segment sets.
type eventQueue struct {
	queue   *rbt.Tree
	epsilon float64
}

// newEventQueue creates an empty event queue ordered by the event order under
// the configured epsilon.
func newEventQueue(opts ...options.GeometryOptionsFunc) *eventQueue {
	geoOpts := options.ApplyGeometryOptions(options.GeometryOptions{Epsilon: 0}, opts...)
	Q := &eventQueue{epsilon: geoOpts.Epsilon}
	Q.queue = rbt.NewWith(func(a, b interface{}) int {
		p := a.(point.Point)
		q := b.(point.Point)
		return p.CompareEventOrder(q, options.WithEpsilon(Q.epsilon))
	})
	return Q
}

// Insert adds an event at p carrying the given segment indices. If an event
// already exists at p the index sets are merged, so inserting the same
// intersection point twice is a no-op.
func (Q *eventQueue) Insert(p point.Point, segments ...SegmentIndex) {
	existing, found := Q.queue.Get(p)
	if found {
		if len(segments) == 0 {
			return
		}
		Q.queue.Put(p, mergeIndices(existing.([]SegmentIndex), segments))
		return
	}
	Q.queue.Put(p, append([]SegmentIndex{}, segments...))
}

// IsEmpty reports whether the queue holds no events.
func (Q *eventQueue) IsEmpty() bool {
	return Q.queue.Empty()
}

// Len returns the number of distinct event points in the queue.
func (Q *eventQueue) Len() int {
	return Q.queue.Size()
}

// Pop removes and returns the smallest event point under the event order
// together with U(p). It panics if the queue is empty; the driver's loop
// condition guarantees it never is.
func (Q *eventQueue) Pop() (point.Point, []SegmentIndex) {
	node := Q.queue.Left()
	if node == nil {
		panic(fmt.Errorf("pop from empty event queue"))
	}
	Q.queue.Remove(node.Key)
	return node.Key.(point.Point), node.Value.([]SegmentIndex)
}

// snapshot returns the queue contents in event order, for step records.
func (Q *eventQueue) snapshot() []EventSnapshot {
	out := make([]EventSnapshot, 0, Q.queue.Size())
	iter := Q.queue.Iterator()
	for iter.Next() {
		out = append(out, EventSnapshot{
			Point:    iter.Key().(point.Point),
			Segments: append([]SegmentIndex{}, iter.Value().([]SegmentIndex)...),
		})
	}
	return out
}

// String returns the queue contents in event order, one event per line.
func (Q *eventQueue) String() string {
	out := strings.Builder{}
	iter := Q.queue.Iterator()
	i := 0
	for iter.Next() {
		k := iter.Key().(point.Point)
		v := iter.Value().([]SegmentIndex)
		out.WriteString(fmt.Sprintf("event %d: %s U(p): %v\n", i, k, v))
		i++
	}
	return out.String()
}

// mergeIndices returns the union of a and b, preserving the order of first
// appearance.
func mergeIndices(a, b []SegmentIndex) []SegmentIndex {
	out := append([]SegmentIndex{}, a...)
	for _, s := range b {
		seen := false
		for _, existing := range out {
			if existing == s {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, s)
		}
	}
	return out
}
