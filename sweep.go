// Package sweep computes all pairwise intersections of a set of planar line
// segments.
//
// # Overview
//
// The package implements the Bentley–Ottmann plane-sweep algorithm as
// described in Section 2.1 of [Computational Geometry: Algorithms and
// Applications]: a horizontal sweep line moves from high y to low y
// (breaking ties left to right), an event queue holds the segment endpoints
// and the discovered intersection points still ahead of the line, and a
// status structure maintains the left-to-right order of the segments
// currently crossing the line. Only segments that become adjacent in the
// status structure are tested against each other, which yields all k
// intersections among n segments in O((n+k) log n) time.
//
// # Entry points
//
//   - [FindIntersections] runs the plane sweep.
//   - [FindIntersectionsWithSteps] runs the same sweep and additionally
//     returns a trace of every internal transition, for visualisation and
//     debugging.
//   - [FindIntersectionsBruteForce] checks every pair of segments in O(n²).
//     It is the reference oracle the sweep is tested against, and is often
//     faster for small inputs.
//
// All three accept the same input, a read-only slice of
// [segment.Segment], and report intersections in the same format: a single
// point, or, for collinear segments sharing more than one point, the
// overlapping sub-segment. Segments are identified by their index into the
// input slice.
//
// # Precision
//
// Coordinates are float64. Callers choose an epsilon tolerance with
// [options.WithEpsilon]; every comparison made during a call goes through
// that one tolerance. With no option comparisons are exact, which is only
// appropriate for inputs whose intersections have exactly representable
// coordinates.
//
// [Computational Geometry: Algorithms and Applications]: https://www.springer.com/gp/book/9783540779735
package sweep

func init() {
	logDebugf("debug logging enabled")
}
