package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sweep/sweep/options"
	"github.com/go-sweep/sweep/point"
)

func TestIntersection(t *testing.T) {
	tests := map[string]struct {
		a, b     Segment
		expected IntersectionResult
	}{
		"proper crossing": {
			a: segFor(t, -50, 0, 50, 0),
			b: segFor(t, 0, -50, 0, 50),
			expected: IntersectionResult{
				IntersectionType:  IntersectionPoint,
				IntersectionPoint: point.New(0, 0),
			},
		},
		"diagonal crossing": {
			a: segFor(t, 0, 0, 10, 10),
			b: segFor(t, 0, 10, 10, 0),
			expected: IntersectionResult{
				IntersectionType:  IntersectionPoint,
				IntersectionPoint: point.New(5, 5),
			},
		},
		"t-junction endpoint on interior": {
			a: segFor(t, 0, 0, 10, 0),
			b: segFor(t, 5, 5, 5, 0),
			expected: IntersectionResult{
				IntersectionType:  IntersectionPoint,
				IntersectionPoint: point.New(5, 0),
			},
		},
		"shared endpoint of non-parallel segments": {
			a: segFor(t, 0, 0, 10, 0),
			b: segFor(t, 0, 0, 0, 10),
			expected: IntersectionResult{
				IntersectionType:  IntersectionPoint,
				IntersectionPoint: point.New(0, 0),
			},
		},
		"shared endpoint of collinear segments": {
			a: segFor(t, 12, 0, -12, 0),
			b: segFor(t, 12, 0, 24, 0),
			expected: IntersectionResult{
				IntersectionType:  IntersectionPoint,
				IntersectionPoint: point.New(12, 0),
			},
		},
		"disjoint": {
			a:        segFor(t, 0, 0, 1, 1),
			b:        segFor(t, 5, 5, 6, 7),
			expected: IntersectionResult{IntersectionType: IntersectionNone},
		},
		"lines cross outside the segments": {
			a:        segFor(t, 0, 0, 1, 1),
			b:        segFor(t, 10, 0, 11, -1),
			expected: IntersectionResult{IntersectionType: IntersectionNone},
		},
		"parallel not collinear": {
			a:        segFor(t, 0, 0, 10, 10),
			b:        segFor(t, 0, 1, 10, 11),
			expected: IntersectionResult{IntersectionType: IntersectionNone},
		},
		"collinear disjoint": {
			a:        segFor(t, 0, 0, 1, 1),
			b:        segFor(t, 5, 5, 9, 9),
			expected: IntersectionResult{IntersectionType: IntersectionNone},
		},
		"collinear partial overlap": {
			a: segFor(t, 0, 0, 6, 6),
			b: segFor(t, 2, 2, 9, 9),
			expected: IntersectionResult{
				IntersectionType:   IntersectionOverlappingSegment,
				OverlappingSegment: segFor(t, 2, 2, 6, 6),
			},
		},
		"collinear horizontal overlap": {
			a: segFor(t, -1, 0, 0, 0),
			b: segFor(t, 1, 0, -1, 0),
			expected: IntersectionResult{
				IntersectionType:   IntersectionOverlappingSegment,
				OverlappingSegment: segFor(t, -1, 0, 0, 0),
			},
		},
		"collinear containment": {
			a: segFor(t, 0, 0, 10, 0),
			b: segFor(t, 2, 0, 7, 0),
			expected: IntersectionResult{
				IntersectionType:   IntersectionOverlappingSegment,
				OverlappingSegment: segFor(t, 2, 0, 7, 0),
			},
		},
		"identical segments": {
			a: segFor(t, 0, 0, 4, 4),
			b: segFor(t, 4, 4, 0, 0),
			expected: IntersectionResult{
				IntersectionType:   IntersectionOverlappingSegment,
				OverlappingSegment: segFor(t, 0, 0, 4, 4),
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := tc.a.Intersection(tc.b, options.WithEpsilon(1e-9))
			assert.True(t, got.Eq(tc.expected, options.WithEpsilon(1e-9)),
				"got %s, want %s", got, tc.expected)

			// The predicate is symmetric up to the overlap's orientation.
			rev := tc.b.Intersection(tc.a, options.WithEpsilon(1e-9))
			assert.True(t, rev.Eq(tc.expected, options.WithEpsilon(1e-9)),
				"reversed: got %s, want %s", rev, tc.expected)
		})
	}
}

func TestIntersection_reportedPointLiesOnBothSegments(t *testing.T) {
	a := segFor(t, -254, 9992, -1, -258)
	b := segFor(t, -258, 8, 113, 0)

	got := a.Intersection(b, options.WithEpsilon(1e-9))
	require.Equal(t, IntersectionPoint, got.IntersectionType)
	assert.True(t, a.ContainsPoint(got.IntersectionPoint, options.WithEpsilon(1e-9)))
	assert.True(t, b.ContainsPoint(got.IntersectionPoint, options.WithEpsilon(1e-9)))
}

func TestIntersectionType_String(t *testing.T) {
	assert.Equal(t, "IntersectionNone", IntersectionNone.String())
	assert.Equal(t, "IntersectionPoint", IntersectionPoint.String())
	assert.Equal(t, "IntersectionOverlappingSegment", IntersectionOverlappingSegment.String())
	assert.Panics(t, func() { _ = IntersectionType(99).String() })
}
