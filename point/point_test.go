package point

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sweep/sweep/options"
)

func TestCompareEventOrder(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		expected int
	}{
		"higher y first":                  {p: New(10, 5), q: New(0, 3), expected: -1},
		"lower y second":                  {p: New(0, 3), q: New(10, 5), expected: 1},
		"same y lower x first":            {p: New(-2, 5), q: New(7, 5), expected: -1},
		"same y higher x second":          {p: New(7, 5), q: New(-2, 5), expected: 1},
		"equal points":                    {p: New(1, 1), q: New(1, 1), expected: 0},
		"y dominates even when x smaller": {p: New(-100, 1), q: New(0, 2), expected: 1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.CompareEventOrder(tc.q))
		})
	}
}

func TestCompareEventOrder_epsilon(t *testing.T) {
	p := New(0, 5)
	q := New(1e-12, 5+1e-12)
	assert.Equal(t, 0, p.CompareEventOrder(q, options.WithEpsilon(1e-9)))
	assert.NotEqual(t, 0, p.CompareEventOrder(q))
}

func TestEq(t *testing.T) {
	assert.True(t, New(1, 2).Eq(New(1, 2)))
	assert.False(t, New(1, 2).Eq(New(1, 2.0000001)))
	assert.True(t, New(1, 2).Eq(New(1, 2.0000001), options.WithEpsilon(1e-6)))
}

func TestVectorOps(t *testing.T) {
	p := New(3, 4)
	q := New(1, 2)

	assert.True(t, p.Sub(q).Eq(New(2, 2)))
	assert.True(t, p.Translate(q).Eq(New(4, 6)))
	assert.Equal(t, 5.0, New(0, 0).DistanceToPoint(p))
	assert.Equal(t, 3.0*2-4.0*1, p.CrossProduct(q))
	assert.Equal(t, 3.0*1+4.0*2, p.DotProduct(q))
}

func TestJSONRoundTrip(t *testing.T) {
	p := New(1.5, -2.25)
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1.5,"y":-2.25}`, string(b))

	var q Point
	require.NoError(t, json.Unmarshal(b, &q))
	assert.True(t, p.Eq(q))
}

func TestString(t *testing.T) {
	assert.Equal(t, "(1, 2)", New(1, 2).String())
	assert.Equal(t, "(1.5, -2)", New(1.5, -2).String())
}
