package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloatEquals(t *testing.T) {
	tests := map[string]struct {
		a, b, epsilon float64
		expected      bool
	}{
		"exact equality":            {a: 1.5, b: 1.5, epsilon: 0, expected: true},
		"within epsilon":            {a: 1.0, b: 1.0 + 1e-10, epsilon: 1e-9, expected: true},
		"outside epsilon":           {a: 1.0, b: 1.1, epsilon: 1e-9, expected: false},
		"zero epsilon exact only":   {a: 1.0, b: 1.0 + 1e-15, epsilon: 0, expected: false},
		"negative values":           {a: -3.0, b: -3.0 + 1e-10, epsilon: 1e-9, expected: true},
		"both positive infinity":    {a: math.Inf(1), b: math.Inf(1), epsilon: 1e-9, expected: true},
		"both negative infinity":    {a: math.Inf(-1), b: math.Inf(-1), epsilon: 1e-9, expected: true},
		"opposite infinities":       {a: math.Inf(1), b: math.Inf(-1), epsilon: 1e-9, expected: false},
		"infinity against a finite": {a: math.Inf(1), b: 1e300, epsilon: 1e-9, expected: false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FloatEquals(tc.a, tc.b, tc.epsilon))
		})
	}
}

func TestFloatOrdering(t *testing.T) {
	epsilon := 1e-9

	assert.True(t, FloatLessThan(1.0, 2.0, epsilon))
	assert.False(t, FloatLessThan(1.0, 1.0+1e-12, epsilon), "values within epsilon are not less than")
	assert.True(t, FloatGreaterThan(2.0, 1.0, epsilon))
	assert.False(t, FloatGreaterThan(1.0+1e-12, 1.0, epsilon), "values within epsilon are not greater than")
	assert.True(t, FloatLessThanOrEqualTo(1.0, 1.0+1e-12, epsilon))
	assert.True(t, FloatGreaterThanOrEqualTo(1.0+1e-12, 1.0, epsilon))
}

func TestFloatCompare(t *testing.T) {
	tests := map[string]struct {
		a, b, epsilon float64
		expected      int
	}{
		"less":            {a: 1.0, b: 2.0, epsilon: 1e-9, expected: -1},
		"greater":         {a: 2.0, b: 1.0, epsilon: 1e-9, expected: 1},
		"equal exact":     {a: 1.0, b: 1.0, epsilon: 0, expected: 0},
		"equal tolerant":  {a: 1.0, b: 1.0 + 1e-12, epsilon: 1e-9, expected: 0},
		"infinities tie":  {a: math.Inf(1), b: math.Inf(1), epsilon: 1e-9, expected: 0},
		"finite vs +inf":  {a: 5.0, b: math.Inf(1), epsilon: 1e-9, expected: -1},
		"-inf vs finite":  {a: math.Inf(-1), b: 5.0, epsilon: 1e-9, expected: -1},
		"near tie breaks": {a: 1.0, b: 1.0 + 2e-9, epsilon: 1e-9, expected: -1},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FloatCompare(tc.a, tc.b, tc.epsilon))
		})
	}
}

func TestSnapToEpsilon(t *testing.T) {
	assert.Equal(t, 3.0, SnapToEpsilon(3.0000000001, 1e-9))
	assert.Equal(t, -2.0, SnapToEpsilon(-1.9999999999, 1e-9))
	assert.Equal(t, 3.1, SnapToEpsilon(3.1, 1e-9))
	assert.Equal(t, 0.5, SnapToEpsilon(0.5, 1e-9), "midpoints are not snapped")
}
