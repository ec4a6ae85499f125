package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampCellWidth(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		expected int
	}{
		{
			name:     "Below minimum",
			width:    -5,
			expected: 15,
		},
		{
			name:     "At minimum",
			width:    15,
			expected: 15,
		},
		{
			name:     "In range",
			width:    20,
			expected: 20,
		},
		{
			name:     "At maximum",
			width:    35,
			expected: 35,
		},
		{
			name:     "Above maximum",
			width:    1000,
			expected: 35,
		},
		{
			name:     "Zero",
			width:    0,
			expected: 15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClampCellWidth(tt.width))
		})
	}
}

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		aspect     float64
		cellAspect float64
		expectedW  int
		expectedH  int
	}{
		{
			name:      "Square image",
			width:     20,
			aspect:    1,
			expectedW: 20,
			expectedH: 10,
		},
		{
			name:      "Tall image",
			width:     20,
			aspect:    2,
			expectedW: 20,
			expectedH: 20,
		},
		{
			name:      "Wide image",
			width:     30,
			aspect:    0.5,
			expectedW: 30,
			expectedH: 8, // round(30 * 0.5 / 2) = round(7.5)
		},
		{
			name:      "Width clamped low",
			width:     3,
			aspect:    1,
			expectedW: 15,
			expectedH: 8, // round(15 / 2) = round(7.5)
		},
		{
			name:      "Width clamped high",
			width:     500,
			aspect:    1,
			expectedW: 35,
			expectedH: 18, // round(35 / 2) = round(17.5)
		},
		{
			name:       "Custom cell aspect",
			width:      20,
			aspect:     1,
			cellAspect: 1,
			expectedW:  20,
			expectedH:  20,
		},
		{
			name:      "Extremely wide image keeps at least one row",
			width:     20,
			aspect:    0.01,
			expectedW: 20,
			expectedH: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := ResolveDimensions(tt.width, tt.aspect, tt.cellAspect)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedW, w)
			assert.Equal(t, tt.expectedH, h)
		})
	}
}

func TestResolveDimensionsInvalidAspect(t *testing.T) {
	for _, aspect := range []float64{0, -1} {
		_, _, err := ResolveDimensions(20, aspect, 0)
		require.Error(t, err)

		var geomErr *GeometryError
		assert.ErrorAs(t, err, &geomErr)
		assert.Equal(t, aspect, geomErr.Aspect)
	}
}
