package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantizeExactPaletteEntries(t *testing.T) {
	tests := []struct {
		name     string
		color    RGB
		expected uint8
	}{
		{
			name:     "Black",
			color:    RGB{0, 0, 0},
			expected: 0,
		},
		{
			name:     "Pure red system color",
			color:    RGB{255, 0, 0},
			expected: 9,
		},
		{
			name:     "Cube entry",
			color:    RGB{95, 135, 175},
			expected: 67, // 16 + 36*1 + 6*2 + 3
		},
		{
			name:     "Grayscale ramp entry",
			color:    RGB{8, 8, 8},
			expected: 232,
		},
		{
			name:     "Last grayscale entry",
			color:    RGB{238, 238, 238},
			expected: 255,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QuantizeANSI256(tt.color))
			assert.Equal(t, tt.color, PaletteEntry(tt.expected))
		})
	}
}

func TestQuantizeTiesGoToLowestIndex(t *testing.T) {
	// White appears at index 15 (system) and 231 (cube corner); the tie must
	// resolve to the lower index.
	assert.Equal(t, uint8(15), QuantizeANSI256(RGB{255, 255, 255}))
}

func TestQuantizeNearbyColor(t *testing.T) {
	// A color one step off a cube entry still lands on that entry.
	got := QuantizeANSI256(RGB{94, 136, 174})
	assert.Equal(t, RGB{95, 135, 175}, PaletteEntry(got))
}

func TestPaletteLayout(t *testing.T) {
	// Cube boundaries.
	assert.Equal(t, RGB{0, 0, 0}, PaletteEntry(16))
	assert.Equal(t, RGB{255, 255, 255}, PaletteEntry(231))
	// Grayscale boundaries.
	assert.Equal(t, RGB{8, 8, 8}, PaletteEntry(232))
	assert.Equal(t, RGB{238, 238, 238}, PaletteEntry(255))
}
