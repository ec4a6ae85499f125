package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBlocksTrueColor(t *testing.T) {
	// 3 wide, 4 tall: two output lines of three cells.
	top := RGB{255, 0, 0}
	bottom := RGB{0, 0, 255}
	g := &PixelGrid{W: 3, H: 4, Pix: make([]RGB, 12)}
	for i := 0; i < 6; i++ {
		g.Pix[i] = top
	}
	for i := 6; i < 12; i++ {
		g.Pix[i] = bottom
	}

	block := RenderBlocks(g, TrueColor)
	require.Equal(t, 2, block.LineCount())
	assert.Equal(t, 3, block.Width)

	for _, line := range block.Lines {
		assert.Equal(t, 3, strings.Count(line, "▀"))
		assert.True(t, strings.HasSuffix(line, "\x1b[0m"), "line must end with a reset")
	}

	// Upper pixel drives the foreground, lower the background.
	assert.Contains(t, block.Lines[0], "\x1b[38;2;255;0;0m")
	assert.Contains(t, block.Lines[0], "\x1b[48;2;255;0;0m")
	assert.Contains(t, block.Lines[1], "\x1b[38;2;0;0;255m")
	assert.Contains(t, block.Lines[1], "\x1b[48;2;0;0;255m")
}

func TestRenderBlocksANSI256(t *testing.T) {
	g := uniformGrid(2, 2, RGB{255, 0, 0})

	block := RenderBlocks(g, ANSI256)
	require.Equal(t, 1, block.LineCount())
	assert.Contains(t, block.Lines[0], "\x1b[38;5;9m")
	assert.Contains(t, block.Lines[0], "\x1b[48;5;9m")
	assert.True(t, strings.HasSuffix(block.Lines[0], "\x1b[0m"))
}

func TestRenderBlocksMono(t *testing.T) {
	tests := []struct {
		name     string
		color    RGB
		expected string
	}{
		{
			name:     "Black maps to space",
			color:    RGB{0, 0, 0},
			expected: " ",
		},
		{
			name:     "White maps to full block",
			color:    RGB{255, 255, 255},
			expected: "█",
		},
		{
			name:     "Mid gray maps to medium shade",
			color:    RGB{128, 128, 128},
			expected: "▒",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := RenderBlocks(uniformGrid(4, 2, tt.color), Mono)
			require.Equal(t, 1, block.LineCount())
			assert.Equal(t, strings.Repeat(tt.expected, 4), block.Lines[0])
			assert.NotContains(t, block.Lines[0], "\x1b", "mono output must carry no escapes")
		})
	}
}

func TestRenderBlocksOddHeightPanics(t *testing.T) {
	g := uniformGrid(2, 3, RGB{})
	assert.Panics(t, func() {
		RenderBlocks(g, TrueColor)
	})
}

func TestRenderBlocksUniformLineWidth(t *testing.T) {
	g := uniformGrid(5, 6, RGB{1, 2, 3})
	block := RenderBlocks(g, TrueColor)

	require.Equal(t, 3, block.LineCount())
	for _, line := range block.Lines {
		assert.Equal(t, 5, strings.Count(line, "▀"))
	}
}
