package render

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeRenderSolidRed(t *testing.T) {
	// 640x640 solid red at width 20 must give round(20/2) = 10 lines of 20
	// cells, all carrying red truecolor codes and a trailing reset.
	data := encodePNG(t, solidImage(640, 640, color.RGBA{255, 0, 0, 255}))

	block, err := NativeRenderer{}.Render(context.Background(), data, Options{
		Width: 20,
		Mode:  TrueColor,
	})
	require.NoError(t, err)
	require.Equal(t, 10, block.LineCount())
	assert.Equal(t, 20, block.Width)

	for _, line := range block.Lines {
		assert.Equal(t, 20, strings.Count(line, "▀"))
		assert.Contains(t, line, "\x1b[38;2;255;0;0m")
		assert.Contains(t, line, "\x1b[48;2;255;0;0m")
		assert.True(t, strings.HasSuffix(line, "\x1b[0m"))
	}
}

func TestNativeRenderSolidRedJPEG(t *testing.T) {
	// Same scenario through the lossy decoder: geometry must hold exactly
	// even if channel values wobble.
	data := encodeJPEG(t, solidImage(640, 640, color.RGBA{255, 0, 0, 255}))

	block, err := NativeRenderer{}.Render(context.Background(), data, Options{
		Width: 20,
		Mode:  TrueColor,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, block.LineCount())
	for _, line := range block.Lines {
		assert.Equal(t, 20, strings.Count(line, "▀"))
	}
}

func TestNativeRenderLineCountMatchesGeometry(t *testing.T) {
	tests := []struct {
		name       string
		imgW, imgH int
		width      int
	}{
		{name: "Square", imgW: 100, imgH: 100, width: 20},
		{name: "Wide", imgW: 200, imgH: 100, width: 30},
		{name: "Tall", imgW: 100, imgH: 300, width: 15},
		{name: "Clamped width", imgW: 50, imgH: 50, width: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := encodePNG(t, solidImage(tt.imgW, tt.imgH, color.RGBA{0, 128, 255, 255}))

			block, err := NativeRenderer{}.Render(context.Background(), data, Options{Width: tt.width})
			require.NoError(t, err)

			wantW, wantH, err := ResolveDimensions(tt.width, float64(tt.imgH)/float64(tt.imgW), 0)
			require.NoError(t, err)
			assert.Equal(t, wantH, block.LineCount())
			assert.Equal(t, wantW, block.Width)
		})
	}
}

func TestNativeRenderDecodeFailure(t *testing.T) {
	block, err := NativeRenderer{}.Render(context.Background(), []byte("not an image"), Options{Width: 20})
	assert.Nil(t, block)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestRenderFallsBackToNative(t *testing.T) {
	// A failing external renderer must deterministically fall through to the
	// native path, which renders the same bytes.
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs are not portable to windows")
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "chafa"), []byte("#!/bin/sh\nexit 1\n"), 0o755))
	t.Setenv("PATH", dir)

	data := encodePNG(t, solidImage(64, 64, color.RGBA{0, 255, 0, 255}))
	block, err := Render(context.Background(), data, Options{
		Width: 20,
		Mode:  TrueColor,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, block.LineCount())
	assert.Contains(t, block.Lines[0], "\x1b[38;2;")
}

func TestRenderPropagatesDecodeErrors(t *testing.T) {
	block, err := Render(context.Background(), nil, Options{Width: 20, DisableExternal: true})
	assert.Nil(t, block)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, EmptyInput, decErr.Kind)
}

func TestPlaceholder(t *testing.T) {
	block := Placeholder(20)

	// Same line-count law as a square image at the same width.
	_, wantH, err := ResolveDimensions(20, 1, 0)
	require.NoError(t, err)
	require.Equal(t, wantH, block.LineCount())
	assert.Equal(t, 20, block.Width)

	joined := strings.Join(block.Lines, "\n")
	assert.Contains(t, joined, "NO IMAGE")
	assert.Contains(t, joined, "AVAILABLE")

	for _, line := range block.Lines {
		assert.Equal(t, 20, len([]rune(line)), "placeholder lines must share one width")
	}
}

func TestPlaceholderClampsWidth(t *testing.T) {
	block := Placeholder(-3)
	assert.Equal(t, MinCellWidth, block.Width)
}

func TestBoxLineCountsRunes(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		inner int
		want  string
	}{
		{
			name:  "ascii centered",
			text:  "ART",
			inner: 7,
			want:  "│  ART  │",
		},
		{
			name:  "multi-byte centered",
			text:  "ÅLBUM",
			inner: 9,
			want:  "│  ÅLBUM  │",
		},
		{
			name:  "multi-byte truncated on a rune boundary",
			text:  "NÖ ÄRT HÉRE",
			inner: 6,
			want:  "│NÖ ÄRT│",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := boxLine(tc.text, tc.inner)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.inner+2, len([]rune(got)))
		})
	}
}
