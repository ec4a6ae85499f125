package render

import (
	"fmt"
	"strings"
)

const (
	upperHalfBlock = "▀" // ▀
	resetSeq       = "\x1b[0m"
)

// monoRamp orders glyphs from dark to light for colorless output.
var monoRamp = []rune(" ░▒▓█") // ░ ▒ ▓ █

// Block is a rendered image: printable lines plus the cell width they all
// share, so a caller can lay the block out beside text columns.
type Block struct {
	Lines []string
	Width int
}

// LineCount returns the number of printable lines in the block.
func (b *Block) LineCount() int {
	return len(b.Lines)
}

// RenderBlocks encodes a pixel grid as half-block terminal lines. Each output
// cell covers a vertical pixel pair: the upper pixel becomes the glyph
// foreground, the lower the background. Lines that carry color codes end with
// a reset so no attribute bleeds past the block.
//
// The grid height must be even; the resample stage guarantees that, and an
// odd height here is a bug in the caller.
func RenderBlocks(g *PixelGrid, mode ColorMode) *Block {
	if g.H%2 != 0 {
		panic(fmt.Sprintf("render: pixel grid height %d is not even", g.H))
	}

	lines := make([]string, 0, g.H/2)
	var b strings.Builder
	for y := 0; y < g.H; y += 2 {
		b.Reset()
		for x := 0; x < g.W; x++ {
			top, bottom := g.At(x, y), g.At(x, y+1)
			switch mode {
			case TrueColor:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s",
					top.R, top.G, top.B, bottom.R, bottom.G, bottom.B, upperHalfBlock)
			case ANSI256:
				fmt.Fprintf(&b, "\x1b[38;5;%dm\x1b[48;5;%dm%s",
					QuantizeANSI256(top), QuantizeANSI256(bottom), upperHalfBlock)
			default:
				b.WriteRune(monoGlyph(top, bottom))
			}
		}
		if mode != Mono {
			b.WriteString(resetSeq)
		}
		lines = append(lines, b.String())
	}
	return &Block{Lines: lines, Width: g.W}
}

// monoGlyph picks a shade glyph from the average luminance of a pixel pair.
func monoGlyph(top, bottom RGB) rune {
	l := (luminance(top) + luminance(bottom)) / 2
	idx := int(l*float64(len(monoRamp)-1)/255 + 0.5)
	if idx >= len(monoRamp) {
		idx = len(monoRamp) - 1
	}
	return monoRamp[idx]
}

// luminance is the perceived brightness of a color in [0, 255].
func luminance(c RGB) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}
