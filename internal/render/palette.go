package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ansiPalette holds the fixed xterm 256-color palette: 16 system colors,
// a 6x6x6 color cube, and a 24-step grayscale ramp. Built once so that
// quantization is a lookup over a precomputed table.
var (
	ansiPalette  [256]RGB
	paletteColor [256]colorful.Color
)

func init() {
	system := [16]RGB{
		{0x00, 0x00, 0x00}, {0x80, 0x00, 0x00}, {0x00, 0x80, 0x00}, {0x80, 0x80, 0x00},
		{0x00, 0x00, 0x80}, {0x80, 0x00, 0x80}, {0x00, 0x80, 0x80}, {0xc0, 0xc0, 0xc0},
		{0x80, 0x80, 0x80}, {0xff, 0x00, 0x00}, {0x00, 0xff, 0x00}, {0xff, 0xff, 0x00},
		{0x00, 0x00, 0xff}, {0xff, 0x00, 0xff}, {0x00, 0xff, 0xff}, {0xff, 0xff, 0xff},
	}
	copy(ansiPalette[:16], system[:])

	// 16..231: color cube with channel levels 0, 95, 135, 175, 215, 255.
	levels := [6]uint8{0, 95, 135, 175, 215, 255}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				ansiPalette[idx] = RGB{levels[r], levels[g], levels[b]}
				idx++
			}
		}
	}

	// 232..255: grayscale ramp from 8 to 238 in steps of 10.
	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		ansiPalette[idx] = RGB{v, v, v}
		idx++
	}

	for i, p := range ansiPalette {
		paletteColor[i] = toColorful(p)
	}
}

// PaletteEntry returns the RGB value of a 256-color palette index.
func PaletteEntry(i uint8) RGB {
	return ansiPalette[i]
}

// QuantizeANSI256 returns the palette index whose color is nearest to c in
// RGB Euclidean distance. Ties go to the lowest index.
func QuantizeANSI256(c RGB) uint8 {
	cc := toColorful(c)
	best := 0
	bestDist := math.Inf(1)
	for i := range paletteColor {
		d := cc.DistanceRgb(paletteColor[i])
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
