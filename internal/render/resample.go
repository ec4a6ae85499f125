package render

// Resample scales a grid to tw x th pixels using area averaging: each output
// pixel is the mean of every source pixel whose coordinates map into its
// region. Averaging in wide integers avoids channel overflow, and the final
// division rounds half up. Resampling to the source size returns the grid
// itself, since grids are never mutated.
func Resample(g *PixelGrid, tw, th int) *PixelGrid {
	if tw == g.W && th == g.H {
		return g
	}
	if tw < 1 {
		tw = 1
	}
	if th < 1 {
		th = 1
	}

	out := &PixelGrid{W: tw, H: th, Pix: make([]RGB, tw*th)}
	for y := 0; y < th; y++ {
		y0, y1 := sourceSpan(y, th, g.H)
		for x := 0; x < tw; x++ {
			x0, x1 := sourceSpan(x, tw, g.W)

			var rs, gs, bs, n uint64
			for sy := y0; sy < y1; sy++ {
				row := sy * g.W
				for sx := x0; sx < x1; sx++ {
					p := g.Pix[row+sx]
					rs += uint64(p.R)
					gs += uint64(p.G)
					bs += uint64(p.B)
					n++
				}
			}
			out.Pix[y*tw+x] = RGB{
				R: roundDiv(rs, n),
				G: roundDiv(gs, n),
				B: roundDiv(bs, n),
			}
		}
	}
	return out
}

// sourceSpan maps output coordinate i of target points onto a half-open
// source pixel range. The range always covers at least one pixel, so
// upscaling degenerates to point sampling.
func sourceSpan(i, target, source int) (lo, hi int) {
	lo = i * source / target
	hi = (i + 1) * source / target
	if hi <= lo {
		hi = lo + 1
	}
	if hi > source {
		hi = source
	}
	return lo, hi
}

func roundDiv(sum, n uint64) uint8 {
	return uint8((sum + n/2) / n)
}
