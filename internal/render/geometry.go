package render

import (
	"fmt"
	"math"
)

const (
	// MinCellWidth and MaxCellWidth bound the rendered image width in
	// character cells. Requests outside the range are clamped, not rejected.
	MinCellWidth = 15
	MaxCellWidth = 35

	// DefaultCellAspect is the assumed height/width ratio of a terminal
	// character cell. Most monospace fonts are close to 1:2.
	DefaultCellAspect = 2.0
)

// GeometryError reports a degenerate source aspect ratio.
type GeometryError struct {
	Aspect float64
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("invalid aspect ratio %g", e.Aspect)
}

// ClampCellWidth forces a requested width into [MinCellWidth, MaxCellWidth].
func ClampCellWidth(w int) int {
	if w < MinCellWidth {
		return MinCellWidth
	}
	if w > MaxCellWidth {
		return MaxCellWidth
	}
	return w
}

// ResolveDimensions computes the output size in character cells for a
// requested width and a source image aspect ratio (height/width). The cell
// height is halved relative to the aspect ratio because a character cell is
// cellAspect times taller than it is wide; pass 0 for the default.
func ResolveDimensions(cellWidth int, aspect, cellAspect float64) (w, h int, err error) {
	if aspect <= 0 || math.IsNaN(aspect) || math.IsInf(aspect, 0) {
		return 0, 0, &GeometryError{Aspect: aspect}
	}
	if cellAspect <= 0 {
		cellAspect = DefaultCellAspect
	}

	w = ClampCellWidth(cellWidth)
	h = int(math.Round(float64(w) * aspect / cellAspect))
	if h < 1 {
		h = 1
	}
	return w, h, nil
}
