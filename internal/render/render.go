package render

import (
	"context"
	"errors"
)

// Options configures a single render call.
type Options struct {
	// Width is the target width in character cells, clamped to
	// [MinCellWidth, MaxCellWidth].
	Width int
	// Mode selects the color tier for the native renderer.
	Mode ColorMode
	// CellAspect is the terminal cell height/width ratio;
	// DefaultCellAspect when zero.
	CellAspect float64
	// DisableExternal skips the external renderer probe.
	DisableExternal bool
}

func (o Options) cellAspect() float64 {
	if o.CellAspect <= 0 {
		return DefaultCellAspect
	}
	return o.CellAspect
}

// Renderer turns encoded image bytes into a terminal block. Implementations
// own no shared state; concurrent calls with distinct inputs are safe.
type Renderer interface {
	Render(ctx context.Context, data []byte, opts Options) (*Block, error)
}

// NativeRenderer is the built-in decode/resample/half-block path.
type NativeRenderer struct{}

// Render runs the full native pipeline. The grid is resampled to two pixel
// rows per output line so every cell gets an upper/lower pixel pair.
func (NativeRenderer) Render(_ context.Context, data []byte, opts Options) (*Block, error) {
	grid, err := Decode(data)
	if err != nil {
		return nil, err
	}

	cellW, cellH, err := ResolveDimensions(opts.Width, grid.AspectRatio(), opts.cellAspect())
	if err != nil {
		return nil, err
	}

	return RenderBlocks(Resample(grid, cellW, cellH*2), opts.Mode), nil
}

// Render produces a terminal block from image bytes, preferring the external
// renderer and falling back to the native path when it is unavailable. Decode
// and geometry failures from the native path propagate to the caller.
func Render(ctx context.Context, data []byte, opts Options) (*Block, error) {
	if !opts.DisableExternal {
		external := &ChafaRenderer{}
		block, err := external.Render(ctx, data, opts)
		if err == nil {
			return block, nil
		}
		if !errors.Is(err, ErrExternalUnavailable) {
			return nil, err
		}
	}
	return NativeRenderer{}.Render(ctx, data, opts)
}
