package render

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	// Raster formats the decoder accepts.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// RGB is a single pixel sample with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// PixelGrid is a row-major, top-to-bottom grid of RGB samples. Grids are
// treated as immutable once built; resampling allocates a new grid.
type PixelGrid struct {
	W, H int
	Pix  []RGB
}

// At returns the sample at (x, y). Coordinates must be in bounds.
func (g *PixelGrid) At(x, y int) RGB {
	return g.Pix[y*g.W+x]
}

// AspectRatio returns height/width of the grid.
func (g *PixelGrid) AspectRatio() float64 {
	return float64(g.H) / float64(g.W)
}

// DecodeErrorKind classifies why image bytes could not be decoded.
type DecodeErrorKind int

const (
	// EmptyInput means no bytes were supplied at all.
	EmptyInput DecodeErrorKind = iota
	// UnsupportedFormat means the bytes are not a recognized raster format.
	UnsupportedFormat
	// CorruptData means the format was recognized but the stream is broken.
	CorruptData
)

func (k DecodeErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "empty input"
	case UnsupportedFormat:
		return "unsupported format"
	case CorruptData:
		return "corrupt data"
	default:
		return "unknown"
	}
}

// DecodeError reports a failure to turn image bytes into a pixel grid.
type DecodeError struct {
	Kind DecodeErrorKind
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode image: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("decode image: %s", e.Kind)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Decode materializes a pixel grid from encoded image bytes. The bytes must
// be a complete image in one of the registered formats (JPEG, PNG, GIF, WebP).
func Decode(data []byte) (*PixelGrid, error) {
	if len(data) == 0 {
		return nil, &DecodeError{Kind: EmptyInput}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		kind := CorruptData
		if errors.Is(err, image.ErrFormat) {
			kind = UnsupportedFormat
		}
		return nil, &DecodeError{Kind: kind, Err: err}
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w < 1 || h < 1 {
		return nil, &DecodeError{Kind: CorruptData, Err: fmt.Errorf("degenerate dimensions %dx%d", w, h)}
	}

	grid := &PixelGrid{W: w, H: h, Pix: make([]RGB, w*h)}
	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			grid.Pix[i] = RGB{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
			i++
		}
	}
	return grid, nil
}
