/*
Package render converts raster images into terminal art.

The pipeline decodes the image bytes into a pixel grid, resamples it with
area averaging to the exact resolution the output needs, and encodes the
result as half-block glyphs carrying independent foreground and background
colors. Each character cell covers two vertically stacked pixels, which
doubles the effective vertical resolution and compensates for terminal
cells being roughly twice as tall as they are wide.

Rendering degrades across terminal capability tiers. When the chafa CLI is
installed it is delegated to for high-fidelity output; otherwise the native
half-block path runs with truecolor escapes, the fixed 256-color palette,
or plain luminance glyphs, depending on what the terminal supports.

Basic usage:

	block, err := render.Render(ctx, imageBytes, render.Options{
	    Width: 20,
	    Mode:  render.CurrentColorMode(),
	})
	if err != nil {
	    block = render.Placeholder(20)
	}
	for _, line := range block.Lines {
	    fmt.Println(line)
	}

Every call is self-contained: nothing is cached or shared between renders.
*/
package render
