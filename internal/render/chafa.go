package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// ErrExternalUnavailable reports that the external renderer cannot produce
// output: the binary is missing, it failed, or it timed out. Callers fall
// back to the native path; this is never surfaced to the user.
var ErrExternalUnavailable = errors.New("render: external renderer unavailable")

const (
	chafaBinary     = "chafa"
	externalTimeout = 10 * time.Second
)

// ChafaRenderer delegates rendering to the chafa CLI, which performs its own
// decoding, resampling, and protocol selection. Its stdout is captured
// verbatim, then padded or truncated to the height of the requested box so
// the block's line count stays deterministic.
type ChafaRenderer struct {
	// Binary overrides the executable name, mainly for tests.
	Binary string
	// Timeout bounds one subprocess invocation; zero means the default.
	Timeout time.Duration
}

// Render probes for chafa and invokes it on the image bytes. Any failure maps
// to ErrExternalUnavailable.
func (r *ChafaRenderer) Render(ctx context.Context, data []byte, opts Options) (*Block, error) {
	bin := r.Binary
	if bin == "" {
		bin = chafaBinary
	}
	path, err := exec.LookPath(bin)
	if err != nil {
		return nil, ErrExternalUnavailable
	}

	// chafa wants a file, so stage the bytes in a temp one.
	tmp, err := os.CreateTemp("", "mufetch-art-*")
	if err != nil {
		return nil, ErrExternalUnavailable
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, ErrExternalUnavailable
	}
	if err := tmp.Close(); err != nil {
		return nil, ErrExternalUnavailable
	}

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = externalTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Size the box as a square image would render, and hold chafa's output
	// to that many rows regardless of the image's actual shape.
	width, height, err := ResolveDimensions(opts.Width, 1, opts.cellAspect())
	if err != nil {
		return nil, ErrExternalUnavailable
	}
	var stdout bytes.Buffer
	cmd := exec.CommandContext(cctx, path,
		"--size", fmt.Sprintf("%dx%d", width, height),
		"--dither", "ordered",
		tmp.Name())
	cmd.Stdout = &stdout
	// Don't let an orphaned child holding the stdout pipe outlive the kill.
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		return nil, ErrExternalUnavailable
	}
	out := strings.TrimRight(stdout.String(), "\n")
	if out == "" {
		return nil, ErrExternalUnavailable
	}
	lines := strings.Split(out, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return &Block{Lines: lines, Width: width}, nil
}
