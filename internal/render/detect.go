package render

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// ColorMode selects how much color the block renderer may emit.
type ColorMode int

const (
	// TrueColor emits 24-bit RGB escape sequences.
	TrueColor ColorMode = iota
	// ANSI256 quantizes colors to the fixed 256-entry terminal palette.
	ANSI256
	// Mono emits plain shade glyphs with no color codes at all.
	Mono
)

func (m ColorMode) String() string {
	switch m {
	case TrueColor:
		return "truecolor"
	case ANSI256:
		return "ansi256"
	case Mono:
		return "mono"
	default:
		return "unknown"
	}
}

// DetectColorMode picks the richest color mode the environment supports. It
// is a pure function of the environment snapshot: getenv supplies variable
// values and interactive says whether output goes to a terminal. Ambiguous
// signals default to ANSI256; Mono is chosen only for non-interactive output
// or explicitly disabled color.
func DetectColorMode(getenv func(string) string, interactive bool) ColorMode {
	if !interactive {
		return Mono
	}
	if getenv("NO_COLOR") != "" {
		return Mono
	}

	term := strings.ToLower(getenv("TERM"))
	if term == "dumb" {
		return Mono
	}

	colorterm := strings.ToLower(getenv("COLORTERM"))
	if colorterm == "truecolor" || colorterm == "24bit" {
		return TrueColor
	}

	switch getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "ghostty", "vscode", "rio":
		return TrueColor
	}

	switch {
	case getenv("KITTY_WINDOW_ID") != "":
		return TrueColor
	case strings.Contains(term, "kitty"), strings.Contains(term, "ghostty"):
		return TrueColor
	case strings.Contains(term, "256color"):
		return ANSI256
	}

	return ANSI256
}

// CurrentColorMode snapshots the process environment and stdout and runs
// detection on them.
func CurrentColorMode() ColorMode {
	fd := os.Stdout.Fd()
	interactive := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return DetectColorMode(os.Getenv, interactive)
}
