package render

import "strings"

// Placeholder builds a "NO IMAGE AVAILABLE" box sized like a square image
// rendered at the given cell width, so layouts stay stable when art is
// missing or undecodable.
func Placeholder(width int) *Block {
	w, h, _ := ResolveDimensions(width, 1, 0)

	inner := w - 2
	blank := "│" + strings.Repeat(" ", inner) + "│"

	lines := make([]string, 0, h)
	lines = append(lines, "┌"+strings.Repeat("─", inner)+"┐")
	for i := 1; i < h-1; i++ {
		switch i {
		case h / 2:
			lines = append(lines, boxLine("NO IMAGE", inner))
		case h/2 + 1:
			lines = append(lines, boxLine("AVAILABLE", inner))
		default:
			lines = append(lines, blank)
		}
	}
	lines = append(lines, "└"+strings.Repeat("─", inner)+"┘")

	return &Block{Lines: lines, Width: w}
}

// boxLine centers text between box borders at the given inner width. Widths
// count runes, not bytes, so multi-byte text stays aligned.
func boxLine(text string, inner int) string {
	runes := []rune(text)
	if len(runes) > inner {
		runes = runes[:inner]
	}
	left := (inner - len(runes)) / 2
	right := inner - len(runes) - left
	return "│" + strings.Repeat(" ", left) + string(runes) + strings.Repeat(" ", right) + "│"
}
