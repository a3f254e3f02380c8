// Package goldmark renders the CAD tips markdown to ANSI-styled terminal
// output using goldmark for parsing and lipgloss for styling.
package goldmark

import "github.com/fwojciec/cycloid"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width; code blocks are not
// reflowed, so equations pasted into the tips stay on one line.
func Render(source string, width int, theme cycloid.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
