// Package plot renders a curve sample as a braille preview for terminals,
// keeping equal aspect ratio.
package plot

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cycloid"
	"github.com/mattn/go-runewidth"
)

// Render draws s into a cols x rows cell area followed by a caption line
// with the data extents. Consecutive points are joined so the outline stays
// continuous. An empty sample renders as an empty string.
func Render(s cycloid.Sample, cols, rows int, theme cycloid.Theme) string {
	if s.Len() == 0 || cols <= 0 || rows <= 0 {
		return ""
	}
	c := Draw(s, cols, rows)

	curve := lipgloss.NewStyle().Foreground(ansiColor(theme.Curve))
	muted := lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true)

	var b strings.Builder
	for _, line := range c.Lines() {
		b.WriteString(curve.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render(Caption(cycloid.Bounds(s), cols)))
	return b.String()
}

// Draw plots s onto a new canvas. The data bounds are squared before
// scaling so one unit spans the same number of dots on both axes.
func Draw(s cycloid.Sample, cols, rows int) *Canvas {
	c := NewCanvas(cols, rows)
	w, h := c.Size()
	side := min(w, h)
	offX, offY := (w-side)/2, (h-side)/2
	box := cycloid.Bounds(s).Square()

	project := func(pt cycloid.Point) (int, int, bool) {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
			return 0, 0, false
		}
		if box.Width() == 0 {
			return offX + (side-1)/2, offY + (side-1)/2, true
		}
		scale := float64(side-1) / box.Width()
		x := offX + int(math.Round((pt.X-box.X0)*scale))
		y := offY + int(math.Round((box.Y1-pt.Y)*scale))
		return x, y, true
	}

	var (
		px, py int
		prev   bool
	)
	for i := range s.Len() {
		x, y, ok := project(s.Point(i))
		switch {
		case !ok:
		case prev:
			c.Line(px, py, x, y)
		default:
			c.Set(x, y)
		}
		px, py, prev = x, y, ok
	}
	return c
}

// Caption describes the extents of r, truncated to width cells.
func Caption(r cycloid.Rect, width int) string {
	s := fmt.Sprintf("x [%s, %s]  y [%s, %s]", num(r.X0), num(r.X1), num(r.Y0), num(r.Y1))
	return runewidth.Truncate(s, width, "…")
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'g', 4, 64)
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
