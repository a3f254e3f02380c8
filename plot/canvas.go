package plot

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/canvas/graph"
)

// blankBraille is the braille pattern with no dots raised.
const blankBraille = '⠀'

// Canvas is a grid of dots drawn with braille characters. Each terminal
// cell holds 2 dots across and 4 down, so a dot is roughly square.
type Canvas struct {
	cols, rows int
	grid       *graph.BrailleGrid
}

// NewCanvas returns an empty canvas of cols x rows terminal cells.
func NewCanvas(cols, rows int) *Canvas {
	return &Canvas{
		cols: cols,
		rows: rows,
		grid: graph.NewBrailleGrid(cols, rows, 0, float64(2*cols-1), 0, float64(4*rows-1)),
	}
}

// Size returns the canvas size in dots.
func (c *Canvas) Size() (w, h int) { return 2 * c.cols, 4 * c.rows }

// Set turns on the dot at (x, y), with y growing downwards. Dots outside the
// canvas are ignored.
func (c *Canvas) Set(x, y int) {
	w, h := c.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	c.grid.Set(canvas.Point{X: x, Y: y})
}

// Line draws a straight segment between two dots.
func (c *Canvas) Line(x0, y0, x1, y1 int) {
	for _, p := range graph.GetLinePoints(canvas.Point{X: x0, Y: y0}, canvas.Point{X: x1, Y: y1}) {
		c.Set(p.X, p.Y)
	}
}

// Lines returns one string per terminal row. Empty cells are spaces.
func (c *Canvas) Lines() []string {
	patterns := c.grid.BraillePatterns()
	lines := make([]string, c.rows)
	var b strings.Builder
	for row := range c.rows {
		b.Reset()
		for col := range c.cols {
			r := rune(0)
			if row < len(patterns) && col < len(patterns[row]) {
				r = patterns[row][col]
			}
			if r == 0 || r == blankBraille {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(r)
		}
		lines[row] = b.String()
	}
	return lines
}
