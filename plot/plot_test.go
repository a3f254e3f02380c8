package plot_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/cycloid"
	"github.com/fwojciec/cycloid/plot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas(t *testing.T) {
	t.Parallel()

	t.Run("size in dots", func(t *testing.T) {
		t.Parallel()
		w, h := plot.NewCanvas(3, 2).Size()
		assert.Equal(t, 6, w)
		assert.Equal(t, 8, h)
	})

	t.Run("single dots map to braille bits", func(t *testing.T) {
		t.Parallel()
		c := plot.NewCanvas(2, 1)
		c.Set(0, 0)
		c.Set(3, 3)
		assert.Equal(t, []string{"⠁⢀"}, c.Lines())
	})

	t.Run("out of range dots are ignored", func(t *testing.T) {
		t.Parallel()
		c := plot.NewCanvas(1, 1)
		c.Set(-1, 0)
		c.Set(2, 0)
		c.Set(0, 4)
		assert.Equal(t, []string{" "}, c.Lines())
	})

	t.Run("line fills a full cell column", func(t *testing.T) {
		t.Parallel()
		c := plot.NewCanvas(1, 1)
		c.Line(0, 3, 0, 0)
		assert.Equal(t, []string{"⡇"}, c.Lines())
	})

	t.Run("diagonal line", func(t *testing.T) {
		t.Parallel()
		c := plot.NewCanvas(2, 1)
		c.Line(0, 0, 3, 3)
		assert.Equal(t, []string{"⠑⢄"}, c.Lines())
	})
}

func TestDraw(t *testing.T) {
	t.Parallel()

	t.Run("single point lands in the center", func(t *testing.T) {
		t.Parallel()
		s := cycloid.Sample{T: []float64{0}, X: []float64{3}, Y: []float64{4}}
		lines := plot.Draw(s, 1, 1).Lines()
		// 2x4 dots, square side 2, centered at (0, 1).
		assert.Equal(t, []string{"⠂"}, lines)
	})

	t.Run("equal aspect keeps a square square", func(t *testing.T) {
		t.Parallel()
		s := cycloid.Sample{
			T: []float64{0, 1, 2, 3, 4},
			X: []float64{0, 1, 1, 0, 0},
			Y: []float64{0, 0, 1, 1, 0},
		}
		lines := plot.Draw(s, 10, 2).Lines()
		require.Len(t, lines, 2)
		// 20x8 dots: the square is 8 dots wide, i.e. 4 cells, centered.
		for _, line := range lines {
			used := strings.TrimSpace(line)
			assert.Equal(t, 4, utf8.RuneCountInString(used), "row %q", line)
			assert.Equal(t, 3, strings.Index(line, string([]rune(used)[:1])), "row %q", line)
		}
	})

	t.Run("disk profile draws a closed outline", func(t *testing.T) {
		t.Parallel()
		s := cycloid.SampleCurve(cycloid.Params{Rp: 50, E: 2.5, R: 2, N: 10}, cycloid.WithSamples(800))
		lines := plot.Draw(s, 40, 20).Lines()
		require.Len(t, lines, 20)
		blank := strings.Repeat(" ", 40)
		firstCol, lastCol := false, false
		for _, line := range lines {
			runes := []rune(line)
			require.Len(t, runes, 40)
			firstCol = firstCol || runes[0] != ' '
			lastCol = lastCol || runes[39] != ' '
		}
		// The larger extent spans the whole square.
		spansRows := lines[0] != blank && lines[19] != blank
		spansCols := firstCol && lastCol
		assert.True(t, spansRows || spansCols, "outline does not reach the edges:\n%s", strings.Join(lines, "\n"))
	})
}

func TestRender(t *testing.T) {
	t.Parallel()

	theme := cycloid.DefaultTheme()

	t.Run("empty sample", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", plot.Render(cycloid.Sample{}, 40, 10, theme))
	})

	t.Run("rows plus caption", func(t *testing.T) {
		t.Parallel()
		s := cycloid.SampleCurve(cycloid.Params{Rp: 50, E: 2.5, R: 2, N: 10}, cycloid.WithSamples(200))
		out := plot.Render(s, 40, 10, theme)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 11)
		assert.Contains(t, lines[10], "x [")
	})
}

func TestCaption(t *testing.T) {
	t.Parallel()

	r := cycloid.Rect{X0: -47.25, Y0: -46, X1: 45.5, Y1: 46}
	assert.Equal(t, "x [-47.25, 45.5]  y [-46, 46]", plot.Caption(r, 80))

	short := plot.Caption(r, 10)
	assert.Equal(t, "x [-47.25…", short)
}
