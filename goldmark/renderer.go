package goldmark

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cycloid"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type renderer struct {
	heading lipgloss.Style
	code    lipgloss.Style
	gutter  lipgloss.Style
	bold    lipgloss.Style
	italic  lipgloss.Style
}

func newRenderer(theme cycloid.Theme) *renderer {
	return &renderer{
		heading: lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		code:    lipgloss.NewStyle().Foreground(ansiColor(theme.Label)).Bold(true),
		gutter:  lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		bold:    lipgloss.NewStyle().Bold(true),
		italic:  lipgloss.NewStyle().Italic(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *renderer) render(source []byte, width int) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var blocks []string
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if s := r.block(c, source, width); s != "" {
			blocks = append(blocks, s)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (r *renderer) block(node ast.Node, source []byte, width int) string {
	switch n := node.(type) {
	case *ast.Heading:
		return wrap(r.heading.Render(r.inline(n, source)), width)

	case *ast.Paragraph, *ast.TextBlock:
		return wrap(r.inline(n, source), width)

	case *ast.List:
		return r.list(n, source, width)

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		var lines []string
		segs := n.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			line := strings.TrimRight(string(seg.Value(source)), "\n")
			lines = append(lines, r.gutter.Render("│")+" "+line)
		}
		return strings.Join(lines, "\n")

	default:
		var parts []string
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			if s := r.block(c, source, width); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "\n")
	}
}

// list renders items with a marker and continuation lines indented to
// align with the item text.
func (r *renderer) list(node *ast.List, source []byte, width int) string {
	var lines []string
	num := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		marker := "- "
		if node.IsOrdered() {
			marker = strconv.Itoa(num) + ". "
			num++
		}
		var body []string
		for ic := c.FirstChild(); ic != nil; ic = ic.NextSibling() {
			body = append(body, r.block(ic, source, max(width-len(marker), 10)))
		}
		pad := strings.Repeat(" ", len(marker))
		for i, line := range strings.Split(strings.Join(body, "\n"), "\n") {
			if i == 0 {
				lines = append(lines, marker+line)
			} else {
				lines = append(lines, pad+line)
			}
		}
	}
	return strings.Join(lines, "\n")
}

func (r *renderer) inline(node ast.Node, source []byte) string {
	var b strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			b.Write(n.Segment.Value(source))
			if n.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(n.Value)
		case *ast.CodeSpan:
			b.WriteString(r.code.Render(r.inline(n, source)))
		case *ast.Emphasis:
			if n.Level == 1 {
				b.WriteString(r.italic.Render(r.inline(n, source)))
			} else {
				b.WriteString(r.bold.Render(r.inline(n, source)))
			}
		default:
			b.WriteString(r.inline(n, source))
		}
	}
	return b.String()
}

func wrap(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}
