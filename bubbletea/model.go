package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cycloid"
	"github.com/fwojciec/cycloid/goldmark"
	"github.com/fwojciec/cycloid/plot"
)

var _ tea.Model = Model{}

// Form fields, in display order.
const (
	FieldRp = iota
	FieldE
	FieldR
	FieldN
	fieldCount
)

var fieldLabels = [fieldCount]string{"R_p", "e", "r", "N"}

// maxPlotCols caps the preview width so it stays readable on wide terminals.
const maxPlotCols = 60

// Model is the Bubble Tea model for the equation form.
type Model struct {
	// Inputs are the form fields indexed by FieldRp..FieldN. Exported for test access.
	Inputs [fieldCount]textinput.Model
	// Viewport is the scrollable output area. Exported for test access.
	Viewport viewport.Model

	config   Config
	theme    cycloid.Theme
	styles   Styles
	focus    int
	showTips bool

	result *cycloid.Result
	err    error
	ready  bool
}

// New creates a form pre-filled with config.Defaults, or with
// cycloid.DefaultCandidate when no defaults are given.
func New(theme cycloid.Theme, config Config) Model {
	if config.Defaults == (cycloid.Candidate{}) {
		config.Defaults = cycloid.DefaultCandidate()
	}
	d := config.Defaults
	values := [fieldCount]float64{d.Rp, d.E, d.R, d.N}

	m := Model{
		config: config,
		theme:  theme,
		styles: NewStyles(theme),
	}
	for i := range m.Inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = fieldLabels[i]
		ti.CharLimit = 24
		ti.Width = 10
		ti.SetValue(cycloid.FormatNumber(values[i]))
		m.Inputs[i] = ti
	}
	m.Inputs[FieldRp].Focus()
	return m
}

// Result returns the outcome of the last submission, or nil before the
// first one or when the fields could not be parsed.
func (m Model) Result() *cycloid.Result { return m.result }

// Err returns the parse error of the last submission, if any.
func (m Model) Err() error { return m.err }

// Focused returns the index of the focused field.
func (m Model) Focused() int { return m.focus }

// TipsVisible reports whether the CAD tips panel is shown.
func (m Model) TipsVisible() bool { return m.showTips }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)
	m.Inputs[m.focus], cmd = m.Inputs[m.focus].Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.formLine())
	b.WriteString("\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	formHeight := 1
	statusHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - formHeight - statusHeight - borderHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent())
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyEnter:
		m = m.submit()
		return m, nil

	case tea.KeyTab, tea.KeyDown:
		return m.moveFocus(1), nil

	case tea.KeyShiftTab, tea.KeyUp:
		return m.moveFocus(-1), nil

	case tea.KeyCtrlT:
		m.showTips = !m.showTips
		m.Viewport.SetContent(m.renderContent())
		return m, nil

	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.Inputs[m.focus], cmd = m.Inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	m.Inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.Inputs[m.focus].Focus()
	return m
}

// submit parses the fields and runs the generator. Parse failures are kept
// in err; validation failures are part of the result.
func (m Model) submit() Model {
	c, err := cycloid.ParseCandidate(
		m.Inputs[FieldRp].Value(),
		m.Inputs[FieldE].Value(),
		m.Inputs[FieldR].Value(),
		m.Inputs[FieldN].Value(),
	)
	if err != nil {
		m.err = err
		m.result = nil
	} else {
		res := cycloid.Generate(c, m.config.SampleOptions...)
		m.err = nil
		m.result = &res
	}
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoTop()
	return m
}

func (m Model) renderContent() string {
	width := m.Viewport.Width
	if width <= 0 {
		width = 80
	}
	wrap := lipgloss.NewStyle().Width(width)

	var sections []string
	switch {
	case m.err != nil:
		sections = append(sections, m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	case m.result != nil:
		sections = append(sections, m.renderResult(*m.result, width, wrap)...)
	default:
		sections = append(sections, m.styles.Muted.Render("Press Enter to generate equations."))
	}
	if m.showTips {
		sections = append(sections, goldmark.Render(cycloid.Tips, width, m.theme))
	}
	return strings.Join(sections, "\n\n")
}

func (m Model) renderResult(res cycloid.Result, width int, wrap lipgloss.Style) []string {
	var sections []string
	for _, msg := range res.Validation.Messages {
		switch msg.Severity {
		case cycloid.SeverityError:
			sections = append(sections, wrap.Render(m.styles.Error.Render("Error: "+msg.Text)))
		default:
			sections = append(sections, wrap.Render(m.styles.Warning.Render("Warning: "+msg.Text)))
		}
	}
	if res.Equations == nil {
		return sections
	}

	sections = append(sections,
		m.styles.Success.Render("Equations generated. Paste into the CAD tool (Parametric mode)."),
		m.styles.Heading.Render("x(t)")+"\n"+wrap.Render(res.Equations.X),
		m.styles.Heading.Render("y(t)")+"\n"+wrap.Render(res.Equations.Y),
	)

	s := res.Sample
	if s == nil || s.Len() == 0 {
		return sections
	}
	if s.Singularity.Detected {
		sections = append(sections, wrap.Render(m.styles.Warning.Render(cycloid.SingularityAdvisory)))
	}
	cols := min(width, maxPlotCols)
	heading := fmt.Sprintf("Preview (t from %s to %s)", plotNum(s.T[0]), plotNum(s.T[s.Len()-1]))
	sections = append(sections, m.styles.Heading.Render(heading)+"\n"+plot.Render(*s, cols, max(cols/2, 1), m.theme))
	return sections
}

func plotNum(f float64) string {
	return fmt.Sprintf("%.4g", f)
}

func (m Model) formLine() string {
	fields := make([]string, fieldCount)
	for i, in := range m.Inputs {
		label := m.styles.Label.Render(fieldLabels[i] + ":")
		if i == m.focus {
			label = m.styles.Focused.Render(fieldLabels[i] + ":")
		}
		fields[i] = label + " " + in.View()
	}
	return strings.Join(fields, "  ")
}

func (m Model) statusLine() string {
	return m.styles.Muted.Render("Enter generate · Tab next field · Ctrl+T tips · Esc quit")
}
