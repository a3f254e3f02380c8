package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cycloid"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Label   lipgloss.Style
	Focused lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Heading lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t cycloid.Theme) Styles {
	return Styles{
		Label:   lipgloss.NewStyle().Foreground(ansiColor(t.Label)),
		Focused: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(ansiColor(t.Warning)),
		Error:   lipgloss.NewStyle().Foreground(ansiColor(t.Error)).Bold(true),
		Success: lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:   lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Heading: lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
