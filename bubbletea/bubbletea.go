// Package bubbletea provides a Bubble Tea form for generating cycloidal disk
// equations interactively.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/cycloid"
)

// Config holds presentation settings for the form.
type Config struct {
	// Defaults pre-fills the fields before the first submission.
	Defaults cycloid.Candidate
	// SampleOptions are passed to every Generate call for the preview.
	SampleOptions []cycloid.SampleOption
}

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits and returns the final model so callers can print the last result.
// When ctx is cancelled, the program quits.
func Run(ctx context.Context, m Model) (Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	return m, err
}
