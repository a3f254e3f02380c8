package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/cycloid"
	bt "github.com/fwojciec/cycloid/bubbletea"
	"github.com/stretchr/testify/require"
)

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, config bt.Config) bt.Model {
	t.Helper()
	return initModelWithSize(t, config, 100, 60)
}

// initModelWithSize creates a model with a custom terminal size.
func initModelWithSize(t *testing.T, config bt.Config, width, height int) bt.Model {
	t.Helper()
	m := bt.New(cycloid.DefaultTheme(), config)
	return updateModel(t, m, tea.WindowSizeMsg{Width: width, Height: height})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

// setField replaces the value of a form field.
func setField(t *testing.T, m bt.Model, field int, value string) bt.Model {
	t.Helper()
	m.Inputs[field].SetValue(value)
	return m
}
