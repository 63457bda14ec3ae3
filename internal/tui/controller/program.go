package controller

import (
	"colorpick/internal/tui/model"
	"colorpick/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program for the popup. opts are appended
// after the alt screen option.
func NewProgram(cfg model.TUIConfig, logChannel <-chan logging.LogEntry, opts ...tea.ProgramOption) (*tea.Program, error) {
	m, err := model.InitializeModel(cfg, logChannel)
	if err != nil {
		return nil, err
	}

	app := NewAppModel(m)
	p := tea.NewProgram(app, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	return p, nil
}
