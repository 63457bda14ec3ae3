package controller

import (
	"strings"

	"colorpick/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgInputMode processes key presses while the pick or palette name
// input is open. Enter submits, Esc cancels, everything else goes to the
// textinput.
func handleKeyMsgInputMode(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	switch keyMsg.Type {
	case tea.KeyEsc:
		closeInput(m)
		return m, nil

	case tea.KeyEnter:
		value := strings.TrimSpace(m.Input.Value())
		mode := m.CurrentAppMode
		closeInput(m)
		if value == "" {
			return m, nil
		}
		if mode == model.ModePaletteNameInput {
			return m, createPalette(m, value)
		}
		return m, submitPick(m, value)
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(keyMsg)
	return m, cmd
}

func submitPick(m *model.Model, spec string) tea.Cmd {
	sampleCmd, err := m.StartSample(spec)
	if err != nil {
		LogError(tuiSubsystem, err, "Cannot sample %q", spec)
		return m.SetStatusMessage(err.Error(), model.StatusBarError, toastLong)
	}
	return tea.Batch(sampleCmd, m.Spinner.Tick)
}

// handleKeyMsgOverlay handles keys while the help, log, or export overlay is
// shown. Unbound keys scroll the overlay viewport.
func handleKeyMsgOverlay(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	k := m.Keys
	if key.Matches(keyMsg, k.Quit) || key.Matches(keyMsg, k.Esc) {
		closeOverlay(m)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, k.Help) {
			closeOverlay(m)
		}

	case model.ModeLogOverlay:
		if key.Matches(keyMsg, k.ToggleLog) {
			closeOverlay(m)
			return m, nil
		}
		m.LogViewport, cmd = m.LogViewport.Update(keyMsg)

	case model.ModeExportOverlay:
		switch {
		case key.Matches(keyMsg, k.Export):
			closeOverlay(m)
		case key.Matches(keyMsg, k.ExportCopy):
			return m, copyText(m, m.ExportContent, string(m.ExportFormat)+" export")
		case key.Matches(keyMsg, k.Tab), key.Matches(keyMsg, k.NextFormat):
			m.NextExportFormat()
			if err := m.RefreshExport(); err != nil {
				return m, m.SetStatusMessage(err.Error(), model.StatusBarError, toastLong)
			}
		default:
			m.ExportViewport, cmd = m.ExportViewport.Update(keyMsg)
		}
	}
	return m, cmd
}
