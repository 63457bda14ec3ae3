package controller

import (
	"colorpick/internal/tui/design"
	"colorpick/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKeyMsgGlobal processes key presses in the main popup view.
func handleKeyMsgGlobal(m *model.Model, msg tea.KeyMsg) (*model.Model, tea.Cmd) {
	k := m.Keys

	switch {
	case key.Matches(msg, k.Quit):
		m.CancelSample()
		m.QuitApp = true
		m.CurrentAppMode = model.ModeQuitting
		return m, tea.Quit

	case key.Matches(msg, k.Esc):
		if m.CancelSample() {
			LogInfo(tuiSubsystem, "Sample cancelled by user")
			return m, m.SetStatusMessage("Sample cancelled", model.StatusBarInfo, toastShort)
		}
		return m, nil

	case key.Matches(msg, k.Help):
		openOverlay(m, model.ModeHelpOverlay)
		return m, nil

	case key.Matches(msg, k.ToggleLog):
		openOverlay(m, model.ModeLogOverlay)
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(msg, k.Export):
		if err := m.RefreshExport(); err != nil {
			LogError(tuiSubsystem, err, "Failed to render export")
			return m, m.SetStatusMessage(err.Error(), model.StatusBarError, toastLong)
		}
		openOverlay(m, model.ModeExportOverlay)
		return m, nil

	case key.Matches(msg, k.Pick):
		openInput(m, model.ModePickInput, "Pick: ", "#RRGGBB or image.png@x,y[,r]")
		return m, textinput.Blink

	case key.Matches(msg, k.NewPalette):
		openInput(m, model.ModePaletteNameInput, "Palette name: ", "Brand")
		return m, textinput.Blink

	case key.Matches(msg, k.NextFormat):
		return m, cycleFormat(m, 1)
	case key.Matches(msg, k.PrevFormat):
		return m, cycleFormat(m, -1)

	case key.Matches(msg, k.Copy):
		return m, copyCurrent(m)

	case key.Matches(msg, k.Tab):
		m.CycleFocus(1)
	case key.Matches(msg, k.ShiftTab):
		m.CycleFocus(-1)
	case key.Matches(msg, k.Left):
		m.MoveCursor(-1)
	case key.Matches(msg, k.Right):
		m.MoveCursor(1)

	case key.Matches(msg, k.Enter):
		return m, activateFocused(m)

	case key.Matches(msg, k.Harmony):
		m.HarmonyKind = m.HarmonyKind.Next()
		m.ClampCursors()
		return m, m.SetStatusMessage("Harmony: "+string(m.HarmonyKind), model.StatusBarInfo, toastShort)

	case key.Matches(msg, k.Lighter):
		return m, adjustCurrent(m, model.AdjustStep, 0)
	case key.Matches(msg, k.Darker):
		return m, adjustCurrent(m, -model.AdjustStep, 0)
	case key.Matches(msg, k.MoreSaturated):
		return m, adjustCurrent(m, 0, model.AdjustStep)
	case key.Matches(msg, k.LessSaturated):
		return m, adjustCurrent(m, 0, -model.AdjustStep)

	case key.Matches(msg, k.AddToPalette):
		return m, addCurrentToActive(m)
	case key.Matches(msg, k.Delete):
		return m, deleteFocused(m)
	case key.Matches(msg, k.ClearHistory):
		return m, clearHistory(m)

	case key.Matches(msg, k.ToggleDark):
		dark := !design.IsDarkMode()
		design.Initialize(dark)
		mode := "light"
		if dark {
			mode = "dark"
		}
		return m, m.SetStatusMessage("Theme: "+mode, model.StatusBarInfo, toastShort)
	}

	return m, nil
}

func openOverlay(m *model.Model, mode model.AppMode) {
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = mode
}

// closeOverlay returns to the view the overlay was opened from.
func closeOverlay(m *model.Model) {
	m.CurrentAppMode = m.LastAppMode
	m.LastAppMode = model.ModeMain
}

func openInput(m *model.Model, mode model.AppMode, prompt, placeholder string) {
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = mode
	m.Input.Reset()
	m.Input.Prompt = prompt
	m.Input.Placeholder = placeholder
	m.Input.Focus()
}

func closeInput(m *model.Model) {
	m.Input.Blur()
	m.Input.Reset()
	m.CurrentAppMode = model.ModeMain
}
