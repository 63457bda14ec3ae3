package controller

import (
	"errors"
	"fmt"

	"colorpick/internal/session"
	"colorpick/internal/tui/model"
	"colorpick/pkg/colormath"

	tea "github.com/charmbracelet/bubbletea"
)

// persist saves the session and turns a failure into an error toast. It
// returns nil when the save succeeded.
func persist(m *model.Model) tea.Cmd {
	if err := m.Persist(); err != nil {
		LogError(tuiSubsystem, err, "Failed to save state")
		return m.SetStatusMessage(fmt.Sprintf("Could not save: %v", err), model.StatusBarError, toastLong)
	}
	return nil
}

// copyText writes text to the clipboard and reports the outcome as a toast
// naming what was copied.
func copyText(m *model.Model, text, what string) tea.Cmd {
	if m.Copy == nil {
		return m.SetStatusMessage("Clipboard is not available", model.StatusBarWarning, toastShort)
	}
	if err := m.Copy(text); err != nil {
		LogError(tuiSubsystem, err, "Failed to copy %s", what)
		return m.SetStatusMessage(fmt.Sprintf("Copy failed: %v", err), model.StatusBarError, toastLong)
	}
	LogDebug(m, tuiSubsystem, "Copied %s to clipboard", what)
	return m.SetStatusMessage(fmt.Sprintf("Copied %s", what), model.StatusBarSuccess, toastShort)
}

// applyColor makes hex the current color, saves, and copies it when
// autoCopy is set. verb prefixes the success toast.
func applyColor(m *model.Model, hex string, autoCopy bool, verb string) tea.Cmd {
	if !m.State.Pick(hex) {
		return m.SetStatusMessage(fmt.Sprintf("%q is not a color", hex), model.StatusBarError, toastShort)
	}
	m.HistoryCursor = 0
	m.ClampCursors()
	LogInfo(tuiSubsystem, "%s %s", verb, m.State.Current)

	if cmd := persist(m); cmd != nil {
		return cmd
	}
	if autoCopy {
		value := m.State.CurrentValue(m.Names)
		return copyText(m, value, value)
	}
	return m.SetStatusMessage(fmt.Sprintf("%s %s", verb, m.State.Current), model.StatusBarSuccess, toastShort)
}

func cycleFormat(m *model.Model, delta int) tea.Cmd {
	m.State.SetFormat(m.State.Format.Next(delta))
	if cmd := persist(m); cmd != nil {
		return cmd
	}
	return m.SetStatusMessage(fmt.Sprintf("Format: %s", m.State.Format), model.StatusBarInfo, toastShort)
}

func copyCurrent(m *model.Model) tea.Cmd {
	if m.State.Current == "" {
		return m.SetStatusMessage("No color picked yet", model.StatusBarWarning, toastShort)
	}
	value := m.State.CurrentValue(m.Names)
	return copyText(m, value, value)
}

func adjustCurrent(m *model.Model, lightness, saturation float64) tea.Cmd {
	if m.State.Current == "" {
		return m.SetStatusMessage("No color picked yet", model.StatusBarWarning, toastShort)
	}
	adjusted, ok := colormath.Adjust(m.State.Current, lightness, saturation)
	if !ok {
		return nil
	}
	return applyColor(m, adjusted, false, "Adjusted to")
}

// activateFocused handles enter on the focused panel.
func activateFocused(m *model.Model) tea.Cmd {
	switch m.FocusedPanel {
	case model.PanelHistory:
		if len(m.State.History) == 0 {
			return nil
		}
		return applyColor(m, m.State.History[m.HistoryCursor], m.AutoCopy, "Selected")

	case model.PanelHarmonies:
		colors := m.Harmonies()
		if len(colors) == 0 {
			return nil
		}
		return applyColor(m, colors[m.HarmonyCursor], m.AutoCopy, "Selected")

	case model.PanelPalettes:
		p, ok := m.SelectedPalette()
		if !ok {
			return m.SetStatusMessage("No palettes yet, press n to create one", model.StatusBarInfo, toastShort)
		}
		name := p.Name
		if err := m.State.SetActivePalette(p.ID); err != nil {
			return m.SetStatusMessage(err.Error(), model.StatusBarError, toastShort)
		}
		m.PaletteColorCursor = 0
		if cmd := persist(m); cmd != nil {
			return cmd
		}
		return m.SetStatusMessage(fmt.Sprintf("Active palette: %s", name), model.StatusBarSuccess, toastShort)

	case model.PanelPaletteColors:
		colors := m.ActivePaletteColors()
		if len(colors) == 0 {
			return nil
		}
		return applyColor(m, colors[m.PaletteColorCursor], m.AutoCopy, "Selected")
	}
	return nil
}

func addCurrentToActive(m *model.Model) tea.Cmd {
	err := m.State.AddCurrentToActive()
	switch {
	case errors.Is(err, session.ErrNoActivePalette):
		return m.SetStatusMessage("No active palette, select one with enter", model.StatusBarWarning, toastShort)
	case errors.Is(err, session.ErrNoColor):
		return m.SetStatusMessage("No color picked yet", model.StatusBarWarning, toastShort)
	case errors.Is(err, session.ErrDuplicateColor):
		return m.SetStatusMessage(fmt.Sprintf("%s is already in the palette", m.State.Current), model.StatusBarInfo, toastShort)
	case err != nil:
		return m.SetStatusMessage(err.Error(), model.StatusBarError, toastShort)
	}

	active, _ := m.State.ActivePalette()
	if cmd := persist(m); cmd != nil {
		return cmd
	}
	return m.SetStatusMessage(fmt.Sprintf("Added %s to %s", m.State.Current, active.Name), model.StatusBarSuccess, toastShort)
}

// deleteFocused removes the focused palette, or the focused color of the
// active palette.
func deleteFocused(m *model.Model) tea.Cmd {
	var done string
	switch m.FocusedPanel {
	case model.PanelPalettes:
		p, ok := m.SelectedPalette()
		if !ok {
			return nil
		}
		name := p.Name
		if err := m.State.DeletePalette(p.ID); err != nil {
			return m.SetStatusMessage(err.Error(), model.StatusBarError, toastShort)
		}
		done = fmt.Sprintf("Deleted palette %s", name)

	case model.PanelPaletteColors:
		active, ok := m.State.ActivePalette()
		colors := m.ActivePaletteColors()
		if !ok || len(colors) == 0 {
			return nil
		}
		hex := colors[m.PaletteColorCursor]
		if err := m.State.RemoveColor(active.ID, hex); err != nil {
			return m.SetStatusMessage(err.Error(), model.StatusBarError, toastShort)
		}
		done = fmt.Sprintf("Removed %s", hex)

	default:
		return m.SetStatusMessage("Focus a palette to delete", model.StatusBarInfo, toastShort)
	}

	m.ClampCursors()
	if cmd := persist(m); cmd != nil {
		return cmd
	}
	return m.SetStatusMessage(done, model.StatusBarSuccess, toastShort)
}

func clearHistory(m *model.Model) tea.Cmd {
	m.State.ClearHistory()
	m.ClampCursors()
	if cmd := persist(m); cmd != nil {
		return cmd
	}
	return m.SetStatusMessage("History cleared", model.StatusBarInfo, toastShort)
}

func createPalette(m *model.Model, name string) tea.Cmd {
	p, err := m.State.CreatePalette(name)
	if err != nil {
		return m.SetStatusMessage(err.Error(), model.StatusBarWarning, toastShort)
	}
	_ = m.State.SetActivePalette(p.ID)
	m.FocusPalette(p.ID)
	m.PaletteColorCursor = 0
	if cmd := persist(m); cmd != nil {
		return cmd
	}
	return m.SetStatusMessage(fmt.Sprintf("Created palette %s", p.Name), model.StatusBarSuccess, toastShort)
}
