package model

import (
	"colorpick/internal/export"
	"colorpick/internal/session"
	"colorpick/pkg/colormath"
)

// Harmonies returns the colors for the selected harmony kind, or nil before
// the first pick.
func (m *Model) Harmonies() []string {
	if m.State.Current == "" {
		return nil
	}
	colors, _ := colormath.Harmony(m.HarmonyKind, m.State.Current)
	return colors
}

// ActivePaletteColors returns the colors of the active palette.
func (m *Model) ActivePaletteColors() []string {
	if p, ok := m.State.ActivePalette(); ok {
		return p.Colors
	}
	return nil
}

// SelectedPalette returns the palette under the palette cursor.
func (m *Model) SelectedPalette() (*session.Palette, bool) {
	if m.PaletteCursor < 0 || m.PaletteCursor >= len(m.State.Palettes) {
		return nil, false
	}
	return &m.State.Palettes[m.PaletteCursor], true
}

func (m *Model) paletteIndex(id string) int {
	for i, p := range m.State.Palettes {
		if p.ID == id {
			return i
		}
	}
	return 0
}

// FocusPalette moves the palette cursor onto id.
func (m *Model) FocusPalette(id string) {
	m.PaletteCursor = m.paletteIndex(id)
}

// ClampCursors keeps every cursor inside its list after the lists changed.
func (m *Model) ClampCursors() {
	m.HistoryCursor = clampIndex(m.HistoryCursor, len(m.State.History))
	m.HarmonyCursor = clampIndex(m.HarmonyCursor, len(m.Harmonies()))
	m.PaletteCursor = clampIndex(m.PaletteCursor, len(m.State.Palettes))
	m.PaletteColorCursor = clampIndex(m.PaletteColorCursor, len(m.ActivePaletteColors()))
}

func clampIndex(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// MoveCursor shifts the cursor of the focused panel by delta, wrapping around.
func (m *Model) MoveCursor(delta int) {
	wrap := func(i, n int) int {
		if n == 0 {
			return 0
		}
		return ((i+delta)%n + n) % n
	}
	switch m.FocusedPanel {
	case PanelHistory:
		m.HistoryCursor = wrap(m.HistoryCursor, len(m.State.History))
	case PanelHarmonies:
		m.HarmonyCursor = wrap(m.HarmonyCursor, len(m.Harmonies()))
	case PanelPalettes:
		m.PaletteCursor = wrap(m.PaletteCursor, len(m.State.Palettes))
	case PanelPaletteColors:
		m.PaletteColorCursor = wrap(m.PaletteColorCursor, len(m.ActivePaletteColors()))
	}
}

// CycleFocus moves focus between panels.
func (m *Model) CycleFocus(direction int) {
	current := 0
	for i, p := range PanelOrder {
		if p == m.FocusedPanel {
			current = i
			break
		}
	}
	n := len(PanelOrder)
	m.FocusedPanel = PanelOrder[((current+direction)%n+n)%n]
}

// Persist saves the session through the store. Without a store it is a no-op.
func (m *Model) Persist() error {
	if m.Store == nil {
		return nil
	}
	return m.Store.Save(m.State.Snapshot())
}

// ExportSource picks what the export overlay shows: the active palette when
// there is one, otherwise the history.
func (m *Model) ExportSource() (colors []string, name string) {
	if p, ok := m.State.ActivePalette(); ok {
		return p.Colors, p.Name
	}
	return m.State.History, "history"
}

// RefreshExport re-renders the export overlay content.
func (m *Model) RefreshExport() error {
	colors, name := m.ExportSource()
	out, err := export.Render(colors, m.ExportFormat, export.Options{Name: name})
	if err != nil {
		return err
	}
	m.ExportContent = out
	m.ExportViewport.SetContent(out)
	m.ExportViewport.GotoTop()
	return nil
}

// NextExportFormat cycles the export overlay format.
func (m *Model) NextExportFormat() {
	for i, f := range export.Formats {
		if f == m.ExportFormat {
			m.ExportFormat = export.Formats[(i+1)%len(export.Formats)]
			return
		}
	}
	m.ExportFormat = export.Formats[0]
}
