package view

import (
	"fmt"
	"strings"

	"colorpick/internal/tui/components"
	"colorpick/internal/tui/design"
	"colorpick/internal/tui/model"
	"colorpick/pkg/colormath"

	"github.com/charmbracelet/lipgloss"
)

const previewSwatchWidth = 12

// panel renders a box just tall enough for a title line and content.
func panel(title, hint, content string, width int, focused bool) string {
	height := lipgloss.Height(content) + 1 + design.PanelStyle.GetVerticalFrameSize()
	if content == "" {
		height = 2 + design.PanelStyle.GetVerticalFrameSize()
		content = design.DimStyle.Render("empty")
	}
	return components.NewPanel(title).
		WithHint(hint).
		WithContent(content).
		WithDimensions(width, height).
		SetFocused(focused).
		Render()
}

func renderPreview(m *model.Model, width int) string {
	current := m.State.Current
	if current == "" {
		return panel("Preview", "", design.DimStyle.Render("No color yet, press p to pick"), width, false)
	}

	lines := []string{
		design.TitleStyle.Render(current),
		m.State.CurrentValue(m.Names),
	}
	if m.Names != nil {
		if match, ok := m.Names.FindClosest(current); ok {
			if match.Exact {
				lines = append(lines, "= "+match.Name)
			} else {
				lines = append(lines, fmt.Sprintf("≈ %s (ΔE %.1f)", match.Name, match.Distance))
			}
		}
	}

	swatch := components.Swatch(current, "", previewSwatchWidth, len(lines))
	content := lipgloss.JoinHorizontal(lipgloss.Top, swatch, " ", strings.Join(lines, "\n"))
	return panel("Preview", "", content, width, false)
}

func badge(label string, pass bool) string {
	if pass {
		return design.BadgePassStyle.Render(label + " ✓")
	}
	return design.BadgeFailStyle.Render(label + " ✗")
}

func renderContrast(m *model.Model, width int) string {
	report, ok := colormath.CheckContrast(m.State.Current)
	if !ok {
		return panel("Contrast", "", design.DimStyle.Render("n/a"), width, false)
	}

	textName := "black"
	if report.TextColor == colormath.White {
		textName = "white"
	}
	lines := []string{
		fmt.Sprintf("white %.2f  black %.2f", report.OnWhite, report.OnBlack),
		fmt.Sprintf("best %.2f:1 with %s text", report.Best, textName),
		strings.Join([]string{
			badge("AA", report.AA),
			badge("AAA", report.AAA),
			badge("Large", report.AALarge),
		}, " "),
	}
	return panel("Contrast", "WCAG", strings.Join(lines, "\n"), width, false)
}

func renderFormatTabs(m *model.Model, width int) string {
	tabs := make([]string, 0, len(colormath.Formats))
	for _, f := range colormath.Formats {
		style := design.TabStyle
		if f == m.State.Format {
			style = design.TabActiveStyle
		}
		tabs = append(tabs, style.Render(string(f)))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().MaxWidth(width).Render(row)
}

// swatchPanel renders a row of chips with the selected color's hex below.
func swatchPanel(title, hint string, colors []string, cursor int, focused bool, width int) string {
	if len(colors) == 0 {
		return panel(title, hint, "", width, focused)
	}
	content := components.SwatchRow(colors, cursor, focused)
	if focused && cursor >= 0 && cursor < len(colors) {
		content += "\n" + design.TextSecondaryStyle.Render(fmt.Sprintf("%d/%d %s", cursor+1, len(colors), colors[cursor]))
	}
	return panel(title, hint, content, width, focused)
}

func renderHistory(m *model.Model, width int) string {
	return swatchPanel("History", "x clear", m.State.History, m.HistoryCursor,
		m.FocusedPanel == model.PanelHistory, width)
}

func renderHarmonies(m *model.Model, width int) string {
	return swatchPanel("Harmonies", string(m.HarmonyKind)+" · m mode", m.Harmonies(), m.HarmonyCursor,
		m.FocusedPanel == model.PanelHarmonies, width)
}

func renderPalettes(m *model.Model, width int) string {
	listFocused := m.FocusedPanel == model.PanelPalettes
	active, hasActive := m.State.ActivePalette()

	var names []string
	for i, p := range m.State.Palettes {
		label := p.Name
		if hasActive && p.ID == active.ID {
			label = "● " + label
		}
		style := design.ListItemStyle
		if listFocused && i == m.PaletteCursor {
			style = design.ListItemSelectedStyle
			label = "[" + label + "]"
		}
		names = append(names, style.Render(label))
	}
	list := lipgloss.JoinHorizontal(lipgloss.Top, names...)
	listPanel := panel("Palettes", "n new · enter activate · d delete", list, width, listFocused)

	title := "Palette colors"
	if hasActive {
		title = active.Name
	}
	colorsPanel := swatchPanel(title, "a add current", m.ActivePaletteColors(), m.PaletteColorCursor,
		m.FocusedPanel == model.PanelPaletteColors, width)

	return lipgloss.JoinVertical(lipgloss.Left, listPanel, colorsPanel)
}
