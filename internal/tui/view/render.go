package view

import (
	"fmt"
	"strings"

	"colorpick/internal/tui/components"
	"colorpick/internal/tui/design"
	"colorpick/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// overlay border plus padding, and the title line with its margin
	overlayFrameWidth  = 6
	overlayFrameHeight = 6
)

// Render renders the popup for the current mode.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		return ""
	case model.ModeHelpOverlay:
		return renderOverlay(m, "KEYBOARD SHORTCUTS", m.Help.FullHelpView(m.Keys.FullHelp()), "Esc/? close")
	case model.ModeLogOverlay:
		return renderOverlay(m, "ACTIVITY LOG", m.LogViewport.View(), "↑/↓ scroll • Esc/L close")
	case model.ModeExportOverlay:
		colors, name := m.ExportSource()
		title := fmt.Sprintf("EXPORT %s · %s (%d colors)", strings.ToUpper(string(m.ExportFormat)), name, len(colors))
		return renderOverlay(m, title, m.ExportViewport.View(), "tab/f format • y copy • Esc close")
	default:
		return renderMain(m)
	}
}

func dimensions(m *model.Model) (int, int) {
	w, h := m.Width, m.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}
	return w, h
}

// OverlayBodySize returns the space left for overlay content in a terminal
// of the given size.
func OverlayBodySize(width, height int) (int, int) {
	w := width - overlayFrameWidth
	h := height - overlayFrameHeight
	if w < 10 {
		w = 10
	}
	if h < 3 {
		h = 3
	}
	return w, h
}

func renderMain(m *model.Model) string {
	width, _ := dimensions(m)

	header := components.NewHeader(width).
		WithColor(m.State.Current).
		WithVersion(m.Version).
		WithFormat(string(m.State.Format))
	if m.Sampling {
		header = header.WithActivity(m.Spinner.View() + " sampling…")
	}

	previewWidth, contrastWidth := components.SplitWidth(width, 0.6)
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		renderPreview(m, previewWidth),
		renderContrast(m, contrastWidth),
	)

	parts := []string{
		header.Render(),
		top,
		renderFormatTabs(m, width),
		renderHistory(m, width),
		renderHarmonies(m, width),
		renderPalettes(m, width),
	}
	if input := renderInput(m, width); input != "" {
		parts = append(parts, input)
	}
	parts = append(parts, renderStatusBar(m, width))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderInput(m *model.Model, width int) string {
	if m.CurrentAppMode != model.ModePickInput && m.CurrentAppMode != model.ModePaletteNameInput {
		return ""
	}
	style := design.InputStyle
	return style.Width(width - style.GetHorizontalBorderSize()).Render(m.Input.View())
}

func renderStatusBar(m *model.Model, width int) string {
	return components.NewStatusBar(width).
		WithLeftText(m.FocusedPanel.String()).
		WithRightText(m.Help.ShortHelpView(m.Keys.ShortHelp())).
		WithMessage(m.StatusBarMessage, m.StatusBarMessageType).
		Render()
}

func renderOverlay(m *model.Model, title, body, hint string) string {
	width, height := dimensions(m)
	bodyWidth, _ := OverlayBodySize(width, height)

	content := lipgloss.JoinVertical(lipgloss.Left,
		design.HelpTitleStyle.Width(bodyWidth).Render(title),
		body,
		design.DimStyle.Render(hint),
	)
	box := design.CenteredOverlayContainerStyle.Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// PrepareLogContent styles each activity log line by its level marker.
// maxWidth is accepted for symmetry with the viewport; overflow is left to
// the viewport.
func PrepareLogContent(lines []string, maxWidth int) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = styleLogLine(l)
	}
	return strings.Join(out, "\n")
}

func styleLogLine(l string) string {
	switch {
	case strings.Contains(l, "[ERROR]"):
		return design.LogErrorStyle.Render(l)
	case strings.Contains(l, "[WARN]"):
		return design.LogWarnStyle.Render(l)
	case strings.Contains(l, "[DEBUG]"):
		return design.LogDebugStyle.Render(l)
	default:
		return design.LogInfoStyle.Render(l)
	}
}
