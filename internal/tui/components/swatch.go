package components

import (
	"strings"

	"colorpick/internal/tui/design"
	"colorpick/pkg/colormath"

	"github.com/charmbracelet/lipgloss"
)

// Swatch renders a filled block of hex, optionally with a centered label in
// the readable text color for that background. Invalid colors render as a
// dimmed placeholder of the same size.
func Swatch(hex, label string, width, height int) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	report, ok := colormath.CheckContrast(hex)
	if !ok {
		row := design.DimStyle.Render(strings.Repeat("·", width))
		return strings.TrimSuffix(strings.Repeat(row+"\n", height), "\n")
	}

	style := design.SwatchStyle(hex, report.TextColor).
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)
	if lipgloss.Width(label) > width {
		label = ""
	}
	return style.Render(label)
}

// SwatchRow renders one chip per color. The chip at selected gets a marker
// line underneath when marked is true; pass -1 for no selection.
func SwatchRow(colors []string, selected int, marked bool) string {
	if len(colors) == 0 {
		return ""
	}

	chips := make([]string, 0, len(colors))
	markers := make([]string, 0, len(colors))
	for i, c := range colors {
		chips = append(chips, Swatch(c, "", design.SwatchWidth, 1)+" ")
		marker := strings.Repeat(" ", design.SwatchWidth+1)
		if marked && i == selected {
			marker = lipgloss.NewStyle().Foreground(design.ColorPrimary).
				Render(strings.Repeat("▔", design.SwatchWidth)) + " "
		}
		markers = append(markers, marker)
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, chips...)
	if !marked || selected < 0 || selected >= len(colors) {
		return row
	}
	return row + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, markers...)
}
