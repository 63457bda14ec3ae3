package cmd

import (
	"fmt"
	"strings"

	"colorpick/internal/session"
	"colorpick/pkg/colormath"

	"github.com/charmbracelet/lipgloss"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"})
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"})
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
)

// swatch renders a small block filled with hex. Terminals without color
// support get plain spaces.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

func verdict(pass bool) string {
	if pass {
		return passStyle.Render("pass")
	}
	return failStyle.Render("fail")
}

// parseColor normalizes a #RRGGBB argument.
func parseColor(arg string) (string, error) {
	hex, ok := colormath.Normalize(arg)
	if !ok {
		return "", fmt.Errorf("%w: %q, expected #RRGGBB", session.ErrInvalidColor, arg)
	}
	return hex, nil
}

// colorLine renders "swatch #HEX" followed by value when it adds anything.
func colorLine(hex, value string) string {
	line := swatch(hex) + " " + hex
	if value != "" && value != hex {
		line += "  " + dimStyle.Render(value)
	}
	return line
}

// resolvePalette finds a palette by id, or by its name when the name is
// unique.
func resolvePalette(state *session.State, ref string) (*session.Palette, error) {
	if p, ok := state.Palette(ref); ok {
		return p, nil
	}
	name := strings.TrimSpace(ref)
	var found *session.Palette
	for i := range state.Palettes {
		if !strings.EqualFold(state.Palettes[i].Name, name) {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("palette name %q is ambiguous, use the id", ref)
		}
		found = &state.Palettes[i]
	}
	if found == nil {
		return nil, fmt.Errorf("%w: %q", session.ErrPaletteNotFound, ref)
	}
	return found, nil
}
