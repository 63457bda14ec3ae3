package components

import (
	"strings"

	"colorpick/internal/tui/design"
	"colorpick/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

const appName = "colorpick"

// Header is the popup's top line. The left side carries a chip of the
// current color, the app name and the version. The right side shows the
// active format, or the running activity while a sample is in flight.
type Header struct {
	Color    string
	Version  string
	Format   string
	Activity string
	Width    int
}

func NewHeader(width int) *Header {
	return &Header{Width: width}
}

// WithColor sets the chip color. Empty or invalid values render a
// placeholder chip.
func (h *Header) WithColor(hex string) *Header {
	h.Color = hex
	return h
}

func (h *Header) WithVersion(version string) *Header {
	h.Version = version
	return h
}

func (h *Header) WithFormat(format string) *Header {
	h.Format = format
	return h
}

// WithActivity replaces the format label until cleared with "".
func (h *Header) WithActivity(activity string) *Header {
	h.Activity = activity
	return h
}

func (h *Header) left() string {
	parts := []string{Swatch(h.Color, "", 2, 1), appName}
	if h.Version != "" {
		parts = append(parts, design.TextSecondaryStyle.Render(h.Version))
	}
	return strings.Join(parts, " ")
}

func (h *Header) right() string {
	if h.Activity != "" {
		return h.Activity
	}
	if h.Format == "" {
		return ""
	}
	return design.DimStyle.Render("format: " + h.Format)
}

// Render lays out both sides on one line. The right side is dropped first
// when the width runs out, then the version.
func (h *Header) Render() string {
	available := h.Width - design.HeaderStyle.GetHorizontalFrameSize()
	left, right := h.left(), h.right()
	leftWidth, rightWidth := lipgloss.Width(left), lipgloss.Width(right)

	content := left
	switch {
	case right != "" && leftWidth+rightWidth+2 <= available:
		content = left + strings.Repeat(" ", available-leftWidth-rightWidth) + right
	case leftWidth > available:
		content = utils.TruncateString(appName, available)
	}

	return design.HeaderStyle.Copy().
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
