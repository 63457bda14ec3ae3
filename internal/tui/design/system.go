package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Spacing units, in terminal cells.
const (
	SpaceXS = 1
	SpaceSM = 2

	MinPanelHeight = 3
	MinPanelWidth  = 20

	// SwatchWidth is the number of cells one color chip takes.
	SwatchWidth = 4
)

// Chrome colors. Picked colors are painted with their own value and never
// go through this palette.
var (
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#C026D3", Dark: "#E879F9"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}

	ColorSuccess = lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#4ADE80"}
	ColorError   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#F87171"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}

	ColorBackground = lipgloss.AdaptiveColor{Light: "#FAFAF9", Dark: "#18181B"}
	ColorBar        = lipgloss.AdaptiveColor{Light: "#E7E5E4", Dark: "#27272A"}
	ColorOverlay    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1F1F23"}
	ColorBorder     = lipgloss.AdaptiveColor{Light: "#D6D3D1", Dark: "#3F3F46"}

	ColorText      = lipgloss.AdaptiveColor{Light: "#1C1917", Dark: "#F4F4F5"}
	ColorTextDim   = lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#A1A1AA"}
	ColorTextFaint = lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#52525B"}
)

var (
	TextSecondaryStyle = lipgloss.NewStyle().Foreground(ColorTextDim)
	DimStyle           = lipgloss.NewStyle().Foreground(ColorTextFaint)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, SpaceXS)

	PanelFocusedStyle = PanelStyle.Copy().
				BorderForeground(ColorPrimary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, SpaceXS)

	// Format tabs
	TabStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Foreground(ColorTextDim)

	TabActiveStyle = TabStyle.Copy().
			Bold(true).
			Foreground(ColorBackground).
			Background(ColorPrimary)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBar).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.Copy().Background(ColorSuccess).Foreground(ColorBackground)
	StatusBarErrorStyle   = StatusBarStyle.Copy().Background(ColorError).Foreground(ColorBackground)
	StatusBarWarningStyle = StatusBarStyle.Copy().Background(ColorWarning).Foreground(ColorBackground)
	StatusBarInfoStyle    = StatusBarStyle.Copy().Background(ColorAccent).Foreground(ColorBackground)

	// WCAG badges
	BadgePassStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Bold(true).
			Foreground(ColorBackground).
			Background(ColorSuccess)

	BadgeFailStyle = BadgePassStyle.Copy().
			Background(ColorError)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(SpaceXS)

	ListItemSelectedStyle = ListItemStyle.Copy().
				Foreground(ColorPrimary).
				Bold(true)

	InputStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorAccent).
			Padding(0, SpaceXS)

	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorPrimary)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorAccent).
					Background(ColorOverlay).
					Foreground(ColorText).
					Padding(1, 2)
)

// Activity log levels
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextFaint).Italic(true)
)

// SwatchStyle paints a cell block in hex, with text in textHex on top.
func SwatchStyle(hex, textHex string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Foreground(lipgloss.Color(textHex))
}

// Initialize tells lipgloss which variant of every adaptive color to use.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// IsDarkMode reports the background lipgloss currently assumes.
func IsDarkMode() bool {
	return lipgloss.HasDarkBackground()
}
