package components

import (
	"strings"

	"colorpick/internal/tui/design"
	"colorpick/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a bordered box with a title line.
type Panel struct {
	Title   string
	Hint    string
	Content string
	Width   int
	Height  int
	Focused bool
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithHint adds dimmed text after the title.
func (p *Panel) WithHint(hint string) *Panel {
	p.Hint = hint
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel. Content lines wider than the panel are
// cut rather than wrapped so swatch rows keep their shape.
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := design.PanelStyle
	if p.Focused {
		style = design.PanelFocusedStyle
	}

	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
	}

	if p.Content != "" {
		contentLines := strings.Split(p.Content, "\n")
		available := innerHeight - len(lines)
		if available > 0 {
			if len(contentLines) > available {
				contentLines = append(contentLines[:available-1], "...")
			}
			for _, line := range contentLines {
				if lipgloss.Width(line) > innerWidth {
					line = lipgloss.NewStyle().MaxWidth(innerWidth).Render(line)
				}
				lines = append(lines, line)
			}
		}
	}

	for len(lines) < innerHeight {
		lines = append(lines, "")
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

func (p *Panel) renderTitle(width int) string {
	titleStyle := design.TitleStyle
	if p.Focused {
		titleStyle = titleStyle.Copy().Foreground(design.ColorPrimary)
	}
	title := titleStyle.Render(utils.TruncateString(p.Title, width))
	if p.Hint != "" {
		remaining := width - lipgloss.Width(title) - 1
		if remaining > 3 {
			title += " " + design.DimStyle.Render(utils.TruncateString(p.Hint, remaining))
		}
	}
	return title
}
