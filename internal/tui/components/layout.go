package components

import "colorpick/internal/tui/design"

// SplitWidth divides total columns between a left and right panel. Both
// sides keep design.MinPanelWidth when total allows it, and the two widths
// always add up to total.
func SplitWidth(total int, leftShare float64) (left, right int) {
	if leftShare <= 0 || leftShare >= 1 {
		leftShare = 0.5
	}
	if total < design.MinPanelWidth*2 {
		left = total / 2
		return left, total - left
	}

	left = int(float64(total) * leftShare)
	if left < design.MinPanelWidth {
		left = design.MinPanelWidth
	}
	if total-left < design.MinPanelWidth {
		left = total - design.MinPanelWidth
	}
	return left, total - left
}
