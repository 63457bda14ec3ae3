package colormath

import "math"

// WCAG thresholds.
const (
	ThresholdAA      = 4.5
	ThresholdAAA     = 7.0
	ThresholdAALarge = 3.0
)

const (
	White = "#FFFFFF"
	Black = "#000000"
)

// RelativeLuminance returns the WCAG relative luminance of an sRGB color,
// between 0 (black) and 1 (white).
func RelativeLuminance(r, g, b int) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

func linearize(channel int) float64 {
	c := float64(channel) / 255
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio of two luminances in [0,1].
// The result is symmetric in its arguments and ranges from 1 to 21.
func ContrastRatio(a, b float64) float64 {
	hi, lo := math.Max(a, b), math.Min(a, b)
	return (hi + 0.05) / (lo + 0.05)
}

// PassesAA reports whether ratio meets the AA threshold for normal text.
func PassesAA(ratio float64) bool { return ratio >= ThresholdAA }

// PassesAAA reports whether ratio meets the AAA threshold for normal text.
func PassesAAA(ratio float64) bool { return ratio >= ThresholdAAA }

// PassesAALarge reports whether ratio meets the AA threshold for large text.
func PassesAALarge(ratio float64) bool { return ratio >= ThresholdAALarge }

// ContrastReport classifies a color against white and black.
type ContrastReport struct {
	Luminance float64 `json:"luminance" yaml:"luminance"`
	OnWhite   float64 `json:"on_white" yaml:"on_white"`
	OnBlack   float64 `json:"on_black" yaml:"on_black"`
	Best      float64 `json:"best" yaml:"best"`
	// TextColor is the better pairing, White or Black.
	TextColor string `json:"text_color" yaml:"text_color"`
	AA        bool   `json:"aa" yaml:"aa"`
	AAA       bool   `json:"aaa" yaml:"aaa"`
	AALarge   bool   `json:"aa_large" yaml:"aa_large"`
}

// CheckContrast computes the contrast report for hex. Classification uses
// the larger of the white and black ratios.
func CheckContrast(hex string) (ContrastReport, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return ContrastReport{}, false
	}
	lum := RelativeLuminance(rgb.R, rgb.G, rgb.B)
	onWhite := ContrastRatio(lum, 1)
	onBlack := ContrastRatio(lum, 0)

	report := ContrastReport{
		Luminance: lum,
		OnWhite:   onWhite,
		OnBlack:   onBlack,
		Best:      onBlack,
		TextColor: Black,
	}
	if onWhite > onBlack {
		report.Best = onWhite
		report.TextColor = White
	}
	report.AA = PassesAA(report.Best)
	report.AAA = PassesAAA(report.Best)
	report.AALarge = PassesAALarge(report.Best)
	return report, true
}
