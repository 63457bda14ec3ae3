package colormath

import (
	"fmt"
	"strings"
)

// Format selects the textual rendering of a color.
type Format string

const (
	FormatHex      Format = "hex"
	FormatRGB      Format = "rgb"
	FormatHSL      Format = "hsl"
	FormatRGBA     Format = "rgba"
	FormatHSLA     Format = "hsla"
	FormatHex8     Format = "hex8"
	FormatTailwind Format = "tailwind"
	FormatCSSVar   Format = "cssvar"
)

// Formats lists every supported format in display order.
var Formats = []Format{
	FormatHex,
	FormatRGB,
	FormatHSL,
	FormatRGBA,
	FormatHSLA,
	FormatHex8,
	FormatTailwind,
	FormatCSSVar,
}

// ParseFormat matches s case-insensitively against the known formats.
func ParseFormat(s string) (Format, bool) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// Next returns the format following f in Formats, wrapping around. Unknown
// formats step to the first one.
func (f Format) Next(delta int) Format {
	idx := -1
	for i, known := range Formats {
		if known == f {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Formats[0]
	}
	n := len(Formats)
	return Formats[((idx+delta)%n+n)%n]
}

// Match is a named color found by a NameFinder.
type Match struct {
	Name     string  `json:"name" yaml:"name"`
	Hex      string  `json:"hex" yaml:"hex"`
	Distance float64 `json:"distance" yaml:"distance"`
	Exact    bool    `json:"exact" yaml:"exact"`
}

// NameFinder looks up the closest known name for a color.
type NameFinder interface {
	FindClosest(hex string) (Match, bool)
}

// FormatColor renders hex in the requested format. It never fails: unknown
// formats and unparsable input return hex unchanged. names may be nil.
func FormatColor(hex string, format Format, names NameFinder) string {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return hex
	}

	switch format {
	case FormatHex:
		return hex
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
	case FormatHSL:
		hsl := RGBToHSL(rgb.R, rgb.G, rgb.B)
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
	case FormatRGBA:
		return fmt.Sprintf("rgba(%d, %d, %d, 1)", rgb.R, rgb.G, rgb.B)
	case FormatHSLA:
		hsl := RGBToHSL(rgb.R, rgb.G, rgb.B)
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, 1)", hsl.H, hsl.S, hsl.L)
	case FormatHex8:
		return hex + "FF"
	case FormatTailwind:
		if names == nil {
			return hex
		}
		if m, found := names.FindClosest(hex); found && m.Name != "" {
			return m.Name
		}
		return hex
	case FormatCSSVar:
		return fmt.Sprintf("var(--color-%s)", strings.ToLower(strings.TrimPrefix(hex, "#")))
	default:
		return hex
	}
}

// FormatAll renders hex in every format, keyed by format.
func FormatAll(hex string, names NameFinder) map[Format]string {
	out := make(map[Format]string, len(Formats))
	for _, f := range Formats {
		out[f] = FormatColor(hex, f, names)
	}
	return out
}
