package colormath

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// RGB is a 24-bit color with each channel in [0,255].
type RGB struct {
	R int `json:"r" yaml:"r"`
	G int `json:"g" yaml:"g"`
	B int `json:"b" yaml:"b"`
}

// Hex returns the canonical "#RRGGBB" form.
func (c RGB) Hex() string {
	return RGBToHex(float64(c.R), float64(c.G), float64(c.B))
}

// HSL is the rounded hue/saturation/lightness representation of a color.
// H is in degrees [0,360), S and L are percentages [0,100].
type HSL struct {
	H int `json:"h" yaml:"h"`
	S int `json:"s" yaml:"s"`
	L int `json:"l" yaml:"l"`
}

// FloatHSL keeps full precision. H is in degrees [0,360), S and L in [0,100].
type FloatHSL struct {
	H float64
	S float64
	L float64
}

// Rounded converts to the integer HSL form.
func (c FloatHSL) Rounded() HSL {
	h := int(math.Round(c.H))
	if h >= 360 {
		h -= 360
	}
	return HSL{H: h, S: int(math.Round(c.S)), L: int(math.Round(c.L))}
}

// HexToRGB parses a 6 digit hex color, with or without a leading '#'.
// The second return value is false when the input does not match exactly.
func HexToRGB(hex string) (RGB, bool) {
	m := hexPattern.FindStringSubmatch(hex)
	if m == nil {
		return RGB{}, false
	}
	r, _ := strconv.ParseUint(m[1], 16, 8)
	g, _ := strconv.ParseUint(m[2], 16, 8)
	b, _ := strconv.ParseUint(m[3], 16, 8)
	return RGB{R: int(r), G: int(g), B: int(b)}, true
}

// Normalize returns hex in canonical "#RRGGBB" upper-case form.
func Normalize(hex string) (string, bool) {
	if !hexPattern.MatchString(hex) {
		return "", false
	}
	return "#" + strings.ToUpper(strings.TrimPrefix(hex, "#")), true
}

// IsValidHex reports whether hex is a 6 digit hex color.
func IsValidHex(hex string) bool {
	return hexPattern.MatchString(hex)
}

// RGBToHex clamps each channel to [0,255], rounds it and encodes the result.
func RGBToHex(r, g, b float64) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(r), clampChannel(g), clampChannel(b))
}

func clampChannel(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(math.Round(clamp(v, 0, 255)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RGBToHSL converts an RGB triple to rounded HSL.
func RGBToHSL(r, g, b int) HSL {
	return RGBToFloatHSL(r, g, b).Rounded()
}

// RGBToFloatHSL converts an RGB triple to HSL without rounding.
func RGBToFloatHSL(r, g, b int) FloatHSL {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	l := (maxC + minC) / 2

	if maxC == minC {
		return FloatHSL{H: 0, S: 0, L: l * 100}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return FloatHSL{H: h * 360, S: s * 100, L: l * 100}
}

// HSLToRGB converts rounded HSL back to RGB.
func HSLToRGB(c HSL) RGB {
	return FloatHSLToRGB(FloatHSL{H: float64(c.H), S: float64(c.S), L: float64(c.L)})
}

// FloatHSLToRGB converts HSL to RGB, rounding each channel once at the end.
func FloatHSLToRGB(c FloatHSL) RGB {
	h := math.Mod(c.H, 360) / 360
	if h < 0 {
		h++
	}
	s := clamp(c.S, 0, 100) / 100
	l := clamp(c.L, 0, 100) / 100

	if s == 0 {
		v := clampChannel(l * 255)
		return RGB{R: v, G: v, B: v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: clampChannel(hueToChannel(p, q, h+1.0/3.0) * 255),
		G: clampChannel(hueToChannel(p, q, h) * 255),
		B: clampChannel(hueToChannel(p, q, h-1.0/3.0) * 255),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}
