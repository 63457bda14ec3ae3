package colormath

import (
	"math"
	"strings"
)

// HarmonyKind names a fixed set of hue rotations.
type HarmonyKind string

const (
	HarmonyComplementary HarmonyKind = "complementary"
	HarmonyAnalogous     HarmonyKind = "analogous"
	HarmonyTriadic       HarmonyKind = "triadic"
)

// HarmonyKinds lists every harmony in display order.
var HarmonyKinds = []HarmonyKind{HarmonyComplementary, HarmonyAnalogous, HarmonyTriadic}

var harmonyOffsets = map[HarmonyKind][]float64{
	HarmonyComplementary: {0, 180},
	HarmonyAnalogous:     {-30, 0, 30},
	HarmonyTriadic:       {0, 120, 240},
}

// ParseHarmonyKind matches s case-insensitively.
func ParseHarmonyKind(s string) (HarmonyKind, bool) {
	k := HarmonyKind(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := harmonyOffsets[k]; ok {
		return k, true
	}
	return "", false
}

// Next returns the harmony kind after k, wrapping around.
func (k HarmonyKind) Next() HarmonyKind {
	for i, known := range HarmonyKinds {
		if known == k {
			return HarmonyKinds[(i+1)%len(HarmonyKinds)]
		}
	}
	return HarmonyKinds[0]
}

// RotateHue adds delta degrees to h and wraps the result into [0,360).
func RotateHue(h, delta float64) float64 {
	r := math.Mod(h+delta, 360)
	if r < 0 {
		r += 360
	}
	return r
}

// Harmony derives the colors for kind from base. Saturation and lightness are
// held constant.
func Harmony(kind HarmonyKind, base string) ([]string, bool) {
	offsets, ok := harmonyOffsets[kind]
	if !ok {
		return nil, false
	}
	rgb, ok := HexToRGB(base)
	if !ok {
		return nil, false
	}
	hsl := RGBToFloatHSL(rgb.R, rgb.G, rgb.B)

	out := make([]string, 0, len(offsets))
	for _, off := range offsets {
		if off == 0 {
			out = append(out, rgb.Hex())
			continue
		}
		rotated := hsl
		rotated.H = RotateHue(hsl.H, off)
		out = append(out, FloatHSLToRGB(rotated).Hex())
	}
	return out, true
}

// Complementary returns the base color and its opposite on the hue wheel.
func Complementary(base string) ([]string, bool) {
	return Harmony(HarmonyComplementary, base)
}

// Analogous returns base rotated by -30, base itself and base rotated by +30.
func Analogous(base string) ([]string, bool) {
	return Harmony(HarmonyAnalogous, base)
}

// Triadic returns base, base+120 and base+240.
func Triadic(base string) ([]string, bool) {
	return Harmony(HarmonyTriadic, base)
}

// Adjust shifts lightness and saturation of base by the given percentage
// deltas, clamping each to [0,100]. Zero deltas return base unchanged.
func Adjust(base string, lightnessDelta, saturationDelta float64) (string, bool) {
	rgb, ok := HexToRGB(base)
	if !ok {
		return "", false
	}
	hsl := RGBToFloatHSL(rgb.R, rgb.G, rgb.B)
	hsl.L = clamp(hsl.L+lightnessDelta, 0, 100)
	hsl.S = clamp(hsl.S+saturationDelta, 0, 100)
	return FloatHSLToRGB(hsl).Hex(), true
}
