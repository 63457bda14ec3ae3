// Package colormath implements the color arithmetic behind colorpick.
//
// Everything in this package is a pure function over small value types. No
// function keeps state, performs I/O or blocks, so all of them are safe to
// call concurrently from any number of goroutines.
//
// # Colors
//
// A color is canonically a 7 character string of the form "#RRGGBB" with
// upper-case hex digits and no alpha channel. Functions that accept a hex
// string also accept lower-case digits and a missing leading '#'. Invalid
// input never panics: conversions report failure through a boolean and the
// formatter returns its input unchanged.
//
// # Conversions
//
//	rgb, ok := colormath.HexToRGB("#FF5733")  // {255 87 51}, true
//	hsl := colormath.RGBToHSL(255, 87, 51)     // {11 100 60}
//	back := colormath.HSLToRGB(hsl)            // {255 88 51}
//	hex := colormath.RGBToHex(255, 87.6, 51)   // "#FF5833"
//
// The integer HSL type rounds hue to whole degrees and saturation/lightness
// to whole percent, so a round trip through it is only accurate to about one
// unit per channel. Derivations (Adjust and the harmony helpers) therefore
// work on FloatHSL and only round once, when producing the final RGB value.
//
// # Formatting
//
// FormatColor renders a color in one of the Format tags. The tailwind format
// needs a NameFinder; when none is supplied, or it finds nothing, the hex
// value is returned.
//
// # Contrast
//
// RelativeLuminance and ContrastRatio follow WCAG 2.x. CheckContrast pairs a
// color with both pure white and pure black and classifies it against the
// better of the two.
//
// # Harmonies
//
// Complementary, Analogous and Triadic rotate the hue of a base color while
// keeping saturation and lightness, wrapping hue into [0, 360).
package colormath
