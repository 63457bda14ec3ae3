package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"colorpick/pkg/colormath"

	"gopkg.in/yaml.v3"
)

// Format is an export target.
type Format string

const (
	FormatJSON     Format = "json"
	FormatCSS      Format = "css"
	FormatSCSS     Format = "scss"
	FormatTailwind Format = "tailwind"
	FormatYAML     Format = "yaml"
)

// Formats lists the supported export formats.
var Formats = []Format{FormatJSON, FormatCSS, FormatSCSS, FormatTailwind, FormatYAML}

// ErrUnknownFormat is returned for export formats Render does not know.
var ErrUnknownFormat = errors.New("unknown export format")

const defaultPrefix = "color"

// Options tunes the rendered output.
type Options struct {
	// Name labels the set, typically a palette name. It is slugified into
	// the variable prefix.
	Name string
}

// document is the shape shared by the JSON and YAML exports.
type document struct {
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Colors []string `json:"colors" yaml:"colors"`
}

// ParseFormat matches s case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Render serializes colors in order. Invalid colors are skipped and the
// remaining ones are numbered from 1.
func Render(colors []string, f Format, opts Options) (string, error) {
	valid := cleanColors(colors)
	prefix := Slug(opts.Name)

	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(document{Name: opts.Name, Colors: valid}, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal colors: %w", err)
		}
		return string(data) + "\n", nil
	case FormatYAML:
		data, err := yaml.Marshal(document{Name: opts.Name, Colors: valid})
		if err != nil {
			return "", fmt.Errorf("failed to marshal colors: %w", err)
		}
		return string(data), nil
	case FormatCSS:
		var b strings.Builder
		b.WriteString(":root {\n")
		for i, c := range valid {
			fmt.Fprintf(&b, "  --%s-%d: %s;\n", prefix, i+1, c)
		}
		b.WriteString("}\n")
		return b.String(), nil
	case FormatSCSS:
		var b strings.Builder
		for i, c := range valid {
			fmt.Fprintf(&b, "$%s-%d: %s;\n", prefix, i+1, c)
		}
		return b.String(), nil
	case FormatTailwind:
		var b strings.Builder
		b.WriteString("module.exports = {\n")
		b.WriteString("  theme: {\n")
		b.WriteString("    extend: {\n")
		b.WriteString("      colors: {\n")
		fmt.Fprintf(&b, "        '%s': {\n", prefix)
		for i, c := range valid {
			fmt.Fprintf(&b, "          '%d': '%s',\n", i+1, c)
		}
		b.WriteString("        },\n")
		b.WriteString("      },\n")
		b.WriteString("    },\n")
		b.WriteString("  },\n")
		b.WriteString("}\n")
		return b.String(), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

func cleanColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		if norm, ok := colormath.Normalize(strings.TrimSpace(c)); ok {
			out = append(out, norm)
		}
	}
	return out
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lower-cases name and collapses everything but letters and digits into
// single dashes. An empty result falls back to "color".
func Slug(name string) string {
	s := nonSlug.ReplaceAllString(strings.ToLower(name), "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return defaultPrefix
	}
	return s
}
