package cmd

import (
	"fmt"
	"strings"

	"colorpick/pkg/colormath"

	"github.com/spf13/cobra"
)

func formatNames() string {
	names := make([]string, len(colormath.Formats))
	for i, f := range colormath.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func newConvertCmd(opts *rootOptions) *cobra.Command {
	var formatName string
	var all bool

	cmd := &cobra.Command{
		Use:   "convert <#RRGGBB>",
		Short: "Print a color in another format",
		Long: fmt.Sprintf(`Prints the color in the last used format, the one given with --format,
or every format with --all.

Formats: %s`, formatNames()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColor(args[0])
			if err != nil {
				return err
			}
			application, state, err := opts.load(cmd)
			if err != nil {
				return err
			}
			names := application.Services().Names
			out := cmd.OutOrStdout()

			if all {
				values := colormath.FormatAll(hex, names)
				for _, f := range colormath.Formats {
					fmt.Fprintf(out, "%-9s %s\n", f, values[f])
				}
				return nil
			}

			format := state.Format
			if formatName != "" {
				f, ok := colormath.ParseFormat(formatName)
				if !ok {
					return fmt.Errorf("unknown format %q, want one of %s", formatName, formatNames())
				}
				format = f
			}
			fmt.Fprintln(out, colormath.FormatColor(hex, format, names))
			return nil
		},
	}

	cmd.Flags().StringVarP(&formatName, "format", "f", "", "Output format")
	cmd.Flags().BoolVar(&all, "all", false, "Print every format")
	cmd.MarkFlagsMutuallyExclusive("format", "all")
	return cmd
}

func newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <#RRGGBB>",
		Short: "Check WCAG contrast against white and black text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColor(args[0])
			if err != nil {
				return err
			}
			report, _ := colormath.CheckContrast(hex)

			textName := "black"
			if report.TextColor == colormath.White {
				textName = "white"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, colorLine(hex, ""))
			fmt.Fprintf(out, "on white   %.2f:1\n", report.OnWhite)
			fmt.Fprintf(out, "on black   %.2f:1\n", report.OnBlack)
			fmt.Fprintf(out, "best       %.2f:1 with %s text\n", report.Best, textName)
			fmt.Fprintf(out, "AA         %s\n", verdict(report.AA))
			fmt.Fprintf(out, "AAA        %s\n", verdict(report.AAA))
			fmt.Fprintf(out, "AA large   %s\n", verdict(report.AALarge))
			return nil
		},
	}
}

func newHarmonyCmd() *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "harmony <#RRGGBB>",
		Short: "Derive complementary, analogous or triadic colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColor(args[0])
			if err != nil {
				return err
			}
			kind, ok := colormath.ParseHarmonyKind(kindName)
			if !ok {
				return fmt.Errorf("unknown harmony %q, want complementary, analogous or triadic", kindName)
			}
			colors, _ := colormath.Harmony(kind, hex)
			for _, c := range colors {
				fmt.Fprintln(cmd.OutOrStdout(), colorLine(c, ""))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", string(colormath.HarmonyComplementary), "Harmony kind")
	return cmd
}

func newAdjustCmd() *cobra.Command {
	var lightness, saturation float64

	cmd := &cobra.Command{
		Use:   "adjust <#RRGGBB>",
		Short: "Shift lightness and saturation in HSL space",
		Long: `Adds the given deltas, in percentage points, to the color's HSL lightness
and saturation. Results are clamped to 0-100.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColor(args[0])
			if err != nil {
				return err
			}
			adjusted, _ := colormath.Adjust(hex, lightness, saturation)
			fmt.Fprintln(cmd.OutOrStdout(), adjusted)
			return nil
		},
	}

	cmd.Flags().Float64VarP(&lightness, "lightness", "l", 0, "Lightness delta")
	cmd.Flags().Float64VarP(&saturation, "saturation", "s", 0, "Saturation delta")
	return cmd
}

func newNameCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "name <#RRGGBB>",
		Short: "Find the closest named color",
		Long: `Looks up the closest color in the configured catalog (tailwind or css)
using the CIEDE2000 color difference.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColor(args[0])
			if err != nil {
				return err
			}
			application, err := opts.open(cmd)
			if err != nil {
				return err
			}
			match, ok := application.Services().Names.FindClosest(hex)
			if !ok {
				return fmt.Errorf("no named color found for %s", hex)
			}
			if match.Exact {
				fmt.Fprintln(cmd.OutOrStdout(), match.Name)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, ΔE %.1f)\n", match.Name, match.Hex, match.Distance)
			return nil
		},
	}
}
