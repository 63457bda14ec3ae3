package cmd

import (
	"fmt"
	"os"

	"colorpick/internal/export"

	"github.com/spf13/cobra"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		paletteRef  string
		fromHistory bool
		formatName  string
		name        string
		outPath     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a palette or the history for use in code",
		Long: `Renders a set of colors as JSON, CSS custom properties, SCSS variables,
a Tailwind config snippet or YAML.

Without --palette or --history the active palette is exported, falling back
to the history when no palette is active.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(formatName)
			if err != nil {
				return err
			}
			_, state, err := opts.load(cmd)
			if err != nil {
				return err
			}

			colors, label := state.History, "history"
			switch {
			case paletteRef != "":
				p, err := resolvePalette(state, paletteRef)
				if err != nil {
					return err
				}
				colors, label = p.Colors, p.Name
			case fromHistory:
			default:
				if p, ok := state.ActivePalette(); ok {
					colors, label = p.Colors, p.Name
				}
			}
			if len(colors) == 0 {
				return fmt.Errorf("nothing to export, %s has no colors", label)
			}
			if name != "" {
				label = name
			}

			rendered, err := export.Render(colors, format, export.Options{Name: label})
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), rendered)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d colors to %s\n", len(colors), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&paletteRef, "palette", "p", "", "Palette id or name to export")
	cmd.Flags().BoolVar(&fromHistory, "history", false, "Export the history instead of a palette")
	cmd.Flags().StringVarP(&formatName, "format", "f", string(export.FormatJSON), "json, css, scss, tailwind or yaml")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name used for variable prefixes")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	cmd.MarkFlagsMutuallyExclusive("palette", "history")
	return cmd
}
