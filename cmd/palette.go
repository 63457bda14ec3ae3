package cmd

import (
	"errors"
	"fmt"
	"strings"

	"colorpick/internal/app"
	"colorpick/internal/session"
	"colorpick/pkg/colormath"
	"colorpick/pkg/logging"

	"github.com/spf13/cobra"
)

// update loads the session, applies fn and saves the result. fn returns the
// confirmation printed on success.
func (o *rootOptions) update(cmd *cobra.Command, fn func(*app.Application, *session.State) (string, error)) error {
	application, state, err := o.load(cmd)
	if err != nil {
		return err
	}
	msg, err := fn(application, state)
	if err != nil {
		return err
	}
	if err := application.SaveState(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), msg)
	return nil
}

func newPaletteCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "palette",
		Aliases: []string{"palettes"},
		Short:   "Manage named palettes",
		Long: `Palettes are named, ordered sets of distinct colors. Commands that take
<palette> accept either the palette id or its name.

The active palette receives colors added from the picker popup and is the
default source for 'colorpick export'.`,
	}

	cmd.AddCommand(
		newPaletteCreateCmd(opts),
		newPaletteListCmd(opts),
		newPaletteShowCmd(opts),
		newPaletteRenameCmd(opts),
		newPaletteDeleteCmd(opts),
		newPaletteAddCmd(opts),
		newPaletteRemoveCmd(opts),
		newPaletteUseCmd(opts),
	)
	return cmd
}

func newPaletteCreateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty palette and make it active",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.update(cmd, func(_ *app.Application, state *session.State) (string, error) {
				p, err := state.CreatePalette(strings.Join(args, " "))
				if err != nil {
					return "", err
				}
				if err := state.SetActivePalette(p.ID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Created palette %s (%s)", p.Name, p.ID), nil
			})
		},
	}
}

func newPaletteListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List palettes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, state, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(state.Palettes) == 0 {
				fmt.Fprintln(out, "No palettes yet. Create one with 'colorpick palette create <name>'.")
				return nil
			}

			activeID := ""
			if active, ok := state.ActivePalette(); ok {
				activeID = active.ID
			}
			for _, p := range state.Palettes {
				marker := " "
				if p.ID == activeID {
					marker = "*"
				}
				chips := make([]string, len(p.Colors))
				for i, c := range p.Colors {
					chips[i] = swatch(c)
				}
				fmt.Fprintf(out, "%s %s  %d colors  %s  %s\n",
					marker, p.Name, len(p.Colors), dimStyle.Render(p.ID), strings.Join(chips, ""))
			}
			return nil
		},
	}
}

func newPaletteShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <palette>",
		Short: "Show the colors of a palette",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, state, err := opts.load(cmd)
			if err != nil {
				return err
			}
			p, err := resolvePalette(state, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%d colors)\n", p.Name, len(p.Colors))
			names := application.Services().Names
			for _, c := range p.Colors {
				fmt.Fprintln(out, colorLine(c, colormath.FormatColor(c, state.Format, names)))
			}
			return nil
		},
	}
}

func newPaletteRenameCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <palette> <new name>",
		Short: "Rename a palette",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.update(cmd, func(_ *app.Application, state *session.State) (string, error) {
				p, err := resolvePalette(state, args[0])
				if err != nil {
					return "", err
				}
				oldName := p.Name
				if err := state.RenamePalette(p.ID, strings.Join(args[1:], " ")); err != nil {
					return "", err
				}
				renamed, _ := state.Palette(p.ID)
				return fmt.Sprintf("Renamed palette %s to %s", oldName, renamed.Name), nil
			})
		},
	}
}

func newPaletteDeleteCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <palette>",
		Aliases: []string{"rm"},
		Short:   "Delete a palette",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.update(cmd, func(_ *app.Application, state *session.State) (string, error) {
				p, err := resolvePalette(state, args[0])
				if err != nil {
					return "", err
				}
				name := p.Name
				if err := state.DeletePalette(p.ID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Deleted palette %s", name), nil
			})
		},
	}
}

func newPaletteAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <palette> <#RRGGBB>...",
		Short: "Append colors to a palette",
		Long:  `Appends colors to a palette. Colors already in the palette are skipped.`,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			colors := make([]string, 0, len(args)-1)
			for _, arg := range args[1:] {
				hex, err := parseColor(arg)
				if err != nil {
					return err
				}
				colors = append(colors, hex)
			}

			return opts.update(cmd, func(_ *app.Application, state *session.State) (string, error) {
				p, err := resolvePalette(state, args[0])
				if err != nil {
					return "", err
				}
				added := 0
				for _, hex := range colors {
					err := state.AddColor(p.ID, hex)
					if errors.Is(err, session.ErrDuplicateColor) {
						logging.Warn("CLI", "%s is already in %s", hex, p.Name)
						continue
					}
					if err != nil {
						return "", err
					}
					added++
				}
				return fmt.Sprintf("Added %d colors to %s", added, p.Name), nil
			})
		},
	}
}

func newPaletteRemoveCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <palette> <#RRGGBB>",
		Short: "Remove a color from a palette",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := parseColor(args[1])
			if err != nil {
				return err
			}
			return opts.update(cmd, func(_ *app.Application, state *session.State) (string, error) {
				p, err := resolvePalette(state, args[0])
				if err != nil {
					return "", err
				}
				if err := state.RemoveColor(p.ID, hex); err != nil {
					return "", fmt.Errorf("%s: %w", p.Name, err)
				}
				return fmt.Sprintf("Removed %s from %s", hex, p.Name), nil
			})
		},
	}
}

func newPaletteUseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "use <palette>",
		Short: "Make a palette the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.update(cmd, func(_ *app.Application, state *session.State) (string, error) {
				p, err := resolvePalette(state, args[0])
				if err != nil {
					return "", err
				}
				if err := state.SetActivePalette(p.ID); err != nil {
					return "", err
				}
				return fmt.Sprintf("Active palette: %s", p.Name), nil
			})
		},
	}
}
