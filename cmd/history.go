package cmd

import (
	"fmt"

	"colorpick/pkg/colormath"

	"github.com/spf13/cobra"
)

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	list := func(cmd *cobra.Command, args []string) error {
		application, state, err := opts.load(cmd)
		if err != nil {
			return err
		}
		if len(state.History) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No colors picked yet.")
			return nil
		}
		names := application.Services().Names
		for _, hex := range state.History {
			fmt.Fprintln(cmd.OutOrStdout(), colorLine(hex, colormath.FormatColor(hex, state.Format, names)))
		}
		return nil
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear recently picked colors",
		Long:  `Shows the recently picked colors, most recent first. The history keeps the last 12 colors.`,
		Args:  cobra.NoArgs,
		RunE:  list,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show recently picked colors",
		Args:  cobra.NoArgs,
		RunE:  list,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget every recently picked color",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, state, err := opts.load(cmd)
			if err != nil {
				return err
			}
			state.ClearHistory()
			if err := application.SaveState(state); err != nil {
				return fmt.Errorf("failed to save state: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})
	return cmd
}
