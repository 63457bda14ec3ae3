package cmd

import (
	"github.com/spf13/cobra"
)

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive picker popup",
		Long: `Opens the picker popup. It shows the current color with its contrast
verdict and nearest name, the history, harmonies and palettes.

Press p to pick, f to change the format, c to copy and ? for every key.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := opts.open(cmd)
			if err != nil {
				return err
			}
			return application.RunTUI(cmd.Context())
		},
	}
}
