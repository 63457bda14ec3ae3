package cmd

import (
	"fmt"

	"colorpick/internal/app"
	"colorpick/internal/session"
	"colorpick/pkg/colormath"

	"github.com/spf13/cobra"
)

func newFormatCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "format [format]",
		Short: "Show or set the output format",
		Long: fmt.Sprintf(`Without an argument prints the format used by pick, convert and the
popup. With an argument saves it as the new default.

Formats: %s`, formatNames()),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, state, err := opts.load(cmd)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), state.Format)
				return nil
			}

			format, ok := colormath.ParseFormat(args[0])
			if !ok {
				return fmt.Errorf("unknown format %q, want one of %s", args[0], formatNames())
			}
			return opts.update(cmd, func(_ *app.Application, state *session.State) (string, error) {
				state.SetFormat(format)
				return fmt.Sprintf("Format set to %s", format), nil
			})
		},
	}
}
