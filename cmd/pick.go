package cmd

import (
	"fmt"

	"colorpick/internal/app"
	"colorpick/pkg/logging"

	"github.com/spf13/cobra"
)

// For mocking in tests
var copyToClipboard = func(a *app.Application, text string) error {
	return a.Copy(text)
}

func newPickCmd(opts *rootOptions) *cobra.Command {
	var noCopy bool

	cmd := &cobra.Command{
		Use:   "pick <#RRGGBB | image@x,y[,radius]>",
		Short: "Sample a color and add it to the history",
		Long: `Samples a color and records it as the most recent history entry.

The source is either a literal #RRGGBB value or an image file with pixel
coordinates, for example screenshot.png@120,48. An optional radius averages
the square around the pixel. PNG, JPEG, GIF, BMP, TIFF and WebP are read.

The value is printed in the last used format and copied to the clipboard
unless --no-copy is given or autoCopy is disabled in the config.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application, state, err := opts.load(cmd)
			if err != nil {
				return err
			}

			s, err := application.NewSampler(args[0])
			if err != nil {
				return err
			}
			hex, err := s.Sample(cmd.Context())
			if err != nil {
				return err
			}

			state.Pick(hex)
			if err := application.SaveState(state); err != nil {
				return fmt.Errorf("failed to save state: %w", err)
			}
			logging.Debug("CLI", "Picked %s from %q", hex, args[0])

			value := state.CurrentValue(application.Services().Names)
			fmt.Fprintln(cmd.OutOrStdout(), value)

			if noCopy || !application.Config().Settings.CopyOnPick() {
				return nil
			}
			if err := copyToClipboard(application, value); err != nil {
				logging.Warn("CLI", "Could not copy to clipboard: %v", err)
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%s copied to clipboard\n", swatch(hex))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCopy, "no-copy", false, "Do not copy the value to the clipboard")
	return cmd
}
