package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"colorpick/internal/app"
	"colorpick/internal/session"

	"github.com/spf13/cobra"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	statePath  string
	debug      bool
}

// open bootstraps the application from the persistent flags.
func (o *rootOptions) open(cmd *cobra.Command) (*app.Application, error) {
	cfg := app.NewConfig(o.debug, o.configPath, o.statePath, cmd.Root().Version)
	application, err := app.NewApplication(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

// load bootstraps the application and reads the saved session.
func (o *rootOptions) load(cmd *cobra.Command) (*app.Application, *session.State, error) {
	application, err := o.open(cmd)
	if err != nil {
		return nil, nil, err
	}
	state, err := application.LoadState()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load state: %w", err)
	}
	return application, state, nil
}

const versionTemplate = `{{printf "colorpick version %s\n" .Version}}`

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "colorpick",
		Short: "Pick, convert and collect colors from the terminal",
		Long: `colorpick samples colors from hex values or image files and converts
them between CSS notations. It checks WCAG contrast, derives harmonies, and
keeps a history plus named palettes that export to JSON, CSS, SCSS, Tailwind
or YAML.

Run 'colorpick tui' for the interactive picker popup.`,
		// SilenceUsage is set to true to prevent printing usage message on errors
		// handled by us (e.g. invalid colors, unreadable images)
		SilenceUsage: true,
	}
	cmd.SetVersionTemplate(versionTemplate)

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file, replaces the layered ~/.config/colorpick and ./.colorpick lookup")
	cmd.PersistentFlags().StringVar(&opts.statePath, "state", "", "State file (default ~/.config/colorpick/state.yaml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newVersionCmd(),
		newSelfUpdateCmd(),
		newPickCmd(opts),
		newConvertCmd(opts),
		newContrastCmd(),
		newHarmonyCmd(),
		newAdjustCmd(),
		newNameCmd(opts),
		newHistoryCmd(opts),
		newPaletteCmd(opts),
		newExportCmd(opts),
		newFormatCmd(opts),
		newTUICmd(opts),
		newMCPCmd(opts),
	)
	return cmd
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}
