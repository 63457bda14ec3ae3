package app

import (
	"context"
	"io"
	"strings"

	"colorpick/internal/config"
	"colorpick/internal/mcpserver"
	"colorpick/internal/tui/controller"
	"colorpick/internal/tui/design"
	"colorpick/internal/tui/model"
	"colorpick/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// For mocking in tests
var hasDarkBackground = lipgloss.HasDarkBackground

// darkTheme resolves the configured theme. auto asks the terminal.
func darkTheme(theme string) bool {
	switch strings.ToLower(theme) {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return hasDarkBackground()
	}
}

// RunTUI runs the interactive picker popup until the user quits or ctx is
// cancelled.
func (a *Application) RunTUI(ctx context.Context) error {
	logging.Info("CLI", "Starting TUI mode...")

	state, err := a.LoadState()
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Failed to load state")
		return err
	}

	design.Initialize(darkTheme(a.config.Settings.Theme))

	// Switch logging to channel-based system for TUI integration
	logChan := logging.InitForTUI(logLevel(a.config.Debug, a.config.Settings.LogLevel))
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(model.TUIConfig{
		State:      state,
		Names:      a.services.Names,
		Store:      a.services.Store,
		Copy:       a.Copy,
		NewSampler: a.NewSampler,
		AutoCopy:   a.config.Settings.CopyOnPick(),
		DebugMode:  a.config.Debug,
		Version:    a.config.Version,
	}, logChan, tea.WithContext(ctx))
	if err != nil {
		logging.Error("TUI-Lifecycle", err, "Error creating TUI program")
		return err
	}

	if _, err := p.Run(); err != nil {
		logging.Error("TUI-Lifecycle", err, "Error running TUI program")
		return err
	}
	logging.Info("TUI-Lifecycle", "TUI exited.")
	return nil
}

// NewMCPServer builds the MCP server over the state store.
func (a *Application) NewMCPServer() *mcpserver.Server {
	return mcpserver.New(a.config.Version, a.services.Store, a.services.Names)
}

// RunMCP serves MCP over stdio, or over SSE when sseAddr is set.
func (a *Application) RunMCP(ctx context.Context, sseAddr string, in io.Reader, out io.Writer) error {
	srv := a.NewMCPServer()
	if sseAddr != "" {
		return srv.ServeSSE(ctx, sseAddr)
	}
	return srv.ServeStdio(ctx, in, out)
}
