package model

import (
	"errors"

	"colorpick/internal/export"
	"colorpick/pkg/colormath"
	"colorpick/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrNoState is returned when the popup is started without a session.
var ErrNoState = errors.New("tui requires a session state")

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pick: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pick color"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		NextFormat: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "next format"),
		),
		PrevFormat: key.NewBinding(
			key.WithKeys("F"),
			key.WithHelp("F", "previous format"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy value"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next panel"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev panel"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "move right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select/activate"),
		),
		Harmony: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "harmony mode"),
		),
		Lighter: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "lighter"),
		),
		Darker: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "darker"),
		),
		MoreSaturated: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "saturate"),
		),
		LessSaturated: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "desaturate"),
		),
		NewPalette: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new palette"),
		),
		AddToPalette: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to palette"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear history"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export"),
		),
		ExportCopy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy export"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		ToggleDark: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "toggle dark/light mode"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// InitializeModel creates the popup model. logChannel may be nil when logs
// are not routed to the TUI.
func InitializeModel(cfg TUIConfig, logChannel <-chan logging.LogEntry) (*Model, error) {
	if cfg.State == nil {
		return nil, ErrNoState
	}

	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 40

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	m := &Model{
		CurrentAppMode: ModeMain,
		LastAppMode:    ModeMain,
		FocusedPanel:   PanelHistory,
		DebugMode:      cfg.DebugMode,
		Version:        cfg.Version,

		State:      cfg.State,
		Names:      cfg.Names,
		Store:      cfg.Store,
		Copy:       cfg.Copy,
		NewSampler: cfg.NewSampler,
		AutoCopy:   cfg.AutoCopy,

		HarmonyKind:  colormath.HarmonyComplementary,
		ExportFormat: export.FormatJSON,

		Input:          ti,
		Spinner:        s,
		Keys:           DefaultKeyMap(),
		Help:           help.New(),
		LogViewport:    viewport.New(80, 20),
		ExportViewport: viewport.New(80, 20),
		LogChannel:     logChannel,
		ActivityLog:    []string{},
	}

	if active, ok := m.State.ActivePalette(); ok {
		m.PaletteCursor = m.paletteIndex(active.ID)
	}
	return m, nil
}

// Init implements tea.Model and starts listening for log entries.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.LogChannel != nil {
		cmds = append(cmds, ListenForLogEntriesCmd(m.LogChannel))
	}
	cmds = append(cmds, textinput.Blink)
	return tea.Batch(cmds...)
}
