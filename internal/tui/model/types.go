package model

import (
	"context"
	"time"

	"colorpick/internal/export"
	"colorpick/internal/sampler"
	"colorpick/internal/session"
	"colorpick/internal/store"
	"colorpick/pkg/colormath"
	"colorpick/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppMode defines the current high-level state of the TUI.
type AppMode int

const (
	ModeMain AppMode = iota
	ModePickInput
	ModePaletteNameInput
	ModeExportOverlay
	ModeLogOverlay
	ModeHelpOverlay
	ModeQuitting
)

// String returns a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModePickInput:
		return "PickInput"
	case ModePaletteNameInput:
		return "PaletteNameInput"
	case ModeExportOverlay:
		return "ExportOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// PanelKey names a focusable panel.
type PanelKey int

const (
	PanelHistory PanelKey = iota
	PanelHarmonies
	PanelPalettes
	PanelPaletteColors
)

// PanelOrder is the tab order.
var PanelOrder = []PanelKey{PanelHistory, PanelHarmonies, PanelPalettes, PanelPaletteColors}

func (p PanelKey) String() string {
	switch p {
	case PanelHistory:
		return "History"
	case PanelHarmonies:
		return "Harmonies"
	case PanelPalettes:
		return "Palettes"
	case PanelPaletteColors:
		return "Palette colors"
	default:
		return "Unknown"
	}
}

// MessageType defines the type of message for the status bar.
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// MaxActivityLogLines caps the log overlay buffer.
const MaxActivityLogLines = 1000

// AdjustStep is the lightness/saturation change per key press, in points.
const AdjustStep = 5.0

// Saver persists a snapshot. *store.FileStore satisfies it.
type Saver interface {
	Save(snap store.Snapshot) error
}

// SamplerFactory turns user input into a sampler.
type SamplerFactory func(spec string) (sampler.Sampler, error)

// TUIConfig carries the collaborators the popup works with. Only State is
// required; nil collaborators disable the matching feature.
type TUIConfig struct {
	State      *session.State
	Names      colormath.NameFinder
	Store      Saver
	Copy       func(text string) error
	NewSampler SamplerFactory
	AutoCopy   bool
	DebugMode  bool
	Version    string
}

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Pick          key.Binding
	Esc           key.Binding
	NextFormat    key.Binding
	PrevFormat    key.Binding
	Copy          key.Binding
	Tab           key.Binding
	ShiftTab      key.Binding
	Left          key.Binding
	Right         key.Binding
	Enter         key.Binding
	Harmony       key.Binding
	Lighter       key.Binding
	Darker        key.Binding
	MoreSaturated key.Binding
	LessSaturated key.Binding
	NewPalette    key.Binding
	AddToPalette  key.Binding
	Delete        key.Binding
	ClearHistory  key.Binding
	Export        key.Binding
	ExportCopy    key.Binding
	ToggleLog     key.Binding
	ToggleDark    key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.NextFormat, k.Copy, k.Tab, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Pick, k.Esc, k.Copy, k.NextFormat, k.PrevFormat},
		{k.Tab, k.ShiftTab, k.Left, k.Right, k.Enter},
		{k.Harmony, k.Lighter, k.Darker, k.MoreSaturated, k.LessSaturated},
		{k.NewPalette, k.AddToPalette, k.Delete, k.ClearHistory},
		{k.Export, k.ExportCopy, k.ToggleLog, k.ToggleDark, k.Help, k.Quit},
	}
}

// Model holds the popup state. The domain data lives in State; everything
// else here is presentation.
type Model struct {
	Width  int
	Height int

	QuitApp        bool
	CurrentAppMode AppMode
	LastAppMode    AppMode
	FocusedPanel   PanelKey
	DebugMode      bool
	Version        string

	State      *session.State
	Names      colormath.NameFinder
	Store      Saver
	Copy       func(text string) error
	NewSampler SamplerFactory
	AutoCopy   bool

	// Per-panel selection
	HistoryCursor      int
	HarmonyCursor      int
	PaletteCursor      int
	PaletteColorCursor int
	HarmonyKind        colormath.HarmonyKind

	// Export overlay
	ExportFormat   export.Format
	ExportContent  string
	ExportViewport viewport.Model

	// Async sampling. SampleSeq tags each run so late results from a
	// cancelled run are dropped.
	Sampling     bool
	SampleSeq    int
	SampleCancel context.CancelFunc

	Input   textinput.Model
	Spinner spinner.Model
	Keys    KeyMap
	Help    help.Model

	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewport          viewport.Model
	LogViewportLastWidth int
	LogChannel           <-chan logging.LogEntry

	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}
}

// SetStatusMessage updates the status bar message and schedules its removal.
// A newer message cancels the pending clear of an older one.
func (m *Model) SetStatusMessage(message string, msgType MessageType, clearAfter time.Duration) tea.Cmd {
	m.StatusBarMessage = message
	m.StatusBarMessageType = msgType

	if m.StatusBarClearCancel != nil {
		close(m.StatusBarClearCancel)
	}

	m.StatusBarClearCancel = make(chan struct{})
	captured := m.StatusBarClearCancel

	return tea.Tick(clearAfter, func(t time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return ClearStatusBarMsg{}
		}
	})
}

// AddRawLineToActivityLog appends a formatted line, trimming the buffer to
// MaxActivityLogLines.
func (m *Model) AddRawLineToActivityLog(entry string) {
	m.ActivityLog = append(m.ActivityLog, entry)
	if len(m.ActivityLog) > MaxActivityLogLines {
		m.ActivityLog = m.ActivityLog[len(m.ActivityLog)-MaxActivityLogLines:]
	}
	m.ActivityLogDirty = true
}
