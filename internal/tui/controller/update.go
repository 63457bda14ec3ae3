package controller

import (
	"errors"
	"fmt"
	"time"

	"colorpick/internal/sampler"
	"colorpick/internal/tui/model"
	"colorpick/internal/tui/view"
	"colorpick/pkg/logging"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	toastShort = 3 * time.Second
	toastLong  = 5 * time.Second
)

// mainControllerDispatch is the central message routing function for the
// popup. It updates the model and returns any follow-up commands.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg.(type) {
	case spinner.TickMsg, model.NewLogEntryMsg:
	default:
		LogDebug(m, controllerSubsystem, "Received msg: %T", msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.CancelSample()
			m.QuitApp = true
			m.CurrentAppMode = model.ModeQuitting
			return m, tea.Quit
		}
		switch m.CurrentAppMode {
		case model.ModePickInput, model.ModePaletteNameInput:
			return handleKeyMsgInputMode(m, msg)
		case model.ModeHelpOverlay, model.ModeLogOverlay, model.ModeExportOverlay:
			return handleKeyMsgOverlay(m, msg)
		default:
			return handleKeyMsgGlobal(m, msg)
		}

	case tea.WindowSizeMsg:
		m = handleWindowSizeMsg(m, msg)

	case model.SampleResultMsg:
		return handleSampleResultMsg(m, msg)

	case model.ClearStatusBarMsg:
		m.StatusBarMessage = ""
		m.StatusBarMessageType = model.StatusBarInfo
		m.StatusBarClearCancel = nil
		return m, nil

	case spinner.TickMsg:
		if !m.Sampling {
			return m, nil
		}
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case model.NewLogEntryMsg:
		m = handleNewLogEntry(m, msg)
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	default:
		switch m.CurrentAppMode {
		case model.ModePickInput, model.ModePaletteNameInput:
			m.Input, cmd = m.Input.Update(msg)
		case model.ModeLogOverlay:
			m.LogViewport, cmd = m.LogViewport.Update(msg)
		case model.ModeExportOverlay:
			m.ExportViewport, cmd = m.ExportViewport.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

// handleWindowSizeMsg records the terminal size and resizes the overlays.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) *model.Model {
	m.Width = msg.Width
	m.Height = msg.Height

	w, h := view.OverlayBodySize(msg.Width, msg.Height)
	m.LogViewport.Width = w
	m.LogViewport.Height = h
	m.ExportViewport.Width = w
	m.ExportViewport.Height = h
	return m
}

func refreshLogViewport(m *model.Model) {
	if !m.ActivityLogDirty && m.LogViewportLastWidth == m.LogViewport.Width {
		return
	}
	atBottom := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
	if m.CurrentAppMode != model.ModeLogOverlay || atBottom {
		m.LogViewport.GotoBottom()
	}
	m.LogViewportLastWidth = m.LogViewport.Width
	m.ActivityLogDirty = false
}

func handleNewLogEntry(m *model.Model, msg model.NewLogEntryMsg) *model.Model {
	entry := msg.Entry
	if entry.Level < logging.LevelInfo && !m.DebugMode {
		return m
	}

	logLine := fmt.Sprintf("%s [%s] [%s] %s",
		entry.Timestamp.Format("15:04:05.000"),
		entry.Level.String(),
		entry.Subsystem,
		entry.Message)
	if entry.Err != nil {
		logLine = fmt.Sprintf("%s -- Error: %v", logLine, entry.Err)
	}
	m.AddRawLineToActivityLog(logLine)
	return m
}

func handleSampleResultMsg(m *model.Model, msg model.SampleResultMsg) (*model.Model, tea.Cmd) {
	if !m.AcceptSample(msg) {
		LogDebug(m, controllerSubsystem, "Dropping result of superseded sample #%d", msg.Seq)
		return m, nil
	}
	if msg.Err != nil {
		if errors.Is(msg.Err, sampler.ErrCancelled) {
			return m, m.SetStatusMessage("Sample cancelled", model.StatusBarInfo, toastShort)
		}
		LogError(tuiSubsystem, msg.Err, "Sampling failed")
		return m, m.SetStatusMessage(msg.Err.Error(), model.StatusBarError, toastLong)
	}
	return m, applyColor(m, msg.Hex, m.AutoCopy, "Picked")
}
