package model

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"colorpick/internal/export"
	"colorpick/internal/sampler"
	"colorpick/internal/session"
	"colorpick/internal/store"
	"colorpick/pkg/colormath"
	"colorpick/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSaver struct {
	saved []store.Snapshot
	err   error
}

func (r *recordingSaver) Save(snap store.Snapshot) error {
	r.saved = append(r.saved, snap)
	return r.err
}

// blockingSampler waits for cancellation.
type blockingSampler struct{}

func (blockingSampler) Sample(ctx context.Context) (string, error) {
	<-ctx.Done()
	return "", fmt.Errorf("%w: %v", sampler.ErrCancelled, ctx.Err())
}

func newModel(t *testing.T, state *session.State) *Model {
	t.Helper()
	if state == nil {
		state = session.New(colormath.FormatHex)
	}
	m, err := InitializeModel(TUIConfig{
		State: state,
		NewSampler: func(spec string) (sampler.Sampler, error) {
			return sampler.FromSpec(spec, 0)
		},
	}, nil)
	require.NoError(t, err)
	return m
}

func TestInitializeModel(t *testing.T) {
	_, err := InitializeModel(TUIConfig{}, nil)
	assert.ErrorIs(t, err, ErrNoState)

	state := session.New(colormath.FormatRGB)
	_, err = state.CreatePalette("first")
	require.NoError(t, err)
	second, err := state.CreatePalette("second")
	require.NoError(t, err)
	require.NoError(t, state.SetActivePalette(second.ID))

	m := newModel(t, state)
	assert.Equal(t, ModeMain, m.CurrentAppMode)
	assert.Equal(t, PanelHistory, m.FocusedPanel)
	assert.Equal(t, 1, m.PaletteCursor, "cursor starts on the active palette")
	assert.Equal(t, colormath.HarmonyComplementary, m.HarmonyKind)
	assert.Equal(t, export.FormatJSON, m.ExportFormat)
}

func TestAppMode_String(t *testing.T) {
	assert.Equal(t, "Main", ModeMain.String())
	assert.Equal(t, "ExportOverlay", ModeExportOverlay.String())
	assert.Equal(t, "Unknown", AppMode(99).String())
	assert.Equal(t, "Palette colors", PanelPaletteColors.String())
}

func TestCycleFocus(t *testing.T) {
	m := newModel(t, nil)

	m.CycleFocus(1)
	assert.Equal(t, PanelHarmonies, m.FocusedPanel)
	m.CycleFocus(-1)
	m.CycleFocus(-1)
	assert.Equal(t, PanelPaletteColors, m.FocusedPanel, "wraps backwards")
	m.CycleFocus(1)
	assert.Equal(t, PanelHistory, m.FocusedPanel, "wraps forwards")
}

func TestMoveCursor(t *testing.T) {
	m := newModel(t, nil)
	for _, c := range []string{"#111111", "#222222", "#333333"} {
		m.State.Pick(c)
	}

	m.MoveCursor(1)
	assert.Equal(t, 1, m.HistoryCursor)
	m.MoveCursor(-2)
	assert.Equal(t, 2, m.HistoryCursor)

	m.FocusedPanel = PanelHarmonies
	m.MoveCursor(1)
	assert.Equal(t, 1, m.HarmonyCursor)
	m.MoveCursor(1)
	assert.Equal(t, 0, m.HarmonyCursor, "complementary has two colors")

	m.FocusedPanel = PanelPalettes
	m.MoveCursor(1)
	assert.Equal(t, 0, m.PaletteCursor, "empty list stays at zero")
}

func TestClampCursors(t *testing.T) {
	m := newModel(t, nil)
	m.State.Pick("#111111")
	m.HistoryCursor = 5
	m.PaletteCursor = 3
	m.HarmonyCursor = -1

	m.ClampCursors()
	assert.Equal(t, 0, m.HistoryCursor)
	assert.Equal(t, 0, m.PaletteCursor)
	assert.Equal(t, 0, m.HarmonyCursor)
}

func TestHarmonies(t *testing.T) {
	m := newModel(t, nil)
	assert.Nil(t, m.Harmonies())

	m.State.Pick("#FF0000")
	m.HarmonyKind = colormath.HarmonyTriadic
	assert.Equal(t, []string{"#FF0000", "#00FF00", "#0000FF"}, m.Harmonies())
}

func TestPersist(t *testing.T) {
	m := newModel(t, nil)
	assert.NoError(t, m.Persist(), "no store is fine")

	saver := &recordingSaver{}
	m.Store = saver
	m.State.Pick("#ABCDEF")
	require.NoError(t, m.Persist())
	require.Len(t, saver.saved, 1)
	assert.Equal(t, []string{"#ABCDEF"}, saver.saved[0].History)

	saver.err = errors.New("read-only")
	assert.Error(t, m.Persist())
}

func TestExport(t *testing.T) {
	m := newModel(t, nil)
	m.State.Pick("#00FF00")
	m.State.Pick("#FF0000")
	m.ExportFormat = export.FormatSCSS

	require.NoError(t, m.RefreshExport())
	assert.Equal(t, "$history-1: #FF0000;\n$history-2: #00FF00;\n", m.ExportContent)

	p, err := m.State.CreatePalette("Brand")
	require.NoError(t, err)
	require.NoError(t, m.State.AddColor(p.ID, "#0000FF"))
	require.NoError(t, m.State.SetActivePalette(p.ID))
	require.NoError(t, m.RefreshExport())
	assert.Equal(t, "$brand-1: #0000FF;\n", m.ExportContent)
}

func TestNextExportFormat(t *testing.T) {
	m := newModel(t, nil)
	seen := map[export.Format]bool{}
	for range export.Formats {
		seen[m.ExportFormat] = true
		m.NextExportFormat()
	}
	assert.Len(t, seen, len(export.Formats))
	assert.Equal(t, export.FormatJSON, m.ExportFormat, "cycles back")
}

func TestStartSample(t *testing.T) {
	m := newModel(t, nil)

	cmd, err := m.StartSample("#ff5733")
	require.NoError(t, err)
	assert.True(t, m.Sampling)

	msg, ok := cmd().(SampleResultMsg)
	require.True(t, ok)
	assert.Equal(t, "#FF5733", msg.Hex)
	assert.True(t, m.AcceptSample(msg))
	assert.False(t, m.Sampling)
	assert.False(t, m.AcceptSample(msg), "a result is accepted once")

	_, err = m.StartSample("not a color")
	assert.ErrorIs(t, err, sampler.ErrInvalidSpec)
	assert.False(t, m.Sampling)

	m.NewSampler = nil
	_, err = m.StartSample("#000000")
	assert.ErrorIs(t, err, ErrNoSampler)
}

func TestCancelSample(t *testing.T) {
	m := newModel(t, nil)
	m.NewSampler = func(string) (sampler.Sampler, error) { return blockingSampler{}, nil }

	cmd, err := m.StartSample("anything")
	require.NoError(t, err)
	assert.True(t, m.CancelSample())
	assert.False(t, m.CancelSample(), "nothing left to cancel")

	msg := cmd().(SampleResultMsg)
	assert.ErrorIs(t, msg.Err, sampler.ErrCancelled)
	assert.False(t, m.AcceptSample(msg), "results of a cancelled run are dropped")
}

func TestStartSample_SupersedesRunning(t *testing.T) {
	m := newModel(t, nil)
	m.NewSampler = func(string) (sampler.Sampler, error) { return blockingSampler{}, nil }

	first, err := m.StartSample("a")
	require.NoError(t, err)
	_, err = m.StartSample("b")
	require.NoError(t, err)

	msg := first().(SampleResultMsg)
	assert.False(t, m.AcceptSample(msg))
	assert.True(t, m.Sampling, "second run still going")
}

func TestListenForLogEntriesCmd(t *testing.T) {
	assert.Nil(t, ListenForLogEntriesCmd(nil))

	ch := make(chan logging.LogEntry, 1)
	ch <- logging.LogEntry{Message: "hello"}
	msg := ListenForLogEntriesCmd(ch)()
	assert.Equal(t, NewLogEntryMsg{Entry: logging.LogEntry{Message: "hello"}}, msg)

	close(ch)
	assert.Nil(t, ListenForLogEntriesCmd(ch)())
}

func TestAddRawLineToActivityLog(t *testing.T) {
	m := newModel(t, nil)
	for i := 0; i < MaxActivityLogLines+5; i++ {
		m.AddRawLineToActivityLog(fmt.Sprintf("line %d", i))
	}
	assert.Len(t, m.ActivityLog, MaxActivityLogLines)
	assert.Equal(t, "line 5", m.ActivityLog[0])
	assert.True(t, m.ActivityLogDirty)
}

func TestSetStatusMessage(t *testing.T) {
	m := newModel(t, nil)

	cmd := m.SetStatusMessage("first", StatusBarInfo, time.Millisecond)
	require.NotNil(t, cmd)
	first := m.StatusBarClearCancel

	m.SetStatusMessage("second", StatusBarError, time.Millisecond)
	assert.Equal(t, "second", m.StatusBarMessage)
	assert.Equal(t, StatusBarError, m.StatusBarMessageType)

	select {
	case <-first:
	default:
		t.Fatal("older clear should be cancelled")
	}
	assert.Nil(t, cmd(), "cancelled clear produces no message")
}
