package view

import (
	"strings"
	"testing"

	"colorpick/internal/colornames"
	"colorpick/internal/session"
	"colorpick/internal/tui/model"
	"colorpick/pkg/colormath"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *model.Model {
	t.Helper()
	state := session.New(colormath.FormatRGB)
	m, err := model.InitializeModel(model.TUIConfig{
		State:   state,
		Names:   colornames.NewFinder(colornames.Tailwind()),
		Version: "v1.2.3",
	}, nil)
	require.NoError(t, err)
	m.Width = 100
	m.Height = 40
	return m
}

func TestRender_Empty(t *testing.T) {
	m := newTestModel(t)
	out := Render(m)

	assert.Contains(t, out, "colorpick")
	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "No color yet, press p to pick")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "History")
}

func TestRender_WithColor(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.State.Pick("#3B82F6"))

	out := Render(m)
	assert.Contains(t, out, "#3B82F6")
	assert.Contains(t, out, "rgb(59, 130, 246)")
	assert.Contains(t, out, "= blue-500")
	assert.Contains(t, out, "AA")
	assert.Contains(t, out, "complementary")
	assert.Contains(t, out, "1/1 #3B82F6", "focused history shows the selected color")
}

func TestRender_NearestName(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.State.Pick("#EE4545"))
	assert.Contains(t, Render(m), "≈ red-500")
}

func TestRender_Palettes(t *testing.T) {
	m := newTestModel(t)
	p, err := m.State.CreatePalette("Brand")
	require.NoError(t, err)
	require.NoError(t, m.State.AddColor(p.ID, "#FF0000"))
	require.NoError(t, m.State.SetActivePalette(p.ID))
	_, err = m.State.CreatePalette("Muted")
	require.NoError(t, err)

	m.FocusedPanel = model.PanelPalettes
	out := Render(m)
	assert.Contains(t, out, "[● Brand]")
	assert.Contains(t, out, "Muted")

	m.FocusedPanel = model.PanelPaletteColors
	assert.Contains(t, Render(m), "1/1 #FF0000")
}

func TestRender_InputAndStatus(t *testing.T) {
	m := newTestModel(t)
	m.CurrentAppMode = model.ModePickInput
	m.Input.Prompt = "Pick: "
	m.Input.SetValue("#abc")
	m.StatusBarMessage = "Copied #ABCDEF"
	m.StatusBarMessageType = model.StatusBarSuccess

	out := Render(m)
	assert.Contains(t, out, "Pick: ")
	assert.Contains(t, out, "Copied #ABCDEF")
}

func TestRender_Overlays(t *testing.T) {
	m := newTestModel(t)
	m.State.Pick("#FF0000")

	m.CurrentAppMode = model.ModeHelpOverlay
	out := Render(m)
	assert.Contains(t, out, "KEYBOARD SHORTCUTS")
	assert.Contains(t, out, "pick color")

	m.CurrentAppMode = model.ModeExportOverlay
	require.NoError(t, m.RefreshExport())
	out = Render(m)
	assert.Contains(t, out, "EXPORT JSON")
	assert.Contains(t, out, "#FF0000")

	m.CurrentAppMode = model.ModeLogOverlay
	assert.Contains(t, Render(m), "ACTIVITY LOG")

	m.CurrentAppMode = model.ModeQuitting
	assert.Empty(t, Render(m))
}

func TestRender_FitsWidth(t *testing.T) {
	m := newTestModel(t)
	for _, c := range []string{"#111111", "#222222", "#333333", "#444444"} {
		m.State.Pick(c)
	}
	for _, line := range strings.Split(Render(m), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), m.Width, "line too wide: %q", line)
	}
}

func TestRender_ZeroSize(t *testing.T) {
	m := newTestModel(t)
	m.Width, m.Height = 0, 0
	assert.NotPanics(t, func() { Render(m) })
}

func TestOverlayBodySize(t *testing.T) {
	w, h := OverlayBodySize(100, 40)
	assert.Equal(t, 94, w)
	assert.Equal(t, 34, h)

	w, h = OverlayBodySize(5, 2)
	assert.Equal(t, 10, w)
	assert.Equal(t, 3, h)
}

func TestPrepareLogContent(t *testing.T) {
	lines := []string{
		"12:00:00.000 [INFO] [TUI] Picked #FF0000",
		"12:00:01.000 [ERROR] [Store] disk full",
	}
	out := PrepareLogContent(lines, 80)
	assert.Contains(t, out, "Picked #FF0000")
	assert.Contains(t, out, "disk full")
	assert.Len(t, strings.Split(out, "\n"), 2)
}
