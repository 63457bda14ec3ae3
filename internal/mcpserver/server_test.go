package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"colorpick/internal/colornames"
	"colorpick/internal/store"
	"colorpick/pkg/colormath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeState struct {
	snap store.Snapshot
	err  error
}

func (f fakeState) Load() (store.Snapshot, error) { return f.snap, f.err }

func newTestServer(state StateSource) *Server {
	return New("test", state, colornames.NewFinder(colornames.Tailwind()))
}

func call(t *testing.T, handler server.ToolHandlerFunc, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	result, err := handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Arguments: args},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)
	return result
}

func text(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	content, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "Expected TextContent")
	return content.Text
}

func TestToolsRegistered(t *testing.T) {
	s := newTestServer(fakeState{})
	names := make(map[string]bool)
	for _, tool := range s.tools() {
		names[tool.Tool.Name] = true
	}

	for _, want := range []string{
		"color_format", "color_convert_all", "color_contrast", "color_harmony",
		"color_adjust", "color_name", "history_get", "palette_list", "export_colors",
	} {
		assert.True(t, names[want], "missing tool %s", want)
	}
}

func TestHandleFormat(t *testing.T) {
	s := newTestServer(fakeState{})

	tests := []struct {
		name    string
		args    map[string]interface{}
		want    string
		isError bool
	}{
		{"rgb", map[string]interface{}{"hex": "#000000", "format": "rgb"}, "rgb(0, 0, 0)", false},
		{"tailwind", map[string]interface{}{"hex": "ef4444", "format": "tailwind"}, "red-500", false},
		{"bad hex", map[string]interface{}{"hex": "#12", "format": "rgb"}, "", true},
		{"bad format", map[string]interface{}{"hex": "#000000", "format": "cmyk"}, "", true},
		{"missing hex", map[string]interface{}{"format": "rgb"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := call(t, s.handleFormat, tt.args)
			assert.Equal(t, tt.isError, result.IsError)
			if !tt.isError {
				assert.Equal(t, tt.want, text(t, result))
			}
		})
	}
}

func TestHandleConvertAll(t *testing.T) {
	s := newTestServer(fakeState{})
	result := call(t, s.handleConvertAll, map[string]interface{}{"hex": "#FF5733"})
	require.False(t, result.IsError)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &got))
	assert.Equal(t, "hsl(11, 100%, 60%)", got["hsl"])
	assert.Equal(t, "#FF5733FF", got["hex8"])
	assert.Len(t, got, len(colormath.Formats))
}

func TestHandleContrast(t *testing.T) {
	s := newTestServer(fakeState{})
	result := call(t, s.handleContrast, map[string]interface{}{"hex": "#000000"})

	var report colormath.ContrastReport
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &report))
	assert.Equal(t, colormath.White, report.TextColor)
	assert.InDelta(t, 21.0, report.Best, 1e-9)
	assert.True(t, report.AAA)
}

func TestHandleHarmony(t *testing.T) {
	s := newTestServer(fakeState{})

	result := call(t, s.handleHarmony, map[string]interface{}{"hex": "#FF0000"})
	assert.Contains(t, text(t, result), "#00FFFF")

	result = call(t, s.handleHarmony, map[string]interface{}{"hex": "#FF0000", "kind": "triadic"})
	var got struct {
		Kind   string   `json:"kind"`
		Colors []string `json:"colors"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &got))
	assert.Equal(t, "triadic", got.Kind)
	assert.Equal(t, []string{"#FF0000", "#00FF00", "#0000FF"}, got.Colors)

	result = call(t, s.handleHarmony, map[string]interface{}{"hex": "#FF0000", "kind": "square"})
	assert.True(t, result.IsError)
}

func TestHandleAdjust(t *testing.T) {
	s := newTestServer(fakeState{})

	result := call(t, s.handleAdjust, map[string]interface{}{"hex": "#FF0000", "lightness": -25.0})
	assert.Equal(t, "#800000", text(t, result))

	result = call(t, s.handleAdjust, map[string]interface{}{"hex": "#FF5733"})
	assert.Equal(t, "#FF5733", text(t, result))
}

func TestHandleName(t *testing.T) {
	s := newTestServer(fakeState{})
	result := call(t, s.handleName, map[string]interface{}{"hex": "#3B82F6"})

	var match colormath.Match
	require.NoError(t, json.Unmarshal([]byte(text(t, result)), &match))
	assert.Equal(t, "blue-500", match.Name)
	assert.True(t, match.Exact)

	noNames := New("test", fakeState{}, nil)
	result = call(t, noNames.handleName, map[string]interface{}{"hex": "#3B82F6"})
	assert.True(t, result.IsError)
}

func TestHandleHistoryAndPalettes(t *testing.T) {
	s := newTestServer(fakeState{snap: store.Snapshot{
		History:       []string{"#AABBCC"},
		Palettes:      []store.Palette{{ID: "p1", Name: "Brand", Colors: []string{"#FF0000"}}},
		ActivePalette: "gone",
	}})

	result := call(t, s.handleHistory, nil)
	assert.JSONEq(t, `{"history": ["#AABBCC"]}`, text(t, result))

	result = call(t, s.handlePaletteList, nil)
	assert.JSONEq(t, `{"palettes": [{"id": "p1", "name": "Brand", "colors": ["#FF0000"]}]}`, text(t, result))
}

func TestHandleHistory_Empty(t *testing.T) {
	s := newTestServer(fakeState{})
	result := call(t, s.handleHistory, nil)
	assert.JSONEq(t, `{"history": []}`, text(t, result))
}

func TestHandleHistory_LoadError(t *testing.T) {
	s := newTestServer(fakeState{err: errors.New("disk gone")})

	result := call(t, s.handleHistory, nil)
	assert.True(t, result.IsError)

	result = call(t, s.handlePaletteList, nil)
	assert.True(t, result.IsError)
}

func TestHandleExport(t *testing.T) {
	s := newTestServer(fakeState{})

	result := call(t, s.handleExport, map[string]interface{}{
		"colors": "#FF0000, #00ff00",
		"format": "scss",
		"name":   "brand",
	})
	require.False(t, result.IsError)
	assert.Equal(t, "$brand-1: #FF0000;\n$brand-2: #00FF00;\n", text(t, result))

	result = call(t, s.handleExport, map[string]interface{}{"colors": "#FF0000", "format": "less"})
	assert.True(t, result.IsError)
	assert.True(t, strings.Contains(text(t, result), "unknown export format"))
}

func TestResources(t *testing.T) {
	s := newTestServer(fakeState{snap: store.Snapshot{History: []string{"#123456"}}})
	resources := s.resources()
	require.Len(t, resources, 2)

	contents, err := resources[0].Handler(context.Background(), mcp.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)
	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, historyURI, text.URI)
	assert.JSONEq(t, `["#123456"]`, text.Text)
}
