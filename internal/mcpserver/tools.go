package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"colorpick/internal/export"
	"colorpick/pkg/colormath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func formatNames() []string {
	out := make([]string, len(colormath.Formats))
	for i, f := range colormath.Formats {
		out[i] = string(f)
	}
	return out
}

func harmonyNames() []string {
	out := make([]string, len(colormath.HarmonyKinds))
	for i, k := range colormath.HarmonyKinds {
		out[i] = string(k)
	}
	return out
}

func exportNames() []string {
	out := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		out[i] = string(f)
	}
	return out
}

func hexArg() mcp.ToolOption {
	return mcp.WithString("hex",
		mcp.Required(),
		mcp.Description("Color as #RRGGBB (the # is optional)"),
	)
}

func (s *Server) tools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("color_format",
				mcp.WithDescription("Render a color in one textual format"),
				hexArg(),
				mcp.WithString("format",
					mcp.Required(),
					mcp.Description("Output format"),
					mcp.Enum(formatNames()...),
				),
			),
			Handler: s.handleFormat,
		},
		{
			Tool: mcp.NewTool("color_convert_all",
				mcp.WithDescription("Render a color in every supported format"),
				hexArg(),
			),
			Handler: s.handleConvertAll,
		},
		{
			Tool: mcp.NewTool("color_contrast",
				mcp.WithDescription("WCAG contrast of a color against white and black, with AA/AAA classification"),
				hexArg(),
			),
			Handler: s.handleContrast,
		},
		{
			Tool: mcp.NewTool("color_harmony",
				mcp.WithDescription("Derive harmony colors by rotating the hue"),
				hexArg(),
				mcp.WithString("kind",
					mcp.Description("Harmony kind, defaults to complementary"),
					mcp.Enum(harmonyNames()...),
				),
			),
			Handler: s.handleHarmony,
		},
		{
			Tool: mcp.NewTool("color_adjust",
				mcp.WithDescription("Shift lightness and saturation by percentage points"),
				hexArg(),
				mcp.WithNumber("lightness", mcp.Description("Lightness delta, -100 to 100")),
				mcp.WithNumber("saturation", mcp.Description("Saturation delta, -100 to 100")),
			),
			Handler: s.handleAdjust,
		},
		{
			Tool: mcp.NewTool("color_name",
				mcp.WithDescription("Closest known color name"),
				hexArg(),
			),
			Handler: s.handleName,
		},
		{
			Tool: mcp.NewTool("history_get",
				mcp.WithDescription("Recently picked colors, most recent first"),
			),
			Handler: s.handleHistory,
		},
		{
			Tool: mcp.NewTool("palette_list",
				mcp.WithDescription("Saved palettes and the active palette id"),
			),
			Handler: s.handlePaletteList,
		},
		{
			Tool: mcp.NewTool("export_colors",
				mcp.WithDescription("Export a list of colors as JSON, CSS, SCSS, Tailwind config or YAML"),
				mcp.WithString("colors",
					mcp.Required(),
					mcp.Description("Comma separated #RRGGBB colors"),
				),
				mcp.WithString("format",
					mcp.Required(),
					mcp.Description("Export format"),
					mcp.Enum(exportNames()...),
				),
				mcp.WithString("name", mcp.Description("Set name, used as the variable prefix")),
			),
			Handler: s.handleExport,
		},
	}
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func requireHex(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	raw, err := req.RequireString("hex")
	if err != nil {
		return "", mcp.NewToolResultError(err.Error())
	}
	hex, ok := colormath.Normalize(strings.TrimSpace(raw))
	if !ok {
		return "", mcp.NewToolResultError(fmt.Sprintf("%q is not a #RRGGBB color", raw))
	}
	return hex, nil
}

func (s *Server) handleFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireHex(req)
	if errResult != nil {
		return errResult, nil
	}
	raw, err := req.RequireString("format")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, ok := colormath.ParseFormat(raw)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown format %q", raw)), nil
	}
	return mcp.NewToolResultText(colormath.FormatColor(hex, f, s.names)), nil
}

func (s *Server) handleConvertAll(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireHex(req)
	if errResult != nil {
		return errResult, nil
	}
	return jsonResult(colormath.FormatAll(hex, s.names))
}

func (s *Server) handleContrast(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireHex(req)
	if errResult != nil {
		return errResult, nil
	}
	report, _ := colormath.CheckContrast(hex)
	return jsonResult(report)
}

func (s *Server) handleHarmony(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireHex(req)
	if errResult != nil {
		return errResult, nil
	}
	kind := colormath.HarmonyComplementary
	if raw := req.GetString("kind", ""); raw != "" {
		k, ok := colormath.ParseHarmonyKind(raw)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown harmony kind %q", raw)), nil
		}
		kind = k
	}
	colors, _ := colormath.Harmony(kind, hex)
	return jsonResult(map[string]interface{}{
		"kind":   kind,
		"colors": colors,
	})
}

func (s *Server) handleAdjust(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireHex(req)
	if errResult != nil {
		return errResult, nil
	}
	adjusted, _ := colormath.Adjust(hex, req.GetFloat("lightness", 0), req.GetFloat("saturation", 0))
	return mcp.NewToolResultText(adjusted), nil
}

func (s *Server) handleName(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	hex, errResult := requireHex(req)
	if errResult != nil {
		return errResult, nil
	}
	if s.names == nil {
		return mcp.NewToolResultError("no color name catalog configured"), nil
	}
	match, ok := s.names.FindClosest(hex)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no name found for %s", hex)), nil
	}
	return jsonResult(match)
}

func (s *Server) handleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.state.Load()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load history: %v", err)), nil
	}
	history := snap.History
	if history == nil {
		history = []string{}
	}
	return jsonResult(map[string]interface{}{"history": history})
}

func (s *Server) handlePaletteList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snap, err := s.state.Load()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load palettes: %v", err)), nil
	}
	return jsonResult(paletteView(snap))
}

func (s *Server) handleExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("colors")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	formatRaw, err := req.RequireString("format")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, err := export.ParseFormat(formatRaw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := export.Render(strings.Split(raw, ","), f, export.Options{Name: req.GetString("name", "")})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(out), nil
}
