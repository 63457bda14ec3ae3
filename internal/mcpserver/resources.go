package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"colorpick/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	historyURI  = "colorpick://history"
	palettesURI = "colorpick://palettes"
)

type palettesDocument struct {
	Palettes      []store.Palette `json:"palettes"`
	ActivePalette string          `json:"activePalette,omitempty"`
}

// paletteView drops an active id that no longer names a palette.
func paletteView(snap store.Snapshot) palettesDocument {
	doc := palettesDocument{Palettes: snap.Palettes}
	if doc.Palettes == nil {
		doc.Palettes = []store.Palette{}
	}
	for _, p := range doc.Palettes {
		if p.ID == snap.ActivePalette {
			doc.ActivePalette = p.ID
		}
	}
	return doc
}

func (s *Server) resources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(historyURI, "Color history",
				mcp.WithResourceDescription("Recently picked colors, most recent first"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				snap, err := s.state.Load()
				if err != nil {
					return nil, fmt.Errorf("failed to load history: %w", err)
				}
				history := snap.History
				if history == nil {
					history = []string{}
				}
				return jsonResource(historyURI, history)
			},
		},
		{
			Resource: mcp.NewResource(palettesURI, "Palettes",
				mcp.WithResourceDescription("Saved palettes and the active palette id"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
				snap, err := s.state.Load()
				if err != nil {
					return nil, fmt.Errorf("failed to load palettes: %w", err)
				}
				return jsonResource(palettesURI, paletteView(snap))
			},
		},
	}
}

func jsonResource(uri string, v interface{}) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
