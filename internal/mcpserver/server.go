package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"colorpick/internal/store"
	"colorpick/pkg/colormath"
	"colorpick/pkg/logging"

	"github.com/mark3labs/mcp-go/server"
)

const serverName = "colorpick"

// StateSource provides read access to the persisted history and palettes.
type StateSource interface {
	Load() (store.Snapshot, error)
}

// Server exposes color tools over MCP.
type Server struct {
	mcp   *server.MCPServer
	state StateSource
	names colormath.NameFinder
}

// New builds the MCP server and registers every tool and resource. names may
// be nil, in which case name lookups report no match.
func New(version string, state StateSource, names colormath.NameFinder) *Server {
	s := &Server{
		state: state,
		names: names,
	}
	s.mcp = server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
	)

	tools := s.tools()
	logging.Debug("MCP", "Registering %d tools", len(tools))
	s.mcp.AddTools(tools...)
	s.mcp.AddResources(s.resources()...)
	return s
}

// ServeStdio speaks MCP over in/out until ctx is cancelled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	logging.Info("MCP", "Serving MCP over stdio")
	stdio := server.NewStdioServer(s.mcp)
	if err := stdio.Listen(ctx, in, out); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server failed: %w", err)
	}
	return nil
}

// ServeSSE serves MCP over HTTP server-sent events on addr until ctx is
// cancelled.
func (s *Server) ServeSSE(ctx context.Context, addr string) error {
	sseServer := server.NewSSEServer(
		s.mcp,
		server.WithBaseURL("http://"+addr),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(30*time.Second),
	)

	errCh := make(chan error, 1)
	go func() {
		logging.Info("MCP", "Serving MCP over SSE on %s", addr)
		errCh <- sseServer.Start(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("sse server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("MCP", err, "Error shutting down SSE server")
		}
		return nil
	}
}
