package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/mark3labs/eventify/internal/activity"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/mcp-go/server"
)

// Options configures how the server formats its answers.
type Options struct {
	BaseURL  string
	Location *time.Location
	Now      func() time.Time // Defaults to time.Now
}

// Server exposes the event catalog as MCP tools. It can serve over stdio for
// clients that spawn eventify, or over streamable HTTP on a local port.
type Server struct {
	catalog   *catalog.Catalog
	activity  *activity.Store // nil disables the rsvp tool
	opts      Options
	mcpServer *server.MCPServer
	stdServer *http.Server
	port      int
	mu        sync.Mutex
}

// New creates a server over c. The MCP tools are registered immediately;
// nothing listens until Start or ServeStdio is called.
func New(c *catalog.Catalog, store *activity.Store, opts Options) *Server {
	if opts.BaseURL == "" {
		opts.BaseURL = catalog.DefaultBaseURL
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		catalog:  c,
		activity: store,
		opts:     opts,
		mcpServer: server.NewMCPServer(
			"eventify",
			"1.0.0",
			server.WithToolCapabilities(true),
		),
	}
	s.registerTools()
	return s
}

// ServeStdio blocks serving MCP over stdin/stdout.
func (s *Server) ServeStdio() error {
	logger.Debug("Serving MCP over stdio")
	return server.ServeStdio(s.mcpServer)
}

// Start starts the MCP HTTP server on addr, or on a random local port when
// addr is empty. Returns the bound port.
func (s *Server) Start(ctx context.Context, addr string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}
	if addr == "" {
		addr = "127.0.0.1:0"
	}

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return 0, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mux.Handle("/mcp", server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	))
	s.stdServer = &http.Server{Handler: mux}

	logger.Debug("Starting MCP server on port %d", s.port)

	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	return s.port, nil
}

// Stop stops the HTTP server if it is running.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil
	}

	logger.Debug("Stopping MCP server")
	if err := s.stdServer.Shutdown(context.Background()); err != nil {
		logger.Warn("Error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}
	s.stdServer = nil
	return nil
}

// URL returns the HTTP URL for the MCP endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
