package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/mark3labs/eventify/internal/activity"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/config"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/eventify/internal/mcpserver"
	"github.com/mark3labs/eventify/internal/tui"
)

// Config holds configuration for the orchestrator.
type Config struct {
	Settings *config.Config   // Loaded configuration (defaults if nil)
	Catalog  *catalog.Catalog // Defaults to the fixture catalog
	DataDir  string           // Activity store and UI preferences
	Start    tui.Route        // First page shown
	MCPAddr  string           // Serve MCP over HTTP on this address when set
	Headless bool             // Run without TUI (MCP only)
	Now      func() time.Time // Defaults to time.Now
}

// Orchestrator wires the activity log, the optional MCP HTTP server and
// the TUI together and owns their lifecycle.
type Orchestrator struct {
	cfg        Config
	log        *activity.Log     // nil when the activity log failed to start
	mcp        *mcpserver.Server // nil unless MCPAddr is set
	tuiApp     *tui.App          // nil when headless
	tuiProgram *tea.Program
	tuiDone    chan struct{}
	ctx        context.Context
	cancel     context.CancelFunc
	stopMu     sync.Mutex
	stopped    bool
}

// New creates a new Orchestrator with the given configuration.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.Settings == nil {
		cfg.Settings = config.Defaults()
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.Default()
	}
	if cfg.DataDir == "" {
		cfg.DataDir = ".eventify"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Orchestrator{
		cfg:     cfg,
		ctx:     ctx,
		cancel:  cancel,
		tuiDone: make(chan struct{}),
	}, nil
}

// Start initializes all components. A failing activity log is logged and
// the UI runs without one; a failing MCP listener is an error.
func (o *Orchestrator) Start() error {
	logger.Info("Starting eventify (data dir: %s)", o.cfg.DataDir)

	// 1. Activity log on an embedded NATS server
	if err := o.openActivity(); err != nil {
		logger.Warn("Activity log unavailable, continuing without it: %v", err)
	}

	// Validated in New
	loc, _ := o.cfg.Settings.Location()

	// 2. MCP over HTTP
	if o.cfg.MCPAddr != "" {
		o.mcp = mcpserver.New(o.cfg.Catalog, o.Store(), mcpserver.Options{
			BaseURL:  o.cfg.Settings.BaseURL,
			Location: loc,
			Now:      o.cfg.Now,
		})
		port, err := o.mcp.Start(o.ctx, o.cfg.MCPAddr)
		if err != nil {
			return fmt.Errorf("failed to start MCP server: %w", err)
		}
		logger.Info("MCP server listening on port %d", port)
	}

	// 3. TUI
	if !o.cfg.Headless {
		opts := tui.Options{
			Catalog:       o.cfg.Catalog,
			BaseURL:       o.cfg.Settings.BaseURL,
			RedirectDelay: o.cfg.Settings.RedirectDelay,
			Now:           nowIn(o.cfg.Now, loc),
			Start:         o.cfg.Start,
			DataDir:       o.cfg.DataDir,
		}
		if store := o.Store(); store != nil {
			opts.Recorder = store
		}
		o.tuiApp = tui.NewApp(o.ctx, opts)
	}

	return nil
}

// nowIn returns a clock reading now in loc.
func nowIn(now func() time.Time, loc *time.Location) func() time.Time {
	return func() time.Time { return now().In(loc) }
}

// openActivity starts the embedded NATS server backing the activity log.
func (o *Orchestrator) openActivity() error {
	dir := filepath.Join(o.cfg.DataDir, "nats")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create NATS data directory: %w", err)
	}
	log, err := activity.Open(o.ctx, dir)
	if err != nil {
		return err
	}
	o.log = log
	return nil
}

// Store returns the activity store, or nil when it is unavailable.
func (o *Orchestrator) Store() *activity.Store {
	if o.log == nil {
		return nil
	}
	return o.log.Store
}

// App returns the TUI app, or nil when headless.
func (o *Orchestrator) App() *tui.App { return o.tuiApp }

// MCPURL returns the MCP endpoint, or "" when MCP over HTTP is off.
func (o *Orchestrator) MCPURL() string {
	if o.mcp == nil {
		return ""
	}
	return o.mcp.URL()
}

// Context is cancelled when the orchestrator stops or the TUI quits.
func (o *Orchestrator) Context() context.Context { return o.ctx }

// Run blocks until the TUI quits, or until the orchestrator is stopped
// when headless.
func (o *Orchestrator) Run() error {
	if o.tuiApp == nil {
		logger.Debug("Running headless")
		<-o.ctx.Done()
		return nil
	}

	// Stop may run concurrently from a signal handler
	o.stopMu.Lock()
	if o.stopped {
		o.stopMu.Unlock()
		return nil
	}
	program := tea.NewProgram(o.tuiApp, tea.WithContext(o.ctx))
	o.tuiProgram = program
	o.stopMu.Unlock()
	defer close(o.tuiDone)

	_, err := program.Run()
	if o.cancel != nil {
		logger.Debug("TUI quit detected, cancelling orchestrator context")
		o.cancel()
	}
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// Stop shuts everything down. It is safe to call more than once.
func (o *Orchestrator) Stop() error {
	o.stopMu.Lock()
	defer o.stopMu.Unlock()
	if o.stopped {
		return nil
	}
	o.stopped = true

	logger.Info("Stopping eventify")

	var errs []error

	if o.cancel != nil {
		o.cancel()
	}

	// Wait for the TUI to restore the terminal
	if o.tuiProgram != nil {
		logger.Debug("Stopping TUI")
		o.tuiProgram.Quit()
		select {
		case <-o.tuiDone:
			logger.Debug("TUI stopped successfully")
		case <-time.After(2 * time.Second):
			logger.Warn("TUI shutdown timed out after 2s")
			errs = append(errs, fmt.Errorf("TUI shutdown timed out after 2s"))
		}
		o.tuiProgram = nil
	}

	if o.mcp != nil {
		if err := o.mcp.Stop(); err != nil {
			errs = append(errs, err)
		}
	}

	if o.log != nil {
		logger.Debug("Shutting down activity log")
		if err := o.log.Close(); err != nil {
			logger.Error("NATS shutdown failed: %v", err)
			errs = append(errs, fmt.Errorf("NATS shutdown failed: %w", err))
		}
		o.log = nil
	}

	logger.Info("eventify stopped")
	return errors.Join(errs...)
}
