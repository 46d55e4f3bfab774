package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/mcpserver"
	"github.com/mark3labs/eventify/internal/orchestrator"
	"github.com/spf13/cobra"
)

var mcpFlags struct {
	http    string
	dataDir string
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the event catalog over MCP",
	Long: `Serve the event catalog as MCP tools.

By default the server speaks MCP over stdin/stdout, for clients that spawn
eventify themselves. With --http it listens for streamable HTTP on the
given address and records RSVPs in the activity log until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	mcpCmd.Flags().StringVar(&mcpFlags.http, "http", "", "Serve over HTTP on this address instead of stdio (e.g. 127.0.0.1:8765)")
	mcpCmd.Flags().StringVar(&mcpFlags.dataDir, "data-dir", "", "Data directory for --http (default: from EVENTIFY_DATA_DIR or .eventify)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	loc, err := settings.Location()
	if err != nil {
		return err
	}

	if mcpFlags.http == "" {
		srv := mcpserver.New(catalog.Default(), nil, mcpserver.Options{
			BaseURL:  settings.BaseURL,
			Location: loc,
			Now:      time.Now,
		})
		return srv.ServeStdio()
	}

	orch, err := orchestrator.New(orchestrator.Config{
		Settings: settings,
		DataDir:  resolveDataDir(mcpFlags.dataDir),
		MCPAddr:  mcpFlags.http,
		Headless: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}
	if err := orch.Start(); err != nil {
		_ = orch.Stop()
		return fmt.Errorf("failed to start: %w", err)
	}
	defer func() {
		if err := orch.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}
	}()

	fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening at %s\n", orch.MCPURL())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			_ = orch.Stop()
		case <-orch.Context().Done():
		}
	}()

	return orch.Run()
}
