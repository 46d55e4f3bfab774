package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/eventify/internal/orchestrator"
	"github.com/mark3labs/eventify/internal/tui"
	"github.com/spf13/cobra"
)

var browseFlags struct {
	dataDir string
	mcpAddr string
}

func init() {
	rootCmd.Flags().StringVar(&browseFlags.dataDir, "data-dir", "", "Data directory for activity and UI preferences (default: from EVENTIFY_DATA_DIR or .eventify)")
	rootCmd.Flags().StringVar(&browseFlags.mcpAddr, "mcp-addr", "", "Also serve MCP over HTTP on this address (e.g. 127.0.0.1:8765)")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	start := tui.RouteHome
	if len(args) == 1 {
		start = tui.ParseRoute(args[0])
	}

	orch, err := orchestrator.New(orchestrator.Config{
		Settings: settings,
		DataDir:  resolveDataDir(browseFlags.dataDir),
		Start:    start,
		MCPAddr:  browseFlags.mcpAddr,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	if err := orch.Start(); err != nil {
		_ = orch.Stop()
		return fmt.Errorf("failed to start: %w", err)
	}

	// Ensure cleanup always runs using defer
	defer func() {
		if err := orch.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "Error during shutdown: %v\n", err)
		}
	}()

	// SIGTERM stops the program; the TUI handles ctrl+c itself
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
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
