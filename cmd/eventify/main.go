package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/eventify/internal/config"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/eventify/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █ █ █▀▀ █▄ █ ▀█▀ █ █▀▀ █▄█"
	logoText2 = "██▄ ▀▄▀ ██▄ █ ▀█  █  █ █▀   █ "
)

// Version set via ldflags during build
var version = "dev"

// settings is loaded once before any command runs.
var settings = config.Defaults()

var rootFlags struct {
	baseURL string
}

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eventify [path]",
	Short: "Browse and create events from the terminal",
	Args:  cobra.MaximumNArgs(1),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("base-url") {
			cfg.BaseURL = rootFlags.baseURL
		}
		settings = cfg
		if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
			return err
		}
		logger.Debug("Config loaded: base_url=%s redirect_delay=%s timezone=%s",
			cfg.BaseURL, cfg.RedirectDelay, cfg.Timezone)
		return nil
	},
	RunE: runBrowse,
}

// resolveDataDir picks the flag, then EVENTIFY_DATA_DIR, then .eventify.
func resolveDataDir(flag string) string {
	if flag != "" {
		return flag
	}
	if dir := os.Getenv("EVENTIFY_DATA_DIR"); dir != "" {
		return dir
	}
	return ".eventify"
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.Gradient(logoText1, t.Primary, t.Secondary, false)
	line2 := theme.Gradient(logoText2, t.Primary, t.Secondary, false)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

eventify is a terminal event manager. Browse upcoming and past events,
RSVP, share links and create new events with a three-step wizard.

Start on a specific page by passing a path:
  eventify /events
  eventify /events/1
  eventify /create-event`

	rootCmd.PersistentFlags().StringVar(&rootFlags.baseURL, "base-url", "", "Public site address used in share links")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(setupCmd)
}
