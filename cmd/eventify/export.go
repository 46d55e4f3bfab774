package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/ics"
	"github.com/spf13/cobra"
)

var exportFlags struct {
	output string
}

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export an event as an iCalendar file",
	Long: `Export an event and its attendees as an iCalendar (.ics) document.

Writes to stdout unless --output is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := settings.Location()
		if err != nil {
			return err
		}

		if exportFlags.output == "" {
			return exportEvent(cmd.OutOrStdout(), catalog.Default(), args[0], loc, time.Now())
		}

		f, err := os.Create(exportFlags.output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", exportFlags.output, err)
		}
		if err := exportEvent(f, catalog.Default(), args[0], loc, time.Now()); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportFlags.output, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Calendar written to: %s\n", exportFlags.output)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "o", "", "Write to this file instead of stdout")
}

func exportEvent(w io.Writer, c *catalog.Catalog, id string, loc *time.Location, stamp time.Time) error {
	e, err := c.Find(id)
	if err != nil {
		return err
	}
	doc, err := ics.Render(e, c.Attendees(), loc, stamp)
	if err != nil {
		return fmt.Errorf("failed to render calendar: %w", err)
	}
	_, err = io.WriteString(w, doc)
	return err
}
