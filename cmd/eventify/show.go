package main

import (
	"fmt"
	"io"

	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show event details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showEvent(cmd.OutOrStdout(), catalog.Default(), args[0], settings.BaseURL)
	},
}

func showEvent(w io.Writer, c *catalog.Catalog, id, baseURL string) error {
	e, err := c.Find(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n\n", e.Title)
	fmt.Fprintf(w, "Date:      %s\n", catalog.FormatDate(e.Date))
	fmt.Fprintf(w, "Time:      %s\n", e.Time)
	fmt.Fprintf(w, "Location:  %s\n", e.Location)
	fmt.Fprintf(w, "Address:   %s\n", c.StreetAddress(e))
	fmt.Fprintf(w, "Organizer: %s\n", e.Organizer.Name)
	fmt.Fprintf(w, "Share:     %s\n", catalog.ShareURL(baseURL, e))

	sum := catalog.Summarize(c.Attendees())
	fmt.Fprintf(w, "\nAttendees: %d attending, %d pending, %d declined\n",
		sum.Attending, sum.Pending, sum.Declined)

	fmt.Fprintln(w, "\nSchedule:")
	for _, item := range c.Schedule(e) {
		fmt.Fprintf(w, "  %-9s %s\n", item.Time, item.Title)
	}
	return nil
}
