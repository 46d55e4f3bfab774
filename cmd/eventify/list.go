package main

import (
	"fmt"
	"io"
	"time"

	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/spf13/cobra"
)

var listFlags struct {
	search   string
	when     string
	mine     bool
	timeline bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List events",
	Long: `List events one per line.

Filters match the events page: --search matches titles, --filter selects
all, upcoming or past events, and --mine shows only your events. With
--timeline events are grouped into upcoming and past, sorted by date.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := settings.Location()
		if err != nil {
			return err
		}
		return listEvents(cmd.OutOrStdout(), catalog.Default(), time.Now().In(loc))
	},
}

func init() {
	listCmd.Flags().StringVarP(&listFlags.search, "search", "s", "", "Only events whose title contains this text")
	listCmd.Flags().StringVarP(&listFlags.when, "filter", "f", "all", "Date filter: all, upcoming, or past")
	listCmd.Flags().BoolVarP(&listFlags.mine, "mine", "m", false, "Only events you're hosting or attending")
	listCmd.Flags().BoolVarP(&listFlags.timeline, "timeline", "t", false, "Group by upcoming and past")
}

func listEvents(w io.Writer, c *catalog.Catalog, now time.Time) error {
	when, err := catalog.ParseWhen(listFlags.when)
	if err != nil {
		return err
	}

	events := c.All()
	if listFlags.mine {
		events = c.Mine()
	}

	if listFlags.timeline {
		tv := catalog.Timeline(catalog.Filter(events, catalog.Query{Search: listFlags.search}, now), now)
		printSection(w, "Upcoming", tv.Upcoming, "No upcoming events")
		fmt.Fprintln(w)
		printSection(w, "Past", tv.Past, "No past events")
		return nil
	}

	events = catalog.Filter(events, catalog.Query{Search: listFlags.search, When: when}, now)
	if len(events) == 0 {
		fmt.Fprintln(w, "No events found. Try adjusting your search.")
		return nil
	}
	for _, e := range events {
		fmt.Fprintln(w, catalog.FormatLine(e))
	}
	return nil
}

func printSection(w io.Writer, title string, events []catalog.Event, empty string) {
	fmt.Fprintf(w, "%s:\n", title)
	if len(events) == 0 {
		fmt.Fprintf(w, "  %s\n", empty)
		return
	}
	for _, e := range events {
		fmt.Fprintf(w, "  %s\n", catalog.FormatLine(e))
	}
}
