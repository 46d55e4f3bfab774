package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/ics"
	"github.com/mark3labs/eventify/internal/nats"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleListEvents lists events filtered by the optional search, when and mine arguments.
func (s *Server) handleListEvents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	q := catalog.Query{When: catalog.WhenAll}
	mine := false
	if args != nil {
		if v, ok := args["search"].(string); ok {
			q.Search = v
		}
		if v, ok := args["when"].(string); ok && v != "" {
			w, err := catalog.ParseWhen(v)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			q.When = w
		}
		if v, ok := args["mine"].(bool); ok {
			mine = v
		}
	}

	events := s.catalog.All()
	if mine {
		events = s.catalog.Mine()
	}
	events = catalog.Filter(events, q, s.opts.Now().In(s.opts.Location))

	if len(events) == 0 {
		return mcp.NewToolResultText("No events found. Try adjusting your search."), nil
	}

	lines := make([]string, 0, len(events))
	for _, e := range events {
		lines = append(lines, catalog.FormatLine(e))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// handleGetEvent renders a single event.
func (s *Server) handleGetEvent(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, errResult := s.eventArg(request)
	if errResult != nil {
		return errResult, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Title)
	fmt.Fprintf(&b, "Date: %s\n", catalog.FormatDate(e.Date))
	fmt.Fprintf(&b, "Time: %s\n", e.Time)
	fmt.Fprintf(&b, "Location: %s\n", e.Location)
	fmt.Fprintf(&b, "Address: %s\n", s.catalog.StreetAddress(e))
	fmt.Fprintf(&b, "Organizer: %s\n", e.Organizer.Name)
	fmt.Fprintf(&b, "Share: %s\n", catalog.ShareURL(s.opts.BaseURL, e))

	sum := catalog.Summarize(s.catalog.Attendees())
	fmt.Fprintf(&b, "Attendees: %d attending, %d pending, %d declined\n",
		sum.Attending, sum.Pending, sum.Declined)

	if s.activity != nil {
		feed, err := s.activity.LoadKind(ctx, nats.KindRSVP)
		if err == nil {
			if status, ok := feed.RSVP[e.ID]; ok {
				fmt.Fprintf(&b, "Your RSVP: %s\n", status.Label())
			}
		}
	}

	b.WriteString("\n## Schedule\n")
	for _, item := range s.catalog.Schedule(e) {
		fmt.Fprintf(&b, "- %s %s\n", item.Time, item.Title)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// handleSearchVenues lists venues whose name contains term.
func (s *Server) handleSearchVenues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	term := ""
	if args := request.GetArguments(); args != nil {
		if v, ok := args["term"].(string); ok {
			term = v
		}
	}

	venues := s.catalog.SearchVenues(term)
	if len(venues) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No venues found for %q", term)), nil
	}

	lines := make([]string, 0, len(venues))
	for _, v := range venues {
		lines = append(lines, fmt.Sprintf("%s: %s | %s | up to %d guests", v.ID, v.Name, v.Address, v.Capacity))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// handleListAttendees lists attendees, optionally filtered by status.
func (s *Server) handleListAttendees(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var want catalog.RSVPStatus
	if args := request.GetArguments(); args != nil {
		if v, ok := args["status"].(string); ok && v != "" {
			status, err := catalog.ParseRSVPStatus(v)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			want = status
		}
	}

	var lines []string
	for _, a := range s.catalog.Attendees() {
		if want != "" && a.Status != want {
			continue
		}
		lines = append(lines, fmt.Sprintf("[%s] %s <%s>", a.Status, a.Name, a.Email))
	}
	if len(lines) == 0 {
		return mcp.NewToolResultText("No attendees"), nil
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

// handleExportICS returns the iCalendar rendering of an event.
func (s *Server) handleExportICS(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, errResult := s.eventArg(request)
	if errResult != nil {
		return errResult, nil
	}

	doc, err := ics.Render(e, s.catalog.Attendees(), s.opts.Location, s.opts.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render calendar: %v", err)), nil
	}
	return mcp.NewToolResultText(doc), nil
}

// handleRSVP records the current user's response to an event.
func (s *Server) handleRSVP(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	e, errResult := s.eventArg(request)
	if errResult != nil {
		return errResult, nil
	}

	raw, _ := request.GetArguments()["status"].(string)
	status, err := catalog.ParseRSVPStatus(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := s.activity.RSVP(ctx, e.ID, status); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record rsvp: %v", err)), nil
	}
	return mcp.NewToolResultText(status.Message()), nil
}

// eventArg resolves the required id argument. A non-nil result is the error
// to hand back to the client.
func (s *Server) eventArg(request mcp.CallToolRequest) (catalog.Event, *mcp.CallToolResult) {
	args := request.GetArguments()
	if args == nil {
		return catalog.Event{}, mcp.NewToolResultError("no arguments provided")
	}
	id, ok := args["id"].(string)
	if !ok || id == "" {
		return catalog.Event{}, mcp.NewToolResultError("missing or empty 'id' parameter")
	}

	e, err := s.catalog.Find(id)
	if errors.Is(err, catalog.ErrEventNotFound) {
		return catalog.Event{}, mcp.NewToolResultError(fmt.Sprintf("Event Not Found: %s", id))
	}
	if err != nil {
		return catalog.Event{}, mcp.NewToolResultError(err.Error())
	}
	return e, nil
}
