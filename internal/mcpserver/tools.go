package mcpserver

import "github.com/mark3labs/mcp-go/mcp"

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("list-events",
			mcp.WithDescription("List catalog events, optionally filtered by title and date"),
			mcp.WithString("search",
				mcp.Description("Case-insensitive substring of the event title"),
			),
			mcp.WithString("when",
				mcp.Description("Date filter: all, upcoming or past (default all)"),
				mcp.Enum("all", "upcoming", "past"),
			),
			mcp.WithBoolean("mine",
				mcp.Description("Only the events organized by the current user"),
			),
		),
		s.handleListEvents,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("get-event",
			mcp.WithDescription("Show one event with its schedule, attendees and share link"),
			mcp.WithString("id", mcp.Required(),
				mcp.Description("Event id"),
			),
		),
		s.handleGetEvent,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("search-venues",
			mcp.WithDescription("Search venues by name"),
			mcp.WithString("term",
				mcp.Description("Case-insensitive substring of the venue name; empty lists all"),
			),
		),
		s.handleSearchVenues,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list-attendees",
			mcp.WithDescription("List attendees, optionally by RSVP status"),
			mcp.WithString("status",
				mcp.Description("attending, pending or declined"),
				mcp.Enum("attending", "pending", "declined"),
			),
		),
		s.handleListAttendees,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("export-ics",
			mcp.WithDescription("Export an event as an iCalendar document"),
			mcp.WithString("id", mcp.Required(),
				mcp.Description("Event id"),
			),
		),
		s.handleExportICS,
	)

	if s.activity != nil {
		s.mcpServer.AddTool(
			mcp.NewTool("rsvp",
				mcp.WithDescription("Set the current user's RSVP for an event"),
				mcp.WithString("id", mcp.Required(),
					mcp.Description("Event id"),
				),
				mcp.WithString("status", mcp.Required(),
					mcp.Description("attending, declined or pending"),
					mcp.Enum("attending", "declined", "pending"),
				),
			),
			s.handleRSVP,
		)
	}
}
