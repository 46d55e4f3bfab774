package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// Page identifies a top-level screen.
type Page int

const (
	PageHome Page = iota
	PageEvents
	PageDetail
	PageCreate
	PageNotFound
)

// String returns the page name.
func (p Page) String() string {
	switch p {
	case PageHome:
		return "home"
	case PageEvents:
		return "events"
	case PageDetail:
		return "detail"
	case PageCreate:
		return "create"
	default:
		return "not-found"
	}
}

// Route is a resolved location in the app.
type Route struct {
	Page    Page
	EventID string // Set for PageDetail
	Path    string // Set for PageNotFound
}

// Common routes.
var (
	RouteHome   = Route{Page: PageHome}
	RouteEvents = Route{Page: PageEvents}
	RouteCreate = Route{Page: PageCreate}
)

// RouteDetail returns the route for an event detail page.
func RouteDetail(id string) Route {
	return Route{Page: PageDetail, EventID: id}
}

// ParseRoute resolves a URL-style path: "/", "/events", "/events/<id>",
// "/create-event". Anything else is a not-found route.
func ParseRoute(path string) Route {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	parts := strings.Split(trimmed, "/")

	switch {
	case trimmed == "":
		return RouteHome
	case len(parts) == 1 && parts[0] == "events":
		return RouteEvents
	case len(parts) == 2 && parts[0] == "events" && parts[1] != "":
		// Share links append a slug: /events/1-tech-conference-2024
		id, _, _ := strings.Cut(parts[1], "-")
		if id == "" {
			id = parts[1]
		}
		return RouteDetail(id)
	case len(parts) == 1 && parts[0] == "create-event":
		return RouteCreate
	}
	return Route{Page: PageNotFound, Path: "/" + trimmed}
}

// String returns the URL-style path for the route.
func (r Route) String() string {
	switch r.Page {
	case PageHome:
		return "/"
	case PageEvents:
		return "/events"
	case PageDetail:
		return "/events/" + r.EventID
	case PageCreate:
		return "/create-event"
	}
	if r.Path != "" {
		return r.Path
	}
	return "/404"
}

// NavigateMsg asks the app to switch pages.
type NavigateMsg struct {
	Route Route
}

// Navigate returns a command that navigates to route.
func Navigate(route Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Route: route} }
}
