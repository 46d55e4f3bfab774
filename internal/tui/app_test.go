package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/nats"
	"github.com/mark3labs/eventify/internal/state"
	"github.com/mark3labs/eventify/internal/tui/testfixtures"
	"github.com/mark3labs/eventify/internal/tui/wizard"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, start Route) (*App, *testfixtures.MockActivity, *testfixtures.MockClipboard) {
	t.Helper()
	rec := testfixtures.NewMockActivity()
	clip := &testfixtures.MockClipboard{}
	app := NewApp(context.Background(), Options{
		Catalog:       catalog.Default(),
		Recorder:      rec,
		Clipboard:     clip.Write,
		RedirectDelay: -1,
		Now:           testfixtures.Clock,
		Start:         start,
	})
	app.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})
	app.Init()
	return app, rec, clip
}

// send delivers msg and feeds back any NavigateMsg the page produced.
func send(app *App, msg tea.Msg) tea.Cmd {
	_, cmd := app.Update(msg)
	if cmd == nil {
		return nil
	}
	if nav, ok := cmd().(NavigateMsg); ok {
		_, cmd = app.Update(nav)
	}
	return cmd
}

func TestApp_StartsOnHome(t *testing.T) {
	app, _, _ := newTestApp(t, RouteHome)

	require.Equal(t, RouteHome, app.Route())
	_, ok := app.Screen().(*HomePage)
	require.True(t, ok)
}

func TestApp_NavigationHotkeys(t *testing.T) {
	app, _, _ := newTestApp(t, RouteHome)

	app.Update(press("e"))
	require.Equal(t, RouteEvents, app.Route())
	_, ok := app.Screen().(*EventsPage)
	require.True(t, ok)

	app.Update(press("c"))
	require.Equal(t, RouteCreate, app.Route())
	_, ok = app.Screen().(*CreatePage)
	require.True(t, ok)

	// The create page captures letters; esc moves focus to the buttons
	app.Update(press("esc"))
	app.Update(press("h"))
	require.Equal(t, RouteHome, app.Route())
}

func TestApp_SearchCapturesHotkeys(t *testing.T) {
	app, _, _ := newTestApp(t, RouteEvents)

	app.Update(press("/"))
	app.Update(press("q"))
	app.Update(press("c"))

	require.Equal(t, RouteEvents, app.Route())
	events := app.Screen().(*EventsPage)
	require.True(t, events.Capturing())
	require.Empty(t, events.Visible(), "no event title contains \"qc\"")

	app.Update(press("esc"))
	app.Update(press("h"))
	require.Equal(t, RouteHome, app.Route())
}

func TestApp_CreatePageCapturesHotkeys(t *testing.T) {
	app, _, _ := newTestApp(t, RouteCreate)

	app.Update(press("h"))
	app.Update(press("q"))

	require.Equal(t, RouteCreate, app.Route())
	require.Equal(t, "hq", app.Screen().(*CreatePage).Wizard().Details().Name())
}

func TestApp_Quit(t *testing.T) {
	app, _, _ := newTestApp(t, RouteHome)

	_, cmd := app.Update(press("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.False(t, app.View().AltScreen)
}

func TestApp_CtrlCQuitsWhileCapturing(t *testing.T) {
	app, _, _ := newTestApp(t, RouteCreate)

	_, cmd := app.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_OpenEventFromEvents(t *testing.T) {
	app, _, _ := newTestApp(t, RouteEvents)

	app.Update(press("right"))
	send(app, press("enter"))

	require.Equal(t, RouteDetail("2"), app.Route())
	detail := app.Screen().(*DetailPage)
	require.Equal(t, "Community Networking Mixer", detail.Event().Title)

	send(app, press("esc"))
	require.Equal(t, RouteEvents, app.Route())
}

func TestApp_OpenFeaturedEventFromHome(t *testing.T) {
	app, _, _ := newTestApp(t, RouteHome)

	app.Update(press("right"))
	send(app, press("enter"))

	require.Equal(t, RouteDetail("2"), app.Route())
}

func TestApp_NotFoundRoute(t *testing.T) {
	app, _, _ := newTestApp(t, ParseRoute("/does-not-exist"))

	page, ok := app.Screen().(*NotFoundPage)
	require.True(t, ok)
	require.Equal(t, "/does-not-exist", page.Path())
	require.True(t, testfixtures.Contains(page.View(), "Oops! The page you're looking for doesn't exist."))

	send(app, press("enter"))
	require.Equal(t, RouteHome, app.Route())
}

func TestApp_ToastMessages(t *testing.T) {
	app, _, _ := newTestApp(t, RouteHome)

	app.Update(ShowToastMsg{Text: "Event link copied to clipboard!"})
	require.Equal(t, "Event link copied to clipboard!", app.Toast().Message())

	app.Update(wizard.ToastMsg{Text: "Event created successfully!"})
	require.Equal(t, "Event created successfully!", app.Toast().Message())

	app.Update(ToastDismissMsg{Seq: app.Toast().Seq()})
	require.False(t, app.Toast().IsVisible())
}

func TestApp_DetailShareShowsToast(t *testing.T) {
	app, rec, clip := newTestApp(t, RouteDetail("1"))

	_, cmd := app.Update(press("s"))
	for _, msg := range drain(cmd) {
		app.Update(msg)
	}

	require.Len(t, clip.Writes, 1)
	require.Equal(t, "Event link copied to clipboard!", app.Toast().Message())
	require.Len(t, rec.Recorded, 1)
}

func TestApp_WizardRedirectsToEvents(t *testing.T) {
	app, rec, _ := newTestApp(t, RouteCreate)
	ctrlN := tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}

	app.Update(ctrlN)
	app.Update(ctrlN)
	_, cmd := app.Update(ctrlN)

	create := app.Screen().(*CreatePage)
	require.True(t, create.Wizard().Controller().Complete())
	require.False(t, create.Capturing())

	// Deliver the completion batch, then whatever the redirect tick yields
	var pending []tea.Msg
	pending = append(pending, drain(cmd)...)
	for len(pending) > 0 && app.Route() == RouteCreate {
		msg := pending[0]
		pending = pending[1:]
		if _, ok := msg.(wizard.ToastMsg); ok {
			app.Update(msg)
			continue
		}
		_, next := app.Update(msg)
		if _, ok := msg.(wizard.RedirectMsg); ok {
			break
		}
		pending = append(pending, drain(next)...)
	}

	require.Equal(t, RouteEvents, app.Route())
	require.Equal(t, "Event created successfully!", app.Toast().Message())
	require.Contains(t, rec.Kinds(), nats.KindWizard)
}

func TestApp_LeavingCreateDropsRedirect(t *testing.T) {
	app, _, _ := newTestApp(t, RouteCreate)
	create := app.Screen().(*CreatePage)
	ctrlN := tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}

	app.Update(ctrlN)
	app.Update(ctrlN)
	_, cmd := app.Update(ctrlN)
	require.True(t, create.Wizard().Controller().Complete())

	app.Update(press("h"))
	require.Equal(t, RouteHome, app.Route())

	// The redirect tick arrives after the page is gone
	delivered := 0
	for _, msg := range drain(cmd) {
		switch msg.(type) {
		case wizard.CompletedMsg, wizard.ToastMsg:
			continue
		}
		delivered++
		for _, out := range drain(create.Update(msg)) {
			require.NotEqual(t, wizard.RedirectMsg{}, out)
		}
	}
	require.Equal(t, 1, delivered)
	require.Equal(t, RouteHome, app.Route())
}

func TestApp_CreateRemountsAfterCompletion(t *testing.T) {
	app, _, _ := newTestApp(t, RouteCreate)
	first := app.Screen().(*CreatePage)

	// Navigating to the page already shown keeps the wizard state
	app.Update(NavigateMsg{Route: RouteCreate})
	require.Same(t, first, app.Screen())

	ctrlN := tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}
	app.Update(ctrlN)
	app.Update(ctrlN)
	app.Update(ctrlN)

	app.Update(press("c"))
	second := app.Screen().(*CreatePage)
	require.NotSame(t, first, second)
	require.False(t, second.Wizard().Controller().Complete())
}

func TestApp_NavbarClick(t *testing.T) {
	app, _, _ := newTestApp(t, RouteHome)
	app.View()

	// Brand takes the first columns, the Events link follows Home
	var eventsX = -1
	for x := 0; x < testfixtures.TestTermWidth; x++ {
		if r, ok := app.header.RouteAtPosition(x, 0); ok && r == RouteEvents {
			eventsX = x
			break
		}
	}
	require.NotEqual(t, -1, eventsX)

	app.Update(tea.MouseClickMsg{X: eventsX, Y: 0, Button: tea.MouseLeft})
	require.Equal(t, RouteEvents, app.Route())

	// Clicks below the navbar do nothing
	app.Update(tea.MouseClickMsg{X: eventsX, Y: 5, Button: tea.MouseLeft})
	require.Equal(t, RouteEvents, app.Route())
}

func TestApp_ViewRendersChrome(t *testing.T) {
	app, _, _ := newTestApp(t, RouteHome)

	require.True(t, app.View().AltScreen)

	scr := uv.NewScreenBuffer(testfixtures.TestTermWidth, testfixtures.TestTermHeight)
	app.Draw(scr, scr.Bounds())
	content := testfixtures.Plain(scr.Render())
	require.Contains(t, content, "Eventify")
	require.Contains(t, content, "Create Memorable Events")
	require.Contains(t, content, "© 2024 Eventify. All rights reserved.")
}

func TestApp_EventsPrefsRestoredOnReturn(t *testing.T) {
	app, _, _ := newTestApp(t, RouteEvents)

	app.Update(press("v"))
	app.Update(press("tab"))
	app.Update(press("h"))
	require.Equal(t, RouteHome, app.Route())

	app.Update(press("e"))
	events := app.Screen().(*EventsPage)
	require.Equal(t, ViewTimeline, events.ViewMode())
	require.True(t, events.Mine())
}

func TestApp_EventsPrefsPersisted(t *testing.T) {
	dir := t.TempDir()
	app := NewApp(context.Background(), Options{
		Now:     testfixtures.Clock,
		Start:   RouteEvents,
		DataDir: dir,
	})
	app.Update(tea.WindowSizeMsg{Width: testfixtures.TestTermWidth, Height: testfixtures.TestTermHeight})

	app.Update(press("f"))
	app.Update(press("f"))
	app.Update(press("q"))

	require.Equal(t, state.EventsState{View: "grid", When: "past"}, state.Load(dir).Events)

	// A new run starts where the last one left off
	next := NewApp(context.Background(), Options{
		Now:     testfixtures.Clock,
		Start:   RouteEvents,
		DataDir: dir,
	})
	events := next.Screen().(*EventsPage)
	require.Equal(t, catalog.WhenPast, events.When())
	require.Equal(t, []string{"2", "4", "5"}, ids(events.Visible()))
}
