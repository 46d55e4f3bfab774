package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/atotto/clipboard"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/mark3labs/eventify/internal/catalog"
	"github.com/mark3labs/eventify/internal/logger"
	"github.com/mark3labs/eventify/internal/state"
	"github.com/mark3labs/eventify/internal/tui/theme"
	"github.com/mark3labs/eventify/internal/tui/wizard"
)

// Options configures the app.
type Options struct {
	Catalog       *catalog.Catalog
	Recorder      Recorder           // Optional activity log
	Clipboard     func(string) error // Defaults to the system clipboard
	BaseURL       string             // Public site address for share links
	RedirectDelay time.Duration      // Wizard success screen delay
	Now           func() time.Time   // Defaults to time.Now
	Start         Route              // First page shown
	DataDir       string             // Where UI preferences are kept; empty keeps them in memory
}

// App is the main Bubbletea model. It routes between pages and draws the
// navbar, footer and toasts around the active one.
type App struct {
	ctx    context.Context
	opts   Options
	route  Route
	screen Screen

	header *Header
	footer *Footer
	toast  *Toast
	prefs  *state.UIState

	layout   Layout
	width    int
	height   int
	quitting bool
}

// NewApp creates the app on opts.Start.
func NewApp(ctx context.Context, opts Options) *App {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.WriteAll
	}
	if opts.BaseURL == "" {
		opts.BaseURL = catalog.DefaultBaseURL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	a := &App{
		ctx:    ctx,
		opts:   opts,
		route:  opts.Start,
		header: NewHeader(),
		footer: NewFooter(opts.Now().Year()),
		toast:  NewToast(),
		prefs:  state.DefaultUIState(),
	}
	if opts.DataDir != "" {
		a.prefs = state.Load(opts.DataDir)
	}
	a.screen = a.build(a.route)
	a.header.SetActive(a.route.Page)
	return a
}

// Init initializes the first page.
func (a *App) Init() tea.Cmd {
	return a.screen.Init()
}

// Route returns the current route.
func (a *App) Route() Route { return a.route }

// Screen returns the active page.
func (a *App) Screen() Screen { return a.screen }

// Toast returns the toast component.
func (a *App) Toast() *Toast { return a.toast }

// build creates the page for a route.
func (a *App) build(r Route) Screen {
	switch r.Page {
	case PageHome:
		return NewHomePage(a.opts.Catalog)
	case PageEvents:
		p := NewEventsPage(a.opts.Catalog, a.opts.Now)
		p.Restore(a.prefs.Events)
		return p
	case PageDetail:
		return NewDetailPage(a.ctx, a.opts.Catalog, r.EventID, a.opts.Recorder, a.opts.Clipboard, a.opts.BaseURL)
	case PageCreate:
		var rec wizard.Recorder
		if a.opts.Recorder != nil {
			rec = a.opts.Recorder
		}
		return NewCreatePage(a.ctx, a.opts.Catalog, wizard.Options{
			RedirectDelay: a.opts.RedirectDelay,
			BaseURL:       a.opts.BaseURL,
			Recorder:      rec,
			Clipboard:     a.opts.Clipboard,
			Now:           a.opts.Now,
		})
	default:
		return NewNotFoundPage(r.String())
	}
}

// Navigate switches to a route, unmounting the current page.
func (a *App) Navigate(r Route) tea.Cmd {
	if r == a.route && r.Page != PageCreate {
		return nil
	}
	if c, ok := a.screen.(*CreatePage); ok {
		if r.Page == PageCreate && !c.Wizard().Controller().Complete() {
			return nil
		}
		c.Unmount()
	}
	a.savePrefs()

	logger.Debug("Navigating from %s to %s", a.route, r)
	a.route = r
	a.screen = a.build(r)
	a.header.SetActive(r.Page)
	if a.width > 0 {
		a.screen.SetSize(a.layout.Content.Dx(), a.layout.Content.Dy())
	}
	return a.screen.Init()
}

// Prefs returns the UI preferences.
func (a *App) Prefs() *state.UIState { return a.prefs }

// savePrefs captures the events page settings when it is the active page
// and writes them to the data directory.
func (a *App) savePrefs() {
	p, ok := a.screen.(*EventsPage)
	if !ok {
		return
	}
	a.prefs.Events = p.Prefs()
	if a.opts.DataDir == "" {
		return
	}
	if err := state.Save(a.opts.DataDir, a.prefs); err != nil {
		logger.Warn("Failed to save UI state: %v", err)
	}
}

// quit saves preferences and stops the program.
func (a *App) quit() tea.Cmd {
	a.savePrefs()
	a.quitting = true
	return tea.Quit
}

// Update handles incoming messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return a, a.handleKeyPress(msg)

	case tea.PasteMsg:
		return a, a.handlePaste(msg)

	case tea.MouseClickMsg:
		mouse := msg.Mouse()
		if mouse.Button != tea.MouseLeft {
			return a, nil
		}
		if r, ok := a.header.RouteAtPosition(mouse.X, mouse.Y); ok {
			return a, a.Navigate(r)
		}
		return a, nil

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			return a, a.screen.Update(tea.KeyPressMsg{Code: tea.KeyUp})
		case tea.MouseWheelDown:
			return a, a.screen.Update(tea.KeyPressMsg{Code: tea.KeyDown})
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout = CalculateLayout(a.width, a.height)
		a.screen.SetSize(a.layout.Content.Dx(), a.layout.Content.Dy())
		return a, nil

	case NavigateMsg:
		return a, a.Navigate(msg.Route)

	case ShowToastMsg:
		return a, a.toast.Show(msg.Text)

	case wizard.ToastMsg:
		return a, a.toast.Show(msg.Text)

	case ToastDismissMsg:
		return a, a.toast.Update(msg)

	case wizard.CompletedMsg:
		logger.Info("Event created from the wizard")
		return a, nil

	case wizard.RedirectMsg:
		return a, a.Navigate(RouteEvents)

	case wizard.ExitMsg:
		return a, a.Navigate(RouteHome)
	}

	return a, a.screen.Update(msg)
}

// handleKeyPress routes keys: global quit, single-letter navigation when no
// text field has focus, then the active page.
func (a *App) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	if !a.screen.Capturing() {
		switch msg.String() {
		case "q":
			return a.quit()
		case "h":
			return a.Navigate(RouteHome)
		case "e":
			return a.Navigate(RouteEvents)
		case "c":
			return a.Navigate(RouteCreate)
		}
	}

	return a.screen.Update(msg)
}

// View renders the app to a full-screen view.
func (a *App) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if a.quitting {
		// Leave the alt screen so the terminal is restored cleanly
		view.AltScreen = false
		view.MouseMode = tea.MouseModeNone
		view.Content = lipgloss.NewLayer("")
		return view
	}

	canvas := uv.NewScreenBuffer(a.width, a.height)
	view.Cursor = a.Draw(canvas, canvas.Bounds())
	view.Content = lipgloss.NewLayer(canvas.Render())
	view.BackgroundColor = lipgloss.Color(theme.Current().BgCrust)
	return view
}

// Draw renders the chrome, the active page and any toast.
func (a *App) Draw(scr uv.Screen, area uv.Rectangle) *tea.Cursor {
	a.header.Draw(scr, a.layout.Navbar)

	DrawText(scr, a.layout.Content, a.screen.View())

	a.footer.SetHints(a.screen.Hints())
	a.footer.Draw(scr, a.layout.Footer)

	if toast := a.toast.View(area.Dx()); toast != "" && a.layout.Content.Dy() > 0 {
		row := a.layout.Content.Max.Y - 1
		DrawText(scr, uv.Rect(area.Min.X, row, area.Dx(), 1), toast)
	}
	return nil
}
