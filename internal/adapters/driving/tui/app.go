package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/flow"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/views/editor"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/views/events"
	"github.com/custodia-labs/pagecal-cli/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/pagecal-cli/internal/core/domain"
)

// statusTTL is how long a transient status banner stays visible.
const statusTTL = 4 * time.Second

// App is the root Bubbletea model. It owns the review-flow state
// machine and routes messages to the per-view models.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles

	url     string
	machine *flow.Machine

	eventsView   *events.View
	editorView   *editor.View
	settingsView *settings.View

	// fatalErr is set when the ports fail validation; the app renders
	// the error and exits on any key.
	fatalErr error

	// submitting disables the add key while an insertion is in flight.
	submitting bool

	status      string
	statusIsErr bool
	statusID    int

	width  int
	height int
	ready  bool
}

// NewApp creates the review app for the given page address.
func NewApp(ports *Ports, url string) *App {
	s := styles.DefaultStyles()

	app := &App{
		ports:        ports,
		ctx:          context.Background(),
		styles:       s,
		url:          url,
		eventsView:   events.NewView(s),
		editorView:   editor.NewView(s),
		settingsView: settings.NewView(s, nil),
	}
	if ports == nil {
		app.fatalErr = ErrMissingExtractionService
		return app
	}
	if err := ports.Validate(); err != nil {
		app.fatalErr = err
		return app
	}
	app.machine = flow.NewMachine(ports.Session)
	app.settingsView = settings.NewView(s, ports.Settings)
	return app
}

// WithContext sets the context used for extraction and submission
// calls. Defaults to context.Background.
func (a *App) WithContext(ctx context.Context) *App {
	if ctx != nil {
		a.ctx = ctx
	}
	return a
}

// Init starts the first extraction cycle.
func (a *App) Init() tea.Cmd {
	if a.fatalErr != nil {
		return nil
	}
	if err := a.machine.Extract(); err != nil {
		return nil
	}
	return a.extractCmd()
}

func (a *App) extractCmd() tea.Cmd {
	return func() tea.Msg {
		extracted, err := a.ports.Extraction.Extract(a.ctx, a.url)
		return messages.ExtractionCompleted{Events: extracted, Err: err}
	}
}

func (a *App) submitCmd(index int, event domain.EventRecord) tea.Cmd {
	return func() tea.Msg {
		entry, err := a.ports.Submission.Submit(a.ctx, event)
		return messages.EventSubmitted{Index: index, Entry: entry, Err: err}
	}
}

// setStatus shows a transient banner and schedules its expiry.
func (a *App) setStatus(text string, isErr bool) tea.Cmd {
	a.status = text
	a.statusIsErr = isErr
	a.statusID++
	id := a.statusID
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return messages.StatusExpired{ID: id}
	})
}

// Update handles messages for the app.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.fatalErr != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return a, tea.Quit
		}
		return a, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.eventsView.SetDimensions(msg.Width, msg.Height)
		a.editorView.SetDimensions(msg.Width, msg.Height)
		a.settingsView.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.ExtractionCompleted:
		if err := a.machine.Complete(msg.Events, msg.Err); err != nil {
			return a, nil
		}
		a.eventsView.SetEvents(a.ports.Session.Events())
		return a, nil

	case messages.EditClosed:
		return a.closeEditor(msg.Saved)

	case messages.EventSubmitted:
		a.submitting = false
		if msg.Err != nil {
			return a, a.setStatus(fmt.Sprintf("Add failed: %s", msg.Err), true)
		}
		return a, a.setStatus(fmt.Sprintf("Added %q  %s", msg.Entry.Summary, msg.Entry.HTMLLink), false)

	case messages.StatusExpired:
		if msg.ID == a.statusID {
			a.status = ""
		}
		return a, nil

	case messages.SettingsLoaded:
		var cmd tea.Cmd
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.SettingsSaved:
		if msg.Err != nil {
			var cmd tea.Cmd
			a.settingsView, cmd = a.settingsView.Update(msg)
			return a, cmd
		}
		if err := a.machine.CloseSettings(); err != nil {
			return a, nil
		}
		return a, a.setStatus("Settings saved. Press r to extract.", false)

	case messages.ViewChanged:
		// Only the settings panel navigates this way, on escape.
		if msg.View == messages.ViewEvents && a.machine.State() == flow.ConfigPanel {
			if err := a.machine.CloseSettings(); err != nil {
				return a, nil
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)
	}

	return a, nil
}

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.machine.State() {
	case flow.EditingItem:
		var cmd tea.Cmd
		a.editorView, cmd = a.editorView.Update(msg)
		return a, cmd

	case flow.ConfigPanel:
		var cmd tea.Cmd
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case flow.Loading:
		// Everything except quit is ignored while a cycle is in
		// flight; a second extract cannot start.
		if msg.String() == "q" {
			return a, tea.Quit
		}
		return a, nil

	case flow.ListView:
		return a.handleListKeys(msg)

	default: // Idle, NoEvents, ErrorShown
		switch msg.String() {
		case "q", "esc":
			return a, tea.Quit
		case "r":
			return a.startExtraction()
		case "s":
			return a.openSettings()
		}
		return a, nil
	}
}

func (a *App) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit

	case "r":
		return a.startExtraction()

	case "s":
		return a.openSettings()

	case "e":
		record, err := a.machine.Edit(a.eventsView.Selected())
		if err != nil {
			return a, nil
		}
		return a, a.editorView.Load(record)

	case "a":
		if a.submitting {
			return a, nil
		}
		event, ok := a.eventsView.SelectedEvent()
		if !ok {
			return a, nil
		}
		a.submitting = true
		a.status = fmt.Sprintf("Adding %q...", event.Title)
		a.statusIsErr = false
		a.statusID++
		return a, a.submitCmd(a.eventsView.Selected(), event)

	default:
		var cmd tea.Cmd
		a.eventsView, cmd = a.eventsView.Update(msg)
		return a, cmd
	}
}

func (a *App) startExtraction() (tea.Model, tea.Cmd) {
	if err := a.machine.Extract(); err != nil {
		return a, nil
	}
	return a, a.extractCmd()
}

func (a *App) openSettings() (tea.Model, tea.Cmd) {
	if err := a.machine.OpenSettings(); err != nil {
		return a, nil
	}
	a.settingsView.Reset()
	return a, a.settingsView.Init()
}

func (a *App) closeEditor(saved bool) (tea.Model, tea.Cmd) {
	if !saved {
		if err := a.machine.Cancel(); err != nil {
			return a, nil
		}
		return a, nil
	}
	if err := a.machine.Save(a.editorView.Record()); err != nil {
		return a, a.setStatus(fmt.Sprintf("Save failed: %s", err), true)
	}
	a.eventsView.SetEvents(a.ports.Session.Events())
	return a, a.setStatus("Event updated.", false)
}

// View renders the app.
func (a *App) View() string {
	if a.fatalErr != nil {
		return a.styles.Error.Render(fmt.Sprintf("Error: %s", a.fatalErr)) + "\n"
	}

	header := a.styles.Title.Render("PageCal Review") + "  " + a.styles.Muted.Render(a.url)

	var body string
	switch a.machine.State() {
	case flow.Idle:
		body = a.styles.Muted.Render("Press r to extract events from the page.")
	case flow.Loading:
		body = a.styles.Normal.Render("Extracting events...")
	case flow.NoEvents:
		body = a.styles.Muted.Render("No events found on this page. Press r to retry.")
	case flow.ErrorShown:
		body = a.styles.Error.Render(fmt.Sprintf("Error: %s", a.machine.Err()))
	case flow.ListView:
		body = a.eventsView.View()
	case flow.EditingItem:
		body = a.editorView.View()
	case flow.ConfigPanel:
		body = a.settingsView.View()
	}

	out := header + "\n\n" + body + "\n"
	if a.status != "" {
		if a.statusIsErr {
			out += a.styles.Error.Render(a.status) + "\n"
		} else {
			out += a.styles.Success.Render(a.status) + "\n"
		}
	}
	out += a.helpLine()
	return out
}

func (a *App) helpLine() string {
	switch a.machine.State() {
	case flow.ListView:
		return a.styles.Help.Render("[j/k] navigate  [e] edit  [a] add to calendar  [r] re-extract  [s] settings  [q] quit")
	case flow.Loading:
		return a.styles.Help.Render("[q] quit")
	case flow.EditingItem, flow.ConfigPanel:
		return ""
	default:
		return a.styles.Help.Render("[r] extract  [s] settings  [q] quit")
	}
}

// State exposes the flow state for tests.
func (a *App) State() flow.State {
	if a.machine == nil {
		return flow.Idle
	}
	return a.machine.State()
}

// SetDimensions sets the app dimensions, for tests.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
}
