package ui

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"jotlist/internal/item"
	"jotlist/internal/telemetry"
)

// chromeLines is the number of rows the heading, entry form, help footer,
// and their separators occupy around the list viewport.
const chromeLines = 5

// AppModel is the root model. It owns the authoritative item sequence and
// every child view; all mutation goes through it.
type AppModel struct {
	Items *item.List
	List  *ListView
	Form  *EntryForm

	Viewport viewport.Model
	Keys     KeyMap
	Help     help.Model
	Tracer   *telemetry.Tracer

	Width  int
	Height int
	Ready  bool // set once the first WindowSizeMsg arrives
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model seeded with seed (nil for an empty
// list). The entry form is handed the append path at construction; the
// sequence's change callback rebinds the list view.
func NewAppModel(seed []string) *AppModel {
	m := &AppModel{
		Keys: DefaultKeyMap(),
		Help: help.New(),
	}
	tracer, _ := telemetry.New(context.Background()) // ignore err; nil tracer = disabled
	m.Tracer = tracer
	m.Items = item.New(seed, m.itemsChanged)
	lv, _ := NewListView(m.Items.Items()) // ignore err; Items() is never nil
	m.List = lv
	m.Form = NewEntryForm(m.submitEntry)
	return m
}

// Append adds an item to the end of the sequence. The sequence's change
// callback takes care of rebinding the list view.
func (m *AppModel) Append(item string) {
	m.Items.Append(item)
}

// Shutdown flushes telemetry. Call it after the program loop has exited.
func (m *AppModel) Shutdown(ctx context.Context) error {
	return m.Tracer.Shutdown(ctx)
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// submitEntry is the entry form's submit callback.
func (m *AppModel) submitEntry(value string) {
	m.Tracer.Event("form.submit", map[string]string{"chars": strconv.Itoa(len(value))})
	m.Append(value)
}

// itemsChanged is the sequence's change callback: rebind the projection and
// keep the newest item in view.
func (m *AppModel) itemsChanged(items []string) {
	m.List.SetItems(items)
	if m.Ready {
		m.Viewport.SetContent(m.List.View())
		m.Viewport.GotoBottom()
	}
	m.Tracer.Event("item.append", map[string]string{"length": strconv.Itoa(len(items))})
}

// resize recomputes the viewport dimensions from the window size.
func (m *AppModel) resize(msg tea.WindowSizeMsg) {
	m.Width, m.Height = msg.Width, msg.Height
	m.Help.Width = msg.Width

	// Reserve space for the heading, entry form, and help footer.
	h := msg.Height - chromeLines
	if h < 1 {
		h = 1
	}
	if !m.Ready {
		m.Viewport = viewport.New(msg.Width, h)
		m.Ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = h
	}
	m.Viewport.SetContent(m.List.View())
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Form.Init()
}

// Update implements tea.Model. Quit and scroll keys are handled here, window
// sizes go to the viewport, and everything else goes to the entry form, which
// holds focus for the life of the app.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg)
		a.Tracer.Event("app.resize", map[string]string{
			"width":  strconv.Itoa(msg.Width),
			"height": strconv.Itoa(msg.Height),
		})
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.Keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.Keys.Up, a.Keys.Down, a.Keys.PageUp, a.Keys.PageDown):
			var cmd tea.Cmd
			a.Viewport, cmd = a.Viewport.Update(msg)
			return a, cmd
		}
	}

	v, cmd := a.Form.Update(msg)
	if f, ok := v.(*EntryForm); ok {
		a.Form = f
	}
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("TODO"))
	b.WriteString("\n\n")
	if a.Ready {
		b.WriteString(a.Viewport.View())
	} else {
		// No window size yet (first frame, tests): render the list directly.
		b.WriteString(a.List.View())
	}
	b.WriteString("\n\n")
	b.WriteString(a.Form.View())
	b.WriteString("\n")
	b.WriteString(a.Help.View(a.Keys))
	return b.String()
}
