// internal/ui/models.go

package ui

import (
	"context"
	"log/slog"

	"shawl/internal/dispatch"
	"shawl/internal/formstate"
	"shawl/internal/logging"
	"shawl/internal/models"
	"shawl/internal/storage"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap definiuje skróty klawiszowe
type KeyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Press     key.Binding
	Manual    key.Binding
	Help      key.Binding
	CancelAll key.Binding
	Theme     key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap zwraca domyślne ustawienia klawiszy
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "previous"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "press"),
		),
		Manual: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "manual"),
		),
		Help: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "keys"),
		),
		CancelAll: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "cancel requests"),
		),
		Theme: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortcutKey returns the alt+N binding for the i-th button.
func ShortcutKey(i int) string {
	return "alt+" + string(rune('1'+i))
}

// Status reprezentuje stan aplikacji
type Status struct {
	Message string
	IsError bool
}

type View int

const (
	ViewForm View = iota
	ViewManual
)

// Dispatcher is the part of dispatch.Dispatcher the UI depends on.
type Dispatcher interface {
	Dispatch(ctx context.Context, action models.Action, fields models.Fields) *dispatch.Task
	CancelAll()
}

// Options configures a Model.
type Options struct {
	Brand      models.Brand
	Actions    []models.Action
	Marker     string
	Store      storage.Store
	Dispatcher Dispatcher
	Logger     *slog.Logger
}

// Model reprezentuje współdzielony stan aplikacji
type Model struct {
	keys        KeyMap
	status      Status
	activeView  View
	brand       models.Brand
	actions     []models.Action
	marker      string
	store       storage.Store
	dispatcher  Dispatcher
	highlighter *formstate.Highlighter
	logger      *slog.Logger
	width       int
	height      int
	quitting    bool
}

func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	actions := opts.Actions
	if len(actions) == 0 {
		actions = models.AllActions()
	}
	marker := opts.Marker
	if marker == "" {
		marker = formstate.MarkerBorder
	}

	buttons := make([]string, len(actions))
	for i, a := range actions {
		buttons[i] = string(a)
	}

	return &Model{
		keys:        DefaultKeyMap(),
		activeView:  ViewForm,
		brand:       opts.Brand.Merge(models.DefaultBrand()),
		actions:     actions,
		marker:      marker,
		store:       opts.Store,
		dispatcher:  opts.Dispatcher,
		highlighter: formstate.NewHighlighter(opts.Store, buttons, logger),
		logger:      logger,
		width:       80,
		height:      24,
	}
}

func (m *Model) Keys() KeyMap                        { return m.keys }
func (m *Model) Brand() models.Brand                 { return m.brand }
func (m *Model) Actions() []models.Action            { return m.actions }
func (m *Model) Marker() string                      { return m.marker }
func (m *Model) Store() storage.Store                { return m.store }
func (m *Model) Dispatcher() Dispatcher              { return m.dispatcher }
func (m *Model) Highlighter() *formstate.Highlighter { return m.highlighter }
func (m *Model) Logger() *slog.Logger                { return m.logger }

// SetStatus ustawia komunikat na pasku statusu
func (m *Model) SetStatus(msg string, isError bool) {
	m.status = Status{Message: msg, IsError: isError}
}

func (m *Model) GetStatus() Status {
	return m.status
}

func (m *Model) SetActiveView(view View) {
	m.activeView = view
}

func (m *Model) GetActiveView() View {
	return m.activeView
}

func (m *Model) SetTerminalSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) GetTerminalWidth() int {
	return m.width
}

func (m *Model) GetTerminalHeight() int {
	return m.height
}

func (m *Model) Quit() {
	m.quitting = true
}

func (m *Model) IsQuitting() bool {
	return m.quitting
}

