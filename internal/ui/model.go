package ui

import (
	"context"
	"reflect"
	"time"

	"github.com/atomicstack/sbbrowse/internal/backend"
	"github.com/atomicstack/sbbrowse/internal/fsys"
	"github.com/atomicstack/sbbrowse/internal/logging/events"
	"github.com/atomicstack/sbbrowse/internal/theme"
	"github.com/atomicstack/sbbrowse/internal/ui/command"
	"github.com/atomicstack/sbbrowse/internal/ui/widget"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultTitle = "SlackBuild browser"

type msgHandler func(tea.Msg) tea.Cmd

type pane int

const (
	paneCategories pane = iota
	paneBuilds
)

func (p pane) String() string {
	if p == paneBuilds {
		return "builds"
	}
	return "categories"
}

// Options configures the main window.
type Options struct {
	Title      string
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Vertical   bool
	Styles     *theme.Styles
	FS         fsys.FS
}

// Model implements the Bubble Tea model for the package browser.
type Model struct {
	src     backend.Source
	watcher *backend.Watcher
	bus     *command.Bus
	fs      fsys.FS
	styles  *theme.Styles
	keys    keyMap
	help    help.Model

	title      string
	catalog    *backend.Catalog
	categories *widget.ListBox
	builds     map[string]*widget.ListBox
	noBuilds   *widget.ListBox
	buildKey   string
	active     pane
	filter     widget.Filter
	search     *searchQuery
	searchBox  *widget.SearchBox
	tagged     map[string]bool

	dialogs []*dialogContext

	quick       textinput.Model
	quickActive bool

	loading       bool
	pendingLabel  string
	reloadPending bool
	batch         *batchRun

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	vertical    bool

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the main window over src. watcher may be nil.
func NewModel(src backend.Source, watcher *backend.Watcher, opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = theme.Default()
	}
	fs := opts.FS
	if fs == nil {
		fs = fsys.OS{}
	}
	title := opts.Title
	if title == "" {
		title = defaultTitle
	}
	m := &Model{
		src:        src,
		watcher:    watcher,
		bus:        command.New(context.Background()),
		fs:         fs,
		styles:     styles,
		keys:       defaultKeyMap(),
		help:       help.New(),
		title:      title,
		builds:     map[string]*widget.ListBox{},
		filter:     widget.FilterAll,
		tagged:     map[string]bool{},
		showFooter: opts.ShowFooter,
		verbose:    opts.Verbose,
		vertical:   opts.Vertical,
	}
	m.categories = widget.NewListBox("Categories", widget.CategoryRows, styles)
	m.categories.SetInfo("Enter: Select | Tab: Builds")
	m.noBuilds = m.newBuildList("SlackBuilds")
	m.searchBox = widget.NewSearchBox(styles)
	m.setActive(paneCategories)

	q := textinput.New()
	q.Prompt = "Quick search: "
	q.Cursor.SetMode(cursor.CursorStatic)
	if styles.Prompt != nil {
		q.PromptStyle = *styles.Prompt
	}
	m.quick = q

	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.layout()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadCatalog("Reading repository")}
	if m.watcher != nil {
		cmds = append(cmds, waitForBackendEvent(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(catalogLoadedMsg{}):  m.handleCatalogLoadedMsg,
		reflect.TypeOf(actionDoneMsg{}):     m.handleActionDoneMsg,
		reflect.TypeOf(syncDoneMsg{}):       m.handleSyncDoneMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) quit(reason string) tea.Cmd {
	events.App.Quit(reason)
	return tea.Quit
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = time.Now().Add(5 * time.Second)
}

func (m *Model) forceClearInfo() {
	m.infoMsg = ""
	m.infoExpire = time.Time{}
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && time.Now().After(m.infoExpire) {
		m.forceClearInfo()
	}
	return m.infoMsg
}
