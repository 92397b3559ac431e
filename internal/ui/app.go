package ui

import (
	"strings"
	"time"

	"helpdesk/internal/domain"
	appErrors "helpdesk/internal/errors"
	"helpdesk/internal/helpdesk"
	"helpdesk/internal/tickets"
	"helpdesk/internal/ui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultRequestTimeout = 10 * time.Second
	minDetailWidth        = 30
	minDetailHeight       = 5
	detailMinScreenWidth  = 110
)

// View names accepted by Config.View.
const (
	ViewUser  = "user"
	ViewAgent = "agent"
)

// Config configures the dashboard.
type Config struct {
	Client helpdesk.Client
	// View is ViewUser or ViewAgent. The agent view adds the category column
	// and starts on the Service queue.
	View string
	// Entries is the initial page size; zero shows every row.
	Entries      tickets.Entries
	OutputFormat string
	Timeout      time.Duration
	Version      string
	// User is shown in the footer, usually the token subject.
	User string
	// SaveTheme persists the theme picked with the theme key. Nil skips it.
	SaveTheme func(name string) error
}

type overlayKind int

const (
	OverlayNone overlayKind = iota
	OverlayHelp
	OverlayDelete
	OverlayEdit
	OverlayCreate
)

// App is the Bubble Tea model for the ticket dashboard. All ticket state
// lives in the manager; backend calls run as commands and their results are
// applied when the message comes back.
type App struct {
	mgr    *tickets.Manager
	client helpdesk.Client
	keys   KeyMap

	width  int
	height int
	ready  bool
	cursor int

	search    textinput.Model
	searching bool

	activeOverlay overlayKind
	deleteOverlay *DeleteOverlay
	editOverlay   *EditOverlay
	createOverlay *CreateOverlay

	showDetail bool
	detail     viewport.Model
	detailID   int

	loading bool
	loadSeq int
	spinner spinner.Model
	toast   toast

	agent        bool
	user         string
	timeout      time.Duration
	outputFormat string
	version      string
	saveTheme    func(string) error
}

// NewApp builds the dashboard. Tickets are fetched by Init.
func NewApp(cfg Config) (*App, error) {
	if cfg.Client == nil {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "dashboard needs a helpdesk client", nil)
	}
	view := strings.ToLower(strings.TrimSpace(cfg.View))
	if view == "" {
		view = ViewUser
	}
	if view != ViewUser && view != ViewAgent {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "unknown dashboard view "+cfg.View, nil)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRequestTimeout
	}

	mgr := tickets.NewManager(cfg.Client)
	mgr.State.Entries = cfg.Entries
	agent := view == ViewAgent
	if agent {
		mgr.State.Type = tickets.FilterService
	}

	ti := textinput.New()
	ti.Placeholder = "Search titles..."
	ti.Prompt = "/ "
	ti.CharLimit = 120

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &App{
		mgr:          mgr,
		client:       cfg.Client,
		keys:         DefaultKeyMap(),
		search:       ti,
		showDetail:   true,
		detail:       viewport.New(minDetailWidth, minDetailHeight),
		loading:      true,
		spinner:      sp,
		agent:        agent,
		user:         cfg.User,
		timeout:      cfg.Timeout,
		outputFormat: cfg.OutputFormat,
		version:      cfg.Version,
		saveTheme:    cfg.SaveTheme,
	}, nil
}

// Init starts the spinner and the first load.
func (m *App) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadTicketsCmd())
}

// Manager exposes the ticket state, mainly for tests and callers that
// render outside the program loop.
func (m *App) Manager() *tickets.Manager {
	return m.mgr
}

func (m *App) rows() []domain.Ticket {
	return m.mgr.Displayed()
}

func (m *App) selected() (domain.Ticket, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return domain.Ticket{}, false
	}
	return rows[m.cursor], true
}

// clampCursor keeps the cursor inside the displayed rows after any change to
// the list or the view state.
func (m *App) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// viewChanged re-derives everything that depends on the displayed rows.
func (m *App) viewChanged() {
	m.clampCursor()
	m.updateDetailContent()
}

func (m *App) moveCursor(delta int) {
	n := len(m.rows())
	if n == 0 {
		return
	}
	m.cursor += delta
	m.clampCursor()
	m.mgr.CloseMenu()
	m.updateDetailContent()
}

func (m *App) selectID(id int) {
	for i, t := range m.rows() {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *App) closeOverlay() {
	m.activeOverlay = OverlayNone
	m.deleteOverlay = nil
	m.editOverlay = nil
	m.createOverlay = nil
}

// layout sizes the detail pane from the window. Narrow terminals hide it.
func (m *App) layout() {
	w := m.width * 2 / 5
	if w < minDetailWidth {
		w = minDetailWidth
	}
	h := m.bodyHeight()
	if h < minDetailHeight {
		h = minDetailHeight
	}
	m.detail.Width = w
	m.detail.Height = h
	m.updateDetailContent()
}

func (m *App) detailVisible() bool {
	return m.showDetail && m.width >= detailMinScreenWidth
}

func (m *App) themeLabel() string {
	return "theme: " + theme.CurrentName()
}
