// Package browser is the interactive Pokémon browser. All session state is
// mutated from Update; fetches run as commands and report back as messages.
package browser

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pokebrowse/internal/catalog"
	"github.com/alexisbeaulieu97/pokebrowse/internal/logger"
	"github.com/alexisbeaulieu97/pokebrowse/internal/theme"
	"github.com/alexisbeaulieu97/pokebrowse/internal/view"
)

// Model is the browser model
type Model struct {
	// Core data
	ctx     context.Context
	session *catalog.Session
	loader  Loader
	themes  *theme.Store
	log     *logger.Logger

	// Search state
	query  string
	search textinput.Model

	// Component state
	keys    keyMap
	help    help.Model
	spinner spinner.Model

	// Dimensions
	width  int
	height int
}

// NewModel creates a browser model. A nil themes store toggles in memory only.
func NewModel(ctx context.Context, loader Loader, themes *theme.Store, log *logger.Logger) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if themes == nil {
		themes = theme.New(nil, nil, log)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ti := textinput.New()
	ti.Placeholder = "Search Pokemon..."
	ti.Prompt = "⌕ "
	ti.CharLimit = 64

	return Model{
		ctx:     ctx,
		session: catalog.NewSession(),
		loader:  loader,
		themes:  themes,
		log:     log.Component("browser"),
		search:  ti,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: s,
		width:   80,
		height:  24,
	}
}

// Init restores the theme and starts the catalog and first page loads together
func (m Model) Init() tea.Cmd {
	m.themes.Restore()

	cmds := []tea.Cmd{m.spinner.Tick}
	if token, ok := m.session.BeginCatalog(); ok {
		m.log.Debug("catalog load started")
		cmds = append(cmds, loadCatalogCmd(m.ctx, m.loader, token))
	}
	page := m.session.CurrentPage()
	if token, ok := m.session.BeginPage(page); ok {
		m.log.WithFields(map[string]any{"page": page}).Debug("page load started")
		cmds = append(cmds, loadPageCmd(m.ctx, m.loader, token, page))
	}
	return tea.Batch(cmds...)
}

// compose derives the current screen.
func (m Model) compose() view.View {
	return view.Compose(view.FromSession(m.session, m.query))
}

// Query returns the active search string.
func (m Model) Query() string {
	return m.query
}

// Session exposes the loader state, mainly for tests.
func (m Model) Session() *catalog.Session {
	return m.session
}
