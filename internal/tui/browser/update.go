package browser

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pokebrowse/internal/view"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.search.Width = searchWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	// Load messages
	case CatalogLoadedMsg:
		if !m.session.FinishCatalog(msg.Token, msg.Entities, msg.Err) {
			m.log.Debug("dropping stale catalog result")
			return m, nil
		}
		if msg.Err != nil {
			m.log.Warn(msg.Err, "catalog load failed")
			return m, nil
		}
		m.log.WithFields(map[string]any{"count": len(msg.Entities)}).Info("catalog loaded")
		return m, nil

	case PageLoadedMsg:
		fields := map[string]any{"page": msg.Page}
		if !m.session.FinishPage(msg.Token, msg.Entities, msg.Err) {
			m.log.WithFields(fields).Debug("dropping stale page result")
			return m, nil
		}
		if msg.Err != nil {
			m.log.WithFields(fields).Warn(msg.Err, "page load failed")
			return m, nil
		}
		fields["count"] = len(msg.Entities)
		m.log.WithFields(fields).Info("page loaded")
		return m, nil
	}

	return m, nil
}

// handleKeyPress routes keys to the search box while it has focus
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		return m.handleSearchKeys(msg)
	}
	return m.handleBrowseKeys(msg)
}

// handleSearchKeys handles keys while typing a query
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Clear):
		m.search.Blur()
		m.search.SetValue("")
		return m, m.setQuery("")

	case key.Matches(msg, m.keys.Submit):
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, tea.Batch(cmd, m.setQuery(m.search.Value()))
}

// handleBrowseKeys handles keys outside the search box
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	current := m.compose()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Search):
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Clear):
		if m.query == "" {
			return m, nil
		}
		m.search.SetValue("")
		return m, m.setQuery("")

	case key.Matches(msg, m.keys.Theme):
		m.themes.Toggle()
		return m, nil

	case current.Kind == view.KindError && key.Matches(msg, m.keys.Retry):
		page, token, ok := m.session.Retry()
		if !ok {
			return m, nil
		}
		m.log.WithFields(map[string]any{"page": page}).Info("retrying page")
		return m, loadPageCmd(m.ctx, m.loader, token, page)

	case current.Kind == view.KindPaginated && key.Matches(msg, m.keys.Prev):
		if !current.HasPrev {
			return m, nil
		}
		return m, m.goToPage(m.session.RequestedPage() - 1)

	case current.Kind == view.KindPaginated && key.Matches(msg, m.keys.Next):
		if current.TotalPages == 0 {
			return m, nil
		}
		return m, m.goToPage(m.session.RequestedPage() + 1)
	}

	return m, nil
}

// goToPage starts loading page; out-of-range pages are ignored.
func (m *Model) goToPage(page int) tea.Cmd {
	token, ok := m.session.BeginPage(page)
	if !ok {
		return nil
	}
	m.log.WithFields(map[string]any{"page": page}).Debug("page load started")
	return loadPageCmd(m.ctx, m.loader, token, page)
}

// setQuery records a new search string. Any change returns pagination to
// page 1.
func (m *Model) setQuery(q string) tea.Cmd {
	if q == m.query {
		return nil
	}
	m.query = q

	token, ok := m.session.ResetToFirstPage()
	if !ok {
		return nil
	}
	return loadPageCmd(m.ctx, m.loader, token, 1)
}

func searchWidth(total int) int {
	w := total/2 - 4
	if w < 16 {
		return 16
	}
	return w
}
