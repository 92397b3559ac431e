package ui

import (
	"strconv"

	"helpdesk/internal/debug"
	"helpdesk/internal/tickets"
	"helpdesk/internal/ui/theme"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes a key press. Overlays see keys first, then the search
// field, then the dashboard.
func (m *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.activeOverlay {
	case OverlayHelp:
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
			m.activeOverlay = OverlayNone
		}
		return m, nil
	case OverlayDelete:
		var cmd tea.Cmd
		m.deleteOverlay, cmd = m.deleteOverlay.Update(msg)
		return m, cmd
	case OverlayEdit:
		var cmd tea.Cmd
		m.editOverlay, cmd = m.editOverlay.Update(msg)
		return m, cmd
	case OverlayCreate:
		var cmd tea.Cmd
		m.createOverlay, cmd = m.createOverlay.Update(msg)
		return m, cmd
	}

	if m.searching {
		return m.handleSearchKey(msg)
	}
	return m.handleDashboardKey(msg)
}

// handleSearchKey edits the search term. Every keystroke re-filters the table.
func (m *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.mgr.State.Search = ""
		m.viewChanged()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.mgr.State.Search != m.search.Value() {
		m.mgr.State.Search = m.search.Value()
		m.cursor = 0
		m.mgr.CloseMenu()
		m.viewChanged()
	}
	return m, cmd
}

func (m *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.activeOverlay = OverlayHelp
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		if m.mgr.Dismiss() {
			return m, nil
		}
		if m.mgr.State.Search != "" {
			m.search.SetValue("")
			m.mgr.State.Search = ""
			m.viewChanged()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.rows()))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.rows()))
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize())

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.mgr.State.Search)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.SortType):
		m.toggleSort(tickets.SortType)
	case key.Matches(msg, m.keys.SortStatus):
		m.toggleSort(tickets.SortStatus)
	case key.Matches(msg, m.keys.SortPriority):
		m.toggleSort(tickets.SortPriority)
	case key.Matches(msg, m.keys.Entries):
		m.mgr.State.CycleEntries()
		m.viewChanged()
	case key.Matches(msg, m.keys.TypeFilter):
		m.mgr.State.Type = m.mgr.State.Type.Next()
		m.cursor = 0
		m.mgr.CloseMenu()
		m.viewChanged()
	case key.Matches(msg, m.keys.Detail):
		m.showDetail = !m.showDetail
		m.layout()

	case key.Matches(msg, m.keys.Menu):
		if t, ok := m.selected(); ok {
			m.mgr.ToggleMenu(t.ID)
		}
	case key.Matches(msg, m.keys.Edit):
		return m.openEdit()
	case key.Matches(msg, m.keys.Delete):
		return m.openDelete()
	case key.Matches(msg, m.keys.Copy):
		return m.copySelectedID()

	case key.Matches(msg, m.keys.NewTicket):
		m.mgr.CloseMenu()
		m.createOverlay = NewCreateOverlay(m.keys)
		m.activeOverlay = OverlayCreate
	case key.Matches(msg, m.keys.Refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadTicketsCmd())
	case key.Matches(msg, m.keys.Theme):
		return m.cycleTheme()
	}
	return m, nil
}

func (m *App) toggleSort(k tickets.SortKey) {
	m.mgr.State.ToggleSort(k)
	m.viewChanged()
}

// actionTarget is the ticket a row action applies to: the one whose menu is
// open, otherwise the row under the cursor.
func (m *App) actionTarget() (int, bool) {
	if id, ok := m.mgr.Menu().ID(); ok {
		return id, true
	}
	if t, ok := m.selected(); ok {
		return t.ID, true
	}
	return 0, false
}

func (m *App) openEdit() (tea.Model, tea.Cmd) {
	id, ok := m.actionTarget()
	if !ok || !m.mgr.OpenEditByID(id) {
		return m, nil
	}
	staged, _ := m.mgr.Edit().Staged()
	m.editOverlay = NewEditOverlay(staged, m.keys)
	m.activeOverlay = OverlayEdit
	return m, nil
}

func (m *App) openDelete() (tea.Model, tea.Cmd) {
	id, ok := m.actionTarget()
	if !ok {
		return m, nil
	}
	t, ok := m.mgr.Find(id)
	if !ok {
		return m, nil
	}
	m.deleteOverlay = NewDeleteOverlay(t, m.keys)
	m.activeOverlay = OverlayDelete
	return m, nil
}

func (m *App) copySelectedID() (tea.Model, tea.Cmd) {
	t, ok := m.selected()
	if !ok {
		return m, nil
	}
	id := strconv.Itoa(t.ID)
	if err := clipboard.WriteAll(id); err != nil {
		debug.Logf("ui: clipboard: %v", err)
		return m, m.showToast("Clipboard is not available", true)
	}
	return m, m.showSuccess("Copied ticket #" + id + " to clipboard")
}

func (m *App) cycleTheme() (tea.Model, tea.Cmd) {
	name := theme.CycleTheme()
	if m.saveTheme != nil {
		if err := m.saveTheme(name); err != nil {
			debug.Logf("ui: save theme: %v", err)
		}
	}
	m.detailID = 0
	m.updateDetailContent()
	return m, m.showSuccess("Theme: " + name)
}

func (m *App) pageSize() int {
	if n := m.bodyHeight() - 1; n > 1 {
		return n
	}
	return 1
}
