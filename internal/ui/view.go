package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerHeight = 1
	cardsHeight  = 5
	statusHeight = 1
	footerHeight = 1
	paneBorder   = 2
	minBodyRows  = 3
)

func (m *App) View() string {
	if !m.ready {
		return "Initializing..."
	}

	header := m.renderHeader()
	cards := renderCards(m.mgr.Counts(), m.width)
	status := m.renderStatusLine()

	var bottom string
	if m.searching {
		bottom = m.search.View()
	} else {
		bottom = m.renderFooter()
	}

	toastView := m.renderToast()
	bodyHeight := m.bodyHeight()
	if toastView != "" {
		bodyHeight -= lipgloss.Height(toastView)
	}
	if bodyHeight < minBodyRows {
		bodyHeight = minBodyRows
	}

	var body string
	if overlay := m.renderOverlay(); overlay != "" {
		body = lipgloss.Place(m.width, bodyHeight+paneBorder,
			lipgloss.Center, lipgloss.Center,
			overlay,
			lipgloss.WithWhitespaceChars(" "),
		)
	} else {
		body = m.renderBody(bodyHeight)
	}

	parts := []string{header, cards, status, body}
	if toastView != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toastView))
	}
	parts = append(parts, bottom)
	return strings.Join(parts, "\n")
}

func (m *App) renderHeader() string {
	title := "HELPDESK"
	if m.version != "" {
		title = fmt.Sprintf("HELPDESK %s", m.version)
	}
	view := "My tickets"
	if m.agent {
		view = "Agent queue"
	}
	left := styleAppHeader().Render(title) + " " + styleNormalText().Render(view)
	if m.loading {
		left += " " + m.spinner.View() + styleStatsDim().Render(" loading")
	}
	return left
}

// renderStatusLine summarises the view state the table is rendered from.
func (m *App) renderStatusLine() string {
	st := m.mgr.State
	parts := []string{
		fmt.Sprintf("Showing %d of %d", len(m.rows()), m.mgr.Counts().Total),
		"Rows: " + st.Entries.String(),
		"Type: " + st.Type.String(),
	}
	if st.Sort.Active() {
		parts = append(parts, fmt.Sprintf("Sort: %s %s", st.Sort.Key, st.Sort.Indicator(st.Sort.Key)))
	}
	if st.Search != "" {
		parts = append(parts, fmt.Sprintf("Search: %q", st.Search))
	}
	return styleStatsDim().Render(" " + strings.Join(parts, " • "))
}

func (m *App) renderBody(height int) string {
	rows := m.rows()
	if !m.detailVisible() {
		width := m.width - paneBorder
		if width < 1 {
			width = 1
		}
		return stylePane().Width(width).Height(height).Render(m.renderTable(rows, width, height))
	}

	detailWidth := m.detail.Width
	tableWidth := m.width - detailWidth - 2*paneBorder
	if tableWidth < 1 {
		tableWidth = 1
	}
	m.detail.Height = height
	left := stylePane().Width(tableWidth).Height(height).Render(m.renderTable(rows, tableWidth, height))
	right := stylePane().Width(detailWidth).Height(height).Render(m.detail.View())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *App) renderOverlay() string {
	switch m.activeOverlay {
	case OverlayHelp:
		return renderHelpOverlay(m.keys, m.width, m.bodyHeight())
	case OverlayDelete:
		if m.deleteOverlay != nil {
			return m.deleteOverlay.View()
		}
	case OverlayEdit:
		if m.editOverlay != nil {
			return m.editOverlay.View()
		}
	case OverlayCreate:
		if m.createOverlay != nil {
			return m.createOverlay.View()
		}
	}
	return ""
}

// bodyHeight is the row count inside the table pane.
func (m *App) bodyHeight() int {
	h := m.height - headerHeight - cardsHeight - statusHeight - footerHeight - paneBorder
	if h < minBodyRows {
		return minBodyRows
	}
	return h
}
