package ui

import (
	"fmt"
	"strings"

	"helpdesk/internal/domain"
	"helpdesk/internal/ui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DeleteOverlay is a confirmation modal for deleting a ticket.
type DeleteOverlay struct {
	ticketID    int
	ticketTitle string
	keys        KeyMap
}

// DeleteConfirmedMsg is sent when deletion is confirmed.
type DeleteConfirmedMsg struct {
	TicketID int
}

// DeleteCancelledMsg is sent when the overlay is dismissed without deletion.
type DeleteCancelledMsg struct{}

// NewDeleteOverlay creates a new delete confirmation overlay.
func NewDeleteOverlay(t domain.Ticket, keys KeyMap) *DeleteOverlay {
	return &DeleteOverlay{ticketID: t.ID, ticketTitle: t.Title, keys: keys}
}

// Update handles confirm and cancel keys.
func (m *DeleteOverlay) Update(msg tea.Msg) (*DeleteOverlay, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Confirm):
		id := m.ticketID
		return m, func() tea.Msg { return DeleteConfirmedMsg{TicketID: id} }
	case key.Matches(keyMsg, m.keys.Cancel):
		return m, func() tea.Msg { return DeleteCancelledMsg{} }
	}
	return m, nil
}

// View renders the confirmation box.
func (m *DeleteOverlay) View() string {
	th := theme.Current()
	title := lipgloss.NewStyle().Foreground(th.Error()).Bold(true).Render("Delete ticket")
	divider := styleDivider().Render(strings.Repeat("─", 44))
	danger := lipgloss.NewStyle().Foreground(th.Error()).Bold(true).Render("✖")
	warning := lipgloss.NewStyle().Foreground(th.Warning()).Render("This action cannot be undone.")

	line := "  " + styleID().Render(fmt.Sprintf("#%d", m.ticketID)) + "  " +
		styleNormalText().Render(truncateText(m.ticketTitle, 36))

	lines := []string{
		title,
		divider,
		"",
		danger + " " + styleNormalText().Bold(true).Render("Delete this ticket?"),
		"",
		line,
		"",
		warning,
		"",
		divider,
		footerLine([]footerHint{{"y", "Delete"}, {"n/esc", "Cancel"}}),
	}
	return styleOverlay().BorderForeground(th.Error()).Render(strings.Join(lines, "\n"))
}
