package ui

import (
	"fmt"

	"helpdesk/internal/debug"
	appErrors "helpdesk/internal/errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ticketsLoadedMsg:
		if msg.seq != m.loadSeq {
			debug.Logf("ui: dropping stale ticket list (load %d, latest %d)", msg.seq, m.loadSeq)
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.showError(msg.err, "Could not load tickets")
		}
		m.mgr.ApplyLoaded(msg.tickets)
		m.viewChanged()
		return m, nil

	case ticketDeletedMsg:
		if msg.err != nil {
			return m, m.showError(msg.err, fmt.Sprintf("Could not delete ticket #%d", msg.id))
		}
		m.mgr.ApplyDeleted(msg.id)
		if m.activeOverlay == OverlayEdit && !m.mgr.Edit().IsOpen() {
			m.closeOverlay()
		}
		m.viewChanged()
		return m, tea.Batch(m.showSuccess(fmt.Sprintf("Deleted ticket #%d", msg.id)), m.reloadIfPending())

	case ticketUpdatedMsg:
		if msg.err != nil {
			if m.editingTicket(msg.id) {
				m.editOverlay.SetSaving(false)
			}
			return m, m.showError(msg.err, fmt.Sprintf("Could not save ticket #%d", msg.id))
		}
		m.mgr.ApplyUpdated(msg.ticket)
		if m.editingTicket(msg.id) && !m.mgr.Edit().IsOpen() {
			m.closeOverlay()
		}
		m.viewChanged()
		return m, tea.Batch(m.showSuccess(fmt.Sprintf("Saved ticket #%d", msg.id)), m.reloadIfPending())

	case ticketCreatedMsg:
		if msg.err != nil {
			text := appErrors.UserMessage(msg.err, "Could not create ticket")
			if m.createOverlay != nil {
				m.createOverlay.SetSaving(false)
				m.createOverlay.SetError(text)
			}
			return m, m.showToast(text, true)
		}
		m.mgr.ApplyCreated(msg.ticket)
		if m.activeOverlay == OverlayCreate {
			m.closeOverlay()
		}
		m.selectID(msg.ticket.ID)
		m.viewChanged()
		return m, tea.Batch(m.showSuccess(fmt.Sprintf("Created ticket #%d", msg.ticket.ID)), m.reloadIfPending())

	case DeleteConfirmedMsg:
		m.closeOverlay()
		return m, m.deleteTicketCmd(msg.TicketID)

	case DeleteCancelledMsg:
		m.closeOverlay()
		return m, nil

	case EditSubmittedMsg:
		if !m.mgr.StageText(msg.Title, msg.Description) {
			m.closeOverlay()
			return m, nil
		}
		id, req, _ := m.mgr.PendingUpdate()
		if err := req.Validate(); err != nil {
			return m, m.showError(err, "Title is required")
		}
		if m.editOverlay != nil {
			m.editOverlay.SetSaving(true)
		}
		return m, m.updateTicketCmd(id, req)

	case EditCancelledMsg:
		m.mgr.CancelEdit()
		m.closeOverlay()
		return m, nil

	case CreateSubmittedMsg:
		if m.createOverlay != nil {
			m.createOverlay.SetSaving(true)
		}
		return m, m.createTicketCmd(msg.Request)

	case CreateCancelledMsg:
		m.closeOverlay()
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toast.seq {
			m.toast = toast{seq: m.toast.seq}
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.detailVisible() {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// editingTicket reports whether the edit modal is showing ticket id.
func (m *App) editingTicket(id int) bool {
	return m.activeOverlay == OverlayEdit && m.editOverlay != nil && m.editOverlay.ticket.ID == id
}

func (m *App) showError(err error, fallback string) tea.Cmd {
	debug.Logf("ui: %s: %v", fallback, err)
	return m.showToast(appErrors.UserMessage(err, fallback), true)
}

func (m *App) showSuccess(text string) tea.Cmd {
	return m.showToast(text, false)
}
