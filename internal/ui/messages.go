package ui

import (
	"context"
	"time"

	"helpdesk/internal/domain"
	"helpdesk/internal/helpdesk"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	errorToastDuration   = 8 * time.Second
	successToastDuration = 4 * time.Second
)

type ticketsLoadedMsg struct {
	seq     int
	tickets []domain.Ticket
	err     error
}

type ticketDeletedMsg struct {
	id  int
	err error
}

type ticketUpdatedMsg struct {
	id     int
	ticket domain.Ticket
	err    error
}

type ticketCreatedMsg struct {
	ticket domain.Ticket
	err    error
}

type toastExpiredMsg struct {
	seq int
}

func scheduleToastExpiry(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// The commands below run off the update loop. They only talk to the backend;
// results are folded into the ticket manager when the message arrives.

func requestContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// loadTicketsCmd starts a list fetch. Only the most recent fetch is applied.
func (m *App) loadTicketsCmd() tea.Cmd {
	m.loadSeq++
	client, timeout, seq := m.client, m.timeout, m.loadSeq
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		list, err := client.ListTickets(ctx)
		return ticketsLoadedMsg{seq: seq, tickets: list, err: err}
	}
}

// reloadIfPending replaces a fetch still in flight, whose list predates a
// change just applied locally, with a fresh one.
func (m *App) reloadIfPending() tea.Cmd {
	if !m.loading {
		return nil
	}
	return m.loadTicketsCmd()
}

func (m *App) deleteTicketCmd(id int) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		return ticketDeletedMsg{id: id, err: client.DeleteTicket(ctx, id)}
	}
}

func (m *App) updateTicketCmd(id int, req helpdesk.UpdateTicketRequest) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		t, err := client.UpdateTicket(ctx, id, req)
		return ticketUpdatedMsg{id: id, ticket: t, err: err}
	}
}

func (m *App) createTicketCmd(req helpdesk.CreateTicketRequest) tea.Cmd {
	client, timeout := m.client, m.timeout
	return func() tea.Msg {
		ctx, cancel := requestContext(timeout)
		defer cancel()
		t, err := client.CreateTicket(ctx, req)
		return ticketCreatedMsg{ticket: t, err: err}
	}
}
