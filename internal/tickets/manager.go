package tickets

import (
	"context"
	"strings"

	"helpdesk/internal/debug"
	"helpdesk/internal/domain"
	appErrors "helpdesk/internal/errors"
	"helpdesk/internal/helpdesk"
)

// Menu is the row-action menu state: closed, or open for exactly one ticket.
type Menu struct {
	open bool
	id   int
}

// MenuClosed is the closed menu.
func MenuClosed() Menu { return Menu{} }

// MenuOpen is the menu open on ticket id.
func MenuOpen(id int) Menu { return Menu{open: true, id: id} }

// IsOpen reports whether the menu is open.
func (m Menu) IsOpen() bool { return m.open }

// ID returns the ticket the menu is open on.
func (m Menu) ID() (int, bool) { return m.id, m.open }

// OpenOn reports whether the menu is open on ticket id.
func (m Menu) OpenOn(id int) bool { return m.open && m.id == id }

// Edit is the edit modal state: closed, or open holding a staged copy.
type Edit struct {
	open   bool
	staged domain.Ticket
}

// EditClosed is the closed modal.
func EditClosed() Edit { return Edit{} }

// IsOpen reports whether the modal is open.
func (e Edit) IsOpen() bool { return e.open }

// Staged returns a copy of the ticket being edited.
func (e Edit) Staged() (domain.Ticket, bool) {
	if !e.open {
		return domain.Ticket{}, false
	}
	return e.staged.Clone(), true
}

// Manager holds the ticket list for one dashboard plus its ephemeral UI state.
// It is not safe for concurrent use; the owner applies results on one goroutine.
//
// Every backend action comes in two halves: the blocking call (Load, Delete,
// CommitEdit, Create) and the Apply* method that folds a successful result into
// local state. Callers that run requests elsewhere use only the Apply* half.
type Manager struct {
	client  helpdesk.Client
	tickets []domain.Ticket
	loaded  bool

	State State
	menu  Menu
	edit  Edit
}

// NewManager returns an empty manager backed by client.
func NewManager(client helpdesk.Client) *Manager {
	return &Manager{
		client: client,
		State:  DefaultState(),
	}
}

// Tickets returns a copy of the full cached list in its stored order.
func (m *Manager) Tickets() []domain.Ticket {
	out := make([]domain.Ticket, len(m.tickets))
	for i, t := range m.tickets {
		out[i] = t.Clone()
	}
	return out
}

// Loaded reports whether a list has been applied.
func (m *Manager) Loaded() bool { return m.loaded }

// Displayed returns the rows for the current state.
func (m *Manager) Displayed() []domain.Ticket {
	return Display(m.tickets, m.State)
}

// Counts tallies the full list by status bucket.
func (m *Manager) Counts() domain.Counts {
	return domain.CountByBucket(m.tickets)
}

// Find returns the cached ticket with id.
func (m *Manager) Find(id int) (domain.Ticket, bool) {
	if i := m.indexOf(id); i >= 0 {
		return m.tickets[i].Clone(), true
	}
	return domain.Ticket{}, false
}

// Load fetches the list from the backend and replaces the cache.
func (m *Manager) Load(ctx context.Context) error {
	list, err := m.client.ListTickets(ctx)
	if err != nil {
		return err
	}
	m.ApplyLoaded(list)
	return nil
}

// ApplyLoaded replaces the cache. Duplicate ids keep their first occurrence.
func (m *Manager) ApplyLoaded(list []domain.Ticket) {
	seen := make(map[int]struct{}, len(list))
	tickets := make([]domain.Ticket, 0, len(list))
	for _, t := range list {
		if _, dup := seen[t.ID]; dup {
			debug.Logf("dropping duplicate ticket id %d from list", t.ID)
			continue
		}
		seen[t.ID] = struct{}{}
		tickets = append(tickets, t.Clone())
	}
	m.tickets = tickets
	m.loaded = true
	if id, ok := m.menu.ID(); ok && m.indexOf(id) < 0 {
		m.menu = MenuClosed()
	}
}

// Delete removes ticket id on the backend and then locally.
func (m *Manager) Delete(ctx context.Context, id int) error {
	if err := m.client.DeleteTicket(ctx, id); err != nil {
		return err
	}
	m.ApplyDeleted(id)
	return nil
}

// ApplyDeleted drops id from the cache and closes the row menu. An id that is
// no longer cached leaves the list as it is.
func (m *Manager) ApplyDeleted(id int) {
	if i := m.indexOf(id); i >= 0 {
		m.tickets = append(m.tickets[:i:i], m.tickets[i+1:]...)
	}
	m.menu = MenuClosed()
	if staged, ok := m.edit.Staged(); ok && staged.ID == id {
		m.edit = EditClosed()
	}
}

// OpenEdit stages a copy of t and opens the modal. The row menu closes.
func (m *Manager) OpenEdit(t domain.Ticket) {
	m.edit = Edit{open: true, staged: t.Clone()}
	m.menu = MenuClosed()
}

// OpenEditByID opens the modal on a cached ticket.
func (m *Manager) OpenEditByID(id int) bool {
	t, ok := m.Find(id)
	if !ok {
		return false
	}
	m.OpenEdit(t)
	return true
}

// Edit returns the modal state.
func (m *Manager) Edit() Edit { return m.edit }

// StageText replaces the editable fields of the staged copy.
func (m *Manager) StageText(title, description string) bool {
	if !m.edit.open {
		return false
	}
	m.edit.staged.Title = title
	m.edit.staged.Description = description
	return true
}

// CancelEdit closes the modal and discards the staged copy.
func (m *Manager) CancelEdit() {
	m.edit = EditClosed()
}

// PendingUpdate returns the request CommitEdit would send.
func (m *Manager) PendingUpdate() (int, helpdesk.UpdateTicketRequest, bool) {
	staged, ok := m.edit.Staged()
	if !ok {
		return 0, helpdesk.UpdateTicketRequest{}, false
	}
	req := helpdesk.UpdateRequestFor(staged)
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	return staged.ID, req, true
}

// CommitEdit sends the staged copy to the backend. On success the cached
// ticket is replaced by the server's version and the modal closes; on failure
// both stay as they were. A blank title is rejected without a request.
func (m *Manager) CommitEdit(ctx context.Context) (domain.Ticket, error) {
	id, req, ok := m.PendingUpdate()
	if !ok {
		return domain.Ticket{}, appErrors.New(appErrors.CodeInvalidTicket, "no ticket is being edited", nil)
	}
	if err := req.Validate(); err != nil {
		return domain.Ticket{}, err
	}
	updated, err := m.client.UpdateTicket(ctx, id, req)
	if err != nil {
		return domain.Ticket{}, err
	}
	m.ApplyUpdated(updated)
	return updated, nil
}

// ApplyUpdated swaps in the server's representation. The modal closes only
// when it is staged on the same ticket; an editor opened on another ticket
// while the save was in flight stays as it is.
func (m *Manager) ApplyUpdated(t domain.Ticket) {
	if i := m.indexOf(t.ID); i >= 0 {
		m.tickets[i] = t.Clone()
	}
	if staged, ok := m.edit.Staged(); ok && staged.ID == t.ID {
		m.edit = EditClosed()
	}
}

// Create submits a new ticket and caches the server's version.
func (m *Manager) Create(ctx context.Context, req helpdesk.CreateTicketRequest) (domain.Ticket, error) {
	created, err := m.client.CreateTicket(ctx, req)
	if err != nil {
		return domain.Ticket{}, err
	}
	m.ApplyCreated(created)
	return created, nil
}

// ApplyCreated adds t to the cache, replacing any entry with the same id.
func (m *Manager) ApplyCreated(t domain.Ticket) {
	if i := m.indexOf(t.ID); i >= 0 {
		m.tickets[i] = t.Clone()
		return
	}
	m.tickets = append(m.tickets, t.Clone())
}

// OpenMenu opens the row menu on id, closing any other.
func (m *Manager) OpenMenu(id int) {
	m.menu = MenuOpen(id)
}

// ToggleMenu opens the menu on id, or closes it when it is already open there.
func (m *Manager) ToggleMenu(id int) {
	if m.menu.OpenOn(id) {
		m.menu = MenuClosed()
		return
	}
	m.OpenMenu(id)
}

// CloseMenu closes the row menu.
func (m *Manager) CloseMenu() {
	m.menu = MenuClosed()
}

// Menu returns the row menu state.
func (m *Manager) Menu() Menu { return m.menu }

// Dismiss closes whatever is open: the modal first, otherwise the menu. It
// reports whether anything was closed.
func (m *Manager) Dismiss() bool {
	switch {
	case m.edit.open:
		m.edit = EditClosed()
		return true
	case m.menu.open:
		m.menu = MenuClosed()
		return true
	}
	return false
}

func (m *Manager) indexOf(id int) int {
	for i, t := range m.tickets {
		if t.ID == id {
			return i
		}
	}
	return -1
}
