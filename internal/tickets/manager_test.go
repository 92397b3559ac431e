package tickets

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"helpdesk/internal/domain"
	appErrors "helpdesk/internal/errors"
	"helpdesk/internal/helpdesk"
)

func loadedManager(t *testing.T, list []domain.Ticket) (*Manager, *helpdesk.MockClient) {
	t.Helper()
	client := helpdesk.NewMockClient()
	client.ListTicketsFn = func(context.Context) ([]domain.Ticket, error) {
		return list, nil
	}
	m := NewManager(client)
	m.State.Entries = All
	if err := m.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return m, client
}

func TestManagerLoad(t *testing.T) {
	m, client := loadedManager(t, sampleTickets())
	if !m.Loaded() {
		t.Fatalf("expected manager to be loaded")
	}
	if client.ListTicketsCallCount != 1 {
		t.Fatalf("expected one list call, got %d", client.ListTicketsCallCount)
	}
	if got := ids(m.Displayed()); !reflect.DeepEqual(got, []int{1, 2, 4, 5, 7}) {
		t.Fatalf("unexpected display %v", got)
	}
	c := m.Counts()
	if c.Total != 5 || c.Open != 2 || c.InProgress != 1 || c.Resolved != 1 || c.Unresolved != 1 {
		t.Fatalf("unexpected counts %+v", c)
	}
}

func TestManagerLoadWithoutTokenLeavesStateEmpty(t *testing.T) {
	client := helpdesk.NewMockClient()
	client.ListTicketsFn = func(context.Context) ([]domain.Ticket, error) {
		return nil, appErrors.New(appErrors.CodeNotAuthenticated, "list tickets: not logged in", nil)
	}
	m := NewManager(client)
	err := m.Load(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeNotAuthenticated) {
		t.Fatalf("expected not authenticated, got %v", err)
	}
	if m.Loaded() || len(m.Tickets()) != 0 {
		t.Fatalf("expected no tickets after failed load")
	}
}

func TestApplyLoadedDropsDuplicateIDs(t *testing.T) {
	m := NewManager(helpdesk.NewMockClient())
	m.ApplyLoaded([]domain.Ticket{{ID: 1, Title: "first"}, {ID: 1, Title: "second"}, {ID: 2, Title: "x"}})
	tickets := m.Tickets()
	if len(tickets) != 2 || tickets[0].Title != "first" {
		t.Fatalf("unexpected tickets %+v", tickets)
	}
}

func TestManagerDeleteRemovesExactlyOneRow(t *testing.T) {
	list := []domain.Ticket{{ID: 4}, {ID: 5}, {ID: 6}, {ID: 15}}
	m, client := loadedManager(t, list)
	m.OpenMenu(5)

	if err := m.Delete(context.Background(), 5); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if got := ids(m.Tickets()); !reflect.DeepEqual(got, []int{4, 6, 15}) {
		t.Fatalf("expected only id 5 removed, got %v", got)
	}
	if m.Menu().IsOpen() {
		t.Fatalf("expected row menu to close after delete")
	}
	deletes, _ := client.Calls()
	if !reflect.DeepEqual(deletes, []int{5}) {
		t.Fatalf("expected delete call for 5, got %v", deletes)
	}
}

func TestManagerDeleteFailureLeavesList(t *testing.T) {
	m, client := loadedManager(t, sampleTickets())
	client.DeleteTicketFn = func(context.Context, int) error {
		return appErrors.Error{Code: appErrors.CodeServer, Status: 500}
	}
	m.OpenMenu(2)
	before := m.Tickets()

	err := m.Delete(context.Background(), 2)
	if !appErrors.IsCode(err, appErrors.CodeServer) {
		t.Fatalf("expected server error, got %v", err)
	}
	if !reflect.DeepEqual(m.Tickets(), before) {
		t.Fatalf("list changed after failed delete")
	}
	if !m.Menu().OpenOn(2) {
		t.Fatalf("menu should stay open after failed delete")
	}
}

func TestManagerDeleteMissingIDIsNoop(t *testing.T) {
	m, _ := loadedManager(t, sampleTickets())
	before := m.Tickets()
	if err := m.Delete(context.Background(), 99); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if !reflect.DeepEqual(m.Tickets(), before) {
		t.Fatalf("list changed when deleting an absent id")
	}
	m.ApplyDeleted(99)
	if !reflect.DeepEqual(m.Tickets(), before) {
		t.Fatalf("ApplyDeleted changed list for an absent id")
	}
}

func TestManagerDeleteClosesEditOnSameTicket(t *testing.T) {
	m, _ := loadedManager(t, sampleTickets())
	m.OpenEditByID(4)
	m.ApplyDeleted(4)
	if m.Edit().IsOpen() {
		t.Fatalf("expected edit modal for deleted ticket to close")
	}

	m.OpenEditByID(2)
	m.ApplyDeleted(7)
	if !m.Edit().IsOpen() {
		t.Fatalf("deleting another ticket should keep the modal open")
	}
}

func TestRowMenuSingleOpen(t *testing.T) {
	m := NewManager(helpdesk.NewMockClient())
	m.OpenMenu(1)
	m.OpenMenu(2)
	if id, ok := m.Menu().ID(); !ok || id != 2 {
		t.Fatalf("expected menu open on 2 only, got %d %v", id, ok)
	}
	if m.Menu().OpenOn(1) {
		t.Fatalf("menu on row 1 should have closed")
	}

	m.ToggleMenu(2)
	if m.Menu().IsOpen() {
		t.Fatalf("toggling the open row should close the menu")
	}
	m.ToggleMenu(3)
	if !m.Menu().OpenOn(3) {
		t.Fatalf("toggling a closed row should open it")
	}
	m.CloseMenu()
	if m.Menu().IsOpen() {
		t.Fatalf("CloseMenu should close the menu")
	}
}

func TestDismissClosesModalThenMenu(t *testing.T) {
	m, _ := loadedManager(t, sampleTickets())
	if m.Dismiss() {
		t.Fatalf("nothing open, Dismiss should report false")
	}
	m.OpenMenu(1)
	if !m.Dismiss() || m.Menu().IsOpen() {
		t.Fatalf("Dismiss should close the menu")
	}
	m.OpenEditByID(1)
	if !m.Dismiss() || m.Edit().IsOpen() {
		t.Fatalf("Dismiss should close the modal")
	}
}

func TestOpenEditStagesCopy(t *testing.T) {
	resp := "Looking into it"
	list := []domain.Ticket{{ID: 1, Title: "VPN", Description: "down", AgentResponse: &resp}}
	m, client := loadedManager(t, list)
	m.OpenMenu(1)

	if !m.OpenEditByID(1) {
		t.Fatalf("OpenEditByID returned false")
	}
	if m.Menu().IsOpen() {
		t.Fatalf("opening the modal should close the row menu")
	}
	if !m.StageText("VPN broken", "still down") {
		t.Fatalf("StageText returned false with modal open")
	}
	cached, _ := m.Find(1)
	if cached.Title != "VPN" {
		t.Fatalf("staging must not touch the cached ticket, got %q", cached.Title)
	}
	if len(client.UpdateCallArgs) != 0 {
		t.Fatalf("opening the modal must not call the backend")
	}
	if m.OpenEditByID(42) {
		t.Fatalf("OpenEditByID should fail for unknown ids")
	}
}

func TestCommitEditSuccess(t *testing.T) {
	m, client := loadedManager(t, sampleTickets())
	client.UpdateTicketFn = func(_ context.Context, id int, req helpdesk.UpdateTicketRequest) (domain.Ticket, error) {
		return domain.Ticket{ID: id, Type: domain.TypeService, Title: req.Title, Description: req.Description, Status: domain.StatusAssigned, Priority: domain.PriorityHigh}, nil
	}

	m.OpenEditByID(2)
	m.StageText("  Login broken ", "cannot sign in")
	updated, err := m.CommitEdit(context.Background())
	if err != nil {
		t.Fatalf("CommitEdit returned error: %v", err)
	}
	if m.Edit().IsOpen() {
		t.Fatalf("modal should close after commit")
	}
	_, updates := client.Calls()
	if len(updates) != 1 || updates[0].ID != 2 || updates[0].Request.Title != "Login broken" {
		t.Fatalf("unexpected update calls %+v", updates)
	}
	cached, _ := m.Find(2)
	if cached.Title != "Login broken" || cached.Status != domain.StatusAssigned || updated.Status != domain.StatusAssigned {
		t.Fatalf("expected server representation to replace cached ticket, got %+v", cached)
	}
	if len(m.Tickets()) != 5 {
		t.Fatalf("commit must not add or remove tickets")
	}
}

func TestCommitEditFailureKeepsModalAndTicket(t *testing.T) {
	m, client := loadedManager(t, sampleTickets())
	client.UpdateTicketFn = func(context.Context, int, helpdesk.UpdateTicketRequest) (domain.Ticket, error) {
		return domain.Ticket{}, appErrors.Error{Code: appErrors.CodeRejected, Detail: "Invalid ticket", Status: 400}
	}
	before, _ := m.Find(4)

	m.OpenEditByID(4)
	m.StageText("changed", "changed too")
	_, err := m.CommitEdit(context.Background())
	if !appErrors.IsCode(err, appErrors.CodeRejected) {
		t.Fatalf("expected rejected error, got %v", err)
	}
	after, _ := m.Find(4)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("cached ticket changed after failed update: %+v", after)
	}
	staged, ok := m.Edit().Staged()
	if !ok || staged.Title != "changed" {
		t.Fatalf("modal should stay open with the staged edits, got %+v %v", staged, ok)
	}
}

func TestCommitEditRejectsBlankTitle(t *testing.T) {
	m, client := loadedManager(t, sampleTickets())

	m.OpenEditByID(2)
	m.StageText("   ", "still broken")
	if _, err := m.CommitEdit(context.Background()); !appErrors.IsCode(err, appErrors.CodeInvalidTicket) {
		t.Fatalf("expected invalid ticket error, got %v", err)
	}
	if _, updates := client.Calls(); len(updates) != 0 {
		t.Fatalf("blank title must not reach the backend, got %+v", updates)
	}
	if !m.Edit().IsOpen() {
		t.Fatalf("modal should stay open so the title can be fixed")
	}
}

func TestApplyUpdatedKeepsEditorOnOtherTicket(t *testing.T) {
	m, _ := loadedManager(t, sampleTickets())

	m.OpenEditByID(4)
	m.StageText("Printer jam on floor 3", "")
	m.ApplyUpdated(domain.Ticket{ID: 2, Type: domain.TypeService, Title: "Login issue (saved)", Status: domain.StatusOpen, Priority: domain.PriorityHigh})

	staged, ok := m.Edit().Staged()
	if !ok || staged.ID != 4 || staged.Title != "Printer jam on floor 3" {
		t.Fatalf("editor on another ticket should survive, got %+v %v", staged, ok)
	}
	if cached, _ := m.Find(2); cached.Title != "Login issue (saved)" {
		t.Fatalf("server representation not applied, got %+v", cached)
	}

	m.ApplyUpdated(domain.Ticket{ID: 4, Type: domain.TypeAsset, Title: "Printer jam on floor 3", Status: domain.StatusResolved, Priority: domain.PriorityMedium})
	if m.Edit().IsOpen() {
		t.Fatalf("modal should close when its own ticket is saved")
	}
}

func TestCommitEditWithoutModal(t *testing.T) {
	m := NewManager(helpdesk.NewMockClient())
	if _, err := m.CommitEdit(context.Background()); !appErrors.IsCode(err, appErrors.CodeInvalidTicket) {
		t.Fatalf("expected invalid ticket error, got %v", err)
	}
	if m.StageText("a", "b") {
		t.Fatalf("StageText should fail with no modal open")
	}
}

func TestCreateAppendsServerTicket(t *testing.T) {
	m, client := loadedManager(t, sampleTickets())
	req := helpdesk.CreateTicketRequest{Type: domain.TypeAsset, Category: "Printer", Priority: domain.PriorityLow, Title: "Toner", Description: "empty"}
	client.CreateTicketFn = func(context.Context, helpdesk.CreateTicketRequest) (domain.Ticket, error) {
		return domain.Ticket{ID: 3, Type: req.Type, Title: req.Title, Status: domain.StatusOpen, Priority: req.Priority}, nil
	}

	if _, err := m.Create(context.Background(), req); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got := ids(m.Displayed()); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5, 7}) {
		t.Fatalf("unexpected display after create %v", got)
	}

	client.CreateTicketFn = func(context.Context, helpdesk.CreateTicketRequest) (domain.Ticket, error) {
		return domain.Ticket{}, errors.New("boom")
	}
	if _, err := m.Create(context.Background(), req); err == nil {
		t.Fatalf("expected error")
	}
	if len(m.Tickets()) != 6 {
		t.Fatalf("failed create must not change the list")
	}
}

func TestTicketsReturnsCopies(t *testing.T) {
	m, _ := loadedManager(t, sampleTickets())
	list := m.Tickets()
	list[0].Title = "mutated"
	if cached, _ := m.Find(list[0].ID); cached.Title == "mutated" {
		t.Fatalf("Tickets must return copies")
	}
}
