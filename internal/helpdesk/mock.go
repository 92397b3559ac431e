package helpdesk

import (
	"context"
	"errors"
	"sync"

	"helpdesk/internal/domain"
)

// ErrMockNotImplemented is returned when a MockClient method lacks an override.
var ErrMockNotImplemented = errors.New("helpdesk.MockClient: method not implemented")

// MockClient is a test double for the Client interface.
type MockClient struct {
	SignupFn       func(context.Context, SignupRequest) (User, error)
	LoginFn        func(context.Context, Credentials) (TokenResponse, error)
	ListTicketsFn  func(context.Context) ([]domain.Ticket, error)
	CreateTicketFn func(context.Context, CreateTicketRequest) (domain.Ticket, error)
	UpdateTicketFn func(context.Context, int, UpdateTicketRequest) (domain.Ticket, error)
	DeleteTicketFn func(context.Context, int) error

	mu                   sync.Mutex
	SignupCallCount      int
	LoginCallCount       int
	ListTicketsCallCount int
	CreateCallArgs       []CreateTicketRequest
	UpdateCallArgs       []UpdateCallArg
	DeleteCallArgs       []int
}

// UpdateCallArg captures arguments passed to UpdateTicket.
type UpdateCallArg struct {
	ID      int
	Request UpdateTicketRequest
}

// NewMockClient returns a MockClient with zeroed handlers.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Signup invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) Signup(ctx context.Context, req SignupRequest) (User, error) {
	m.mu.Lock()
	m.SignupCallCount++
	m.mu.Unlock()

	if m.SignupFn == nil {
		return User{}, ErrMockNotImplemented
	}
	return m.SignupFn(ctx, req)
}

// Login invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) Login(ctx context.Context, creds Credentials) (TokenResponse, error) {
	m.mu.Lock()
	m.LoginCallCount++
	m.mu.Unlock()

	if m.LoginFn == nil {
		return TokenResponse{}, ErrMockNotImplemented
	}
	return m.LoginFn(ctx, creds)
}

// ListTickets invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	m.mu.Lock()
	m.ListTicketsCallCount++
	m.mu.Unlock()

	if m.ListTicketsFn == nil {
		return nil, ErrMockNotImplemented
	}
	return m.ListTicketsFn(ctx)
}

// CreateTicket invokes the configured stub or echoes the request back as ticket 1.
func (m *MockClient) CreateTicket(ctx context.Context, req CreateTicketRequest) (domain.Ticket, error) {
	m.mu.Lock()
	m.CreateCallArgs = append(m.CreateCallArgs, req)
	m.mu.Unlock()

	if m.CreateTicketFn == nil {
		return domain.Ticket{
			ID:          1,
			Type:        req.Type,
			Category:    req.Category,
			Title:       req.Title,
			Description: req.Description,
			Status:      domain.StatusOpen,
			Priority:    req.Priority,
		}, nil
	}
	return m.CreateTicketFn(ctx, req)
}

// UpdateTicket invokes the configured stub or returns ErrMockNotImplemented.
func (m *MockClient) UpdateTicket(ctx context.Context, id int, req UpdateTicketRequest) (domain.Ticket, error) {
	m.mu.Lock()
	m.UpdateCallArgs = append(m.UpdateCallArgs, UpdateCallArg{ID: id, Request: req})
	m.mu.Unlock()

	if m.UpdateTicketFn == nil {
		return domain.Ticket{}, ErrMockNotImplemented
	}
	return m.UpdateTicketFn(ctx, id, req)
}

// DeleteTicket invokes the configured stub or returns nil (no-op by default).
func (m *MockClient) DeleteTicket(ctx context.Context, id int) error {
	m.mu.Lock()
	m.DeleteCallArgs = append(m.DeleteCallArgs, id)
	m.mu.Unlock()

	if m.DeleteTicketFn == nil {
		return nil
	}
	return m.DeleteTicketFn(ctx, id)
}

// Calls returns a snapshot of the recorded delete and update arguments.
func (m *MockClient) Calls() (deletes []int, updates []UpdateCallArg) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]int(nil), m.DeleteCallArgs...), append([]UpdateCallArg(nil), m.UpdateCallArgs...)
}
