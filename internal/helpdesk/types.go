package helpdesk

import (
	"strings"

	"helpdesk/internal/domain"
)

// DefaultRole is sent on signup when the caller leaves Role empty.
const DefaultRole = "User"

// SignupRequest is the body of POST /auth/signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// User is the account representation returned by signup.
type User struct {
	ID        int    `json:"user_id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

// Credentials are exchanged for a bearer token at POST /auth/login.
type Credentials struct {
	Email    string
	Password string
}

// TokenResponse is the body returned by POST /auth/login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateTicketRequest is the body of POST /tickets/.
type CreateTicketRequest struct {
	Type        domain.TicketType `json:"type"`
	Category    string            `json:"category"`
	Priority    domain.Priority   `json:"priority"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
}

// Validate checks the request before it is sent.
func (r CreateTicketRequest) Validate() error {
	if err := r.Type.Validate(); err != nil {
		return err
	}
	if err := r.Priority.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.Title) == "" {
		return invalidRequest("title is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		return invalidRequest("description is required")
	}
	return nil
}

// UpdateTicketRequest is the body of PUT /tickets/{id}. It names exactly the
// fields a requester may change; everything else stays as the backend has it.
type UpdateTicketRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateRequestFor builds the update body from a staged ticket copy.
func UpdateRequestFor(t domain.Ticket) UpdateTicketRequest {
	return UpdateTicketRequest{Title: t.Title, Description: t.Description}
}

// Validate checks the request before it is sent.
func (r UpdateTicketRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return invalidRequest("title is required")
	}
	return nil
}
