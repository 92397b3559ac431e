// Package helpdesk is the client for the helpdesk backend REST API.
package helpdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"helpdesk/internal/debug"
	"helpdesk/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Client defines the operations the helpdesk needs from the backend.
type Client interface {
	Signup(ctx context.Context, req SignupRequest) (User, error)
	Login(ctx context.Context, creds Credentials) (TokenResponse, error)
	ListTickets(ctx context.Context) ([]domain.Ticket, error)
	CreateTicket(ctx context.Context, req CreateTicketRequest) (domain.Ticket, error)
	UpdateTicket(ctx context.Context, id int, req UpdateTicketRequest) (domain.Ticket, error)
	DeleteTicket(ctx context.Context, id int) error
}

// TokenSource supplies the bearer token for authorized calls.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

// Token implements TokenSource.
func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken is a TokenSource that always returns the same token.
func StaticToken(token string) TokenSource {
	return TokenFunc(func(context.Context) (string, error) { return token, nil })
}

const maxErrorBody = 64 << 10

type httpClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  *zap.Logger
	newID   func() string
}

// Option configures the HTTP client.
type Option func(*httpClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(hc *httpClient) {
		if c != nil {
			hc.http = c
		}
	}
}

// WithTimeout bounds every request made by the client.
func WithTimeout(d time.Duration) Option {
	return func(hc *httpClient) {
		if d > 0 {
			hc.http.Timeout = d
		}
	}
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(hc *httpClient) {
		hc.tokens = ts
	}
}

// WithLogger overrides the structured logger used for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(hc *httpClient) {
		if l != nil {
			hc.logger = l
		}
	}
}

// NewClient constructs a Client talking to the backend at baseURL.
func NewClient(baseURL string, opts ...Option) Client {
	hc := &httpClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{},
		logger:  debug.Logger(),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(hc)
	}
	return hc
}

func (c *httpClient) Signup(ctx context.Context, req SignupRequest) (User, error) {
	const op = "signup"
	if strings.TrimSpace(req.Role) == "" {
		req.Role = DefaultRole
	}
	body, err := json.Marshal(req)
	if err != nil {
		return User{}, fmt.Errorf("%s: encode request: %w", op, err)
	}
	var user User
	if err := c.do(ctx, op, http.MethodPost, "/auth/signup", "", "application/json", body, &user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (c *httpClient) Login(ctx context.Context, creds Credentials) (TokenResponse, error) {
	const op = "login"
	form := url.Values{}
	// The backend's OAuth2 password form calls the email field "username".
	form.Set("username", strings.TrimSpace(creds.Email))
	form.Set("password", strings.TrimSpace(creds.Password))

	var tok TokenResponse
	if err := c.do(ctx, op, http.MethodPost, "/auth/login", "", "application/x-www-form-urlencoded", []byte(form.Encode()), &tok); err != nil {
		return TokenResponse{}, err
	}
	if strings.TrimSpace(tok.AccessToken) == "" {
		return TokenResponse{}, decodeError(op, fmt.Errorf("empty access_token"))
	}
	return tok, nil
}

func (c *httpClient) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	const op = "list tickets"
	token, err := c.bearer(ctx, op)
	if err != nil {
		return nil, err
	}
	var tickets []domain.Ticket
	if err := c.do(ctx, op, http.MethodGet, "/tickets/", token, "", nil, &tickets); err != nil {
		return nil, err
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

func (c *httpClient) CreateTicket(ctx context.Context, req CreateTicketRequest) (domain.Ticket, error) {
	const op = "create ticket"
	if err := req.Validate(); err != nil {
		return domain.Ticket{}, err
	}
	token, err := c.bearer(ctx, op)
	if err != nil {
		return domain.Ticket{}, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("%s: encode request: %w", op, err)
	}
	var created domain.Ticket
	if err := c.do(ctx, op, http.MethodPost, "/tickets/", token, "application/json", body, &created); err != nil {
		return domain.Ticket{}, err
	}
	return created, nil
}

func (c *httpClient) UpdateTicket(ctx context.Context, id int, req UpdateTicketRequest) (domain.Ticket, error) {
	op := fmt.Sprintf("update ticket %d", id)
	if err := req.Validate(); err != nil {
		return domain.Ticket{}, err
	}
	token, err := c.bearer(ctx, op)
	if err != nil {
		return domain.Ticket{}, err
	}
	body, err := json.Marshal(req)
	if err != nil {
		return domain.Ticket{}, fmt.Errorf("%s: encode request: %w", op, err)
	}
	var updated domain.Ticket
	if err := c.do(ctx, op, http.MethodPut, fmt.Sprintf("/tickets/%d", id), token, "application/json", body, &updated); err != nil {
		return domain.Ticket{}, err
	}
	return updated, nil
}

func (c *httpClient) DeleteTicket(ctx context.Context, id int) error {
	op := fmt.Sprintf("delete ticket %d", id)
	token, err := c.bearer(ctx, op)
	if err != nil {
		return err
	}
	return c.do(ctx, op, http.MethodDelete, fmt.Sprintf("/tickets/%d", id), token, "", nil, nil)
}

// bearer fetches the token before any request is built, so a missing token
// never reaches the network.
func (c *httpClient) bearer(ctx context.Context, op string) (string, error) {
	if c.tokens == nil {
		return "", notAuthenticated(op, nil)
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return "", notAuthenticated(op, err)
	}
	if strings.TrimSpace(token) == "" {
		return "", notAuthenticated(op, nil)
	}
	return token, nil
}

// do performs one request. out may be nil when the response body is ignored.
func (c *httpClient) do(ctx context.Context, op, method, path, token, contentType string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return transportError(op, err)
	}
	reqID := c.newID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("api request failed",
			zap.String("request_id", reqID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return transportError(op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("api request",
		zap.String("request_id", reqID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return classifyStatus(op, resp.StatusCode, data)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return decodeError(op, err)
	}
	return nil
}
