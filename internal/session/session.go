// Package session owns the bearer token lifecycle: login stores it, logout
// removes it, and everything that talks to the backend asks the Session for it.
package session

import (
	"context"
	"strings"
	"time"

	"helpdesk/internal/debug"
	appErrors "helpdesk/internal/errors"
	"helpdesk/internal/helpdesk"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenKey is the well-known store key the bearer token lives under.
const TokenKey = "token"

// ErrNoToken is returned when no usable token is stored.
var ErrNoToken = appErrors.New(appErrors.CodeNotAuthenticated, "not logged in", nil)

// Authenticator exchanges credentials for a token.
type Authenticator interface {
	Login(ctx context.Context, creds helpdesk.Credentials) (helpdesk.TokenResponse, error)
}

// Claims is what the client can read from a token without verifying it.
type Claims struct {
	Subject   string
	ExpiresAt time.Time // zero when the token carries no expiry
}

// Expired reports whether the token had expired at now.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// ParseClaims decodes the JWT payload of token. The signature is not checked;
// only the backend can do that. Opaque tokens yield an error.
func ParseClaims(token string) (Claims, error) {
	var registered jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &registered); err != nil {
		return Claims{}, err
	}
	c := Claims{Subject: registered.Subject}
	if registered.ExpiresAt != nil {
		c.ExpiresAt = registered.ExpiresAt.Time
	}
	return c, nil
}

// Session is the explicit authentication context passed to the REST client
// and the dashboard.
type Session struct {
	store Store
	now   func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// New returns a Session persisting its token in store.
func New(store Store, opts ...Option) *Session {
	s := &Session{store: store, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login exchanges credentials for a token and persists it. A failed login
// leaves any previously stored token in place.
func (s *Session) Login(ctx context.Context, auth Authenticator, email, password string) error {
	creds := helpdesk.Credentials{
		Email:    strings.TrimSpace(email),
		Password: strings.TrimSpace(password),
	}
	tok, err := auth.Login(ctx, creds)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, TokenKey, tok.AccessToken); err != nil {
		return err
	}
	debug.Logger().Debug("session stored", zap.String("email", creds.Email))
	return nil
}

// Logout removes the stored token.
func (s *Session) Logout(ctx context.Context) error {
	return s.store.Delete(ctx, TokenKey)
}

// Token returns the stored bearer token. A missing, blank or expired token is
// reported as ErrNoToken. It satisfies helpdesk.TokenSource.
func (s *Session) Token(ctx context.Context) (string, error) {
	token, ok, err := s.store.Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	token = strings.TrimSpace(token)
	if !ok || token == "" {
		return "", ErrNoToken
	}
	if claims, err := ParseClaims(token); err == nil && claims.Expired(s.now()) {
		debug.Logf("stored token expired at %s", claims.ExpiresAt.Format(time.RFC3339))
		return "", ErrNoToken
	}
	return token, nil
}

// LoggedIn reports whether a usable token is stored.
func (s *Session) LoggedIn(ctx context.Context) bool {
	_, err := s.Token(ctx)
	return err == nil
}

// Claims returns the decoded claims of the stored token. Opaque tokens yield
// empty claims without error.
func (s *Session) Claims(ctx context.Context) (Claims, error) {
	token, err := s.Token(ctx)
	if err != nil {
		return Claims{}, err
	}
	claims, err := ParseClaims(token)
	if err != nil {
		return Claims{}, nil
	}
	return claims, nil
}

var _ helpdesk.TokenSource = (*Session)(nil)
