package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	appErrors "helpdesk/internal/errors"
	"helpdesk/internal/helpdesk"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, sub string, exp time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{Subject: sub}
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func loginReturning(token string) *helpdesk.MockClient {
	m := helpdesk.NewMockClient()
	m.LoginFn = func(_ context.Context, creds helpdesk.Credentials) (helpdesk.TokenResponse, error) {
		return helpdesk.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
	}
	return m
}

func TestLoginPersistsTokenAndLogoutRemovesIt(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(store)

	var gotCreds helpdesk.Credentials
	client := loginReturning("tok-1")
	client.LoginFn = func(_ context.Context, creds helpdesk.Credentials) (helpdesk.TokenResponse, error) {
		gotCreds = creds
		return helpdesk.TokenResponse{AccessToken: "tok-1"}, nil
	}

	require.NoError(t, s.Login(ctx, client, "  ann@x.io ", " pw "))
	assert.Equal(t, helpdesk.Credentials{Email: "ann@x.io", Password: "pw"}, gotCreds)

	stored, ok, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "tok-1", stored)

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.True(t, s.LoggedIn(ctx))

	require.NoError(t, s.Logout(ctx))
	_, err = s.Token(ctx)
	assert.ErrorIs(t, err, ErrNoToken)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeNotAuthenticated))
	assert.False(t, s.LoggedIn(ctx))
}

func TestFailedLoginKeepsPreviousToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, TokenKey, "old"))
	s := New(store)

	client := helpdesk.NewMockClient()
	client.LoginFn = func(context.Context, helpdesk.Credentials) (helpdesk.TokenResponse, error) {
		return helpdesk.TokenResponse{}, appErrors.Error{Code: appErrors.CodeUnauthorized, Detail: "Invalid credentials", Status: 401}
	}

	err := s.Login(ctx, client, "a@x.io", "bad")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", appErrors.UserMessage(err, "Login failed"))

	token, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "old", token)
}

func TestTokenTreatsBlankAndExpiredAsAbsent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		ok    bool
	}{
		{"blank", "   ", false},
		{"opaque", "not-a-jwt", true},
		{"expired jwt", signedToken(t, "7", now.Add(-time.Minute)), false},
		{"expires exactly now", signedToken(t, "7", now), false},
		{"valid jwt", signedToken(t, "7", now.Add(time.Hour)), true},
		{"jwt without exp", signedToken(t, "7", time.Time{}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			require.NoError(t, store.Set(ctx, TokenKey, tt.token))
			s := New(store, WithClock(func() time.Time { return now }))

			_, err := s.Token(ctx)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrNoToken)
			}
		})
	}
}

func TestClaims(t *testing.T) {
	ctx := context.Background()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	store := NewMemoryStore()
	s := New(store)

	require.NoError(t, s.Login(ctx, loginReturning(signedToken(t, "42", exp)), "a@x.io", "pw"))
	claims, err := s.Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.True(t, exp.Equal(claims.ExpiresAt))

	require.NoError(t, store.Set(ctx, TokenKey, "opaque"))
	claims, err = s.Claims(ctx)
	require.NoError(t, err)
	assert.Equal(t, Claims{}, claims)
}

func TestSessionFeedsRESTClient(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemoryStore())

	var src helpdesk.TokenSource = s
	_, err := src.Token(ctx)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeNotAuthenticated))
}

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingStore) Set(context.Context, string, string) error         { return f.err }
func (f failingStore) Delete(context.Context, string) error              { return f.err }

func TestStoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk full")
	s := New(failingStore{err: boom})

	_, err := s.Token(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.Login(ctx, loginReturning("tok"), "a@x.io", "pw"), boom)
	assert.ErrorIs(t, s.Logout(ctx), boom)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")
	store, err := NewSQLiteStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, store.Path())

	_, ok, err := store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, TokenKey, "first"))
	require.NoError(t, store.Set(ctx, TokenKey, "second"))

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	value, ok, err := reopened.Get(ctx, TokenKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", value)

	require.NoError(t, reopened.Delete(ctx, TokenKey))
	require.NoError(t, reopened.Delete(ctx, TokenKey))
	_, ok, err = store.Get(ctx, TokenKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewSQLiteStoreRejectsEmptyPath(t *testing.T) {
	_, err := NewSQLiteStore("  ")
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeSessionStore))
}

func TestMemoryStoreZeroValue(t *testing.T) {
	ctx := context.Background()
	var m MemoryStore
	require.NoError(t, m.Set(ctx, "k", "v"))
	v, ok, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}
