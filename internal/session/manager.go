package session

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/motobazar/admin-console/internal/client"
	"github.com/motobazar/admin-console/internal/core/domain"
)

// Storage keys, fixed for the lifetime of the application.
const (
	tokenKey = "admin_token"
	userKey  = "admin_user"
)

// API is the slice of the access layer the manager needs for login.
type API interface {
	Post(ctx context.Context, path string, body, out any, opts ...client.CallOption) error
}

// LoginResponse is the server's answer to a successful credential exchange.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Manager is the explicit session context object: it owns the persisted
// token and user record and is handed to everything that needs session
// state, instead of call sites re-reading ambient storage.
//
// Manager implements client.TokenSource, so the access layer observes
// logins and logouts immediately.
type Manager struct {
	store Store
	api   API
	log   zerolog.Logger
}

// NewManager creates a Manager over the given store. Call SetAPI once the
// access layer exists; the two are constructed in that order because the
// client needs the manager as its token source.
func NewManager(store Store, log zerolog.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// SetAPI binds the access layer used for the login call.
func (m *Manager) SetAPI(api API) {
	m.api = api
}

// Login exchanges credentials for a bearer token and persists the session.
// Empty credentials (after trimming) fail with a validation error before any
// network traffic. The returned response carries the token and user record
// exactly as the server sent them; the caller of the login entry point must
// still verify the user's role and tear the session down when it is not the
// administrative one.
func (m *Manager) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, &client.Error{Kind: client.KindValidation, Message: "Email and password are required"}
	}

	var resp LoginResponse
	if err := m.api.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password}, &resp, client.WithoutAuth()); err != nil {
		return nil, err
	}

	if token := strings.TrimSpace(resp.AccessToken); token != "" {
		if err := m.store.Set(tokenKey, token); err != nil {
			return nil, err
		}
		raw, err := json.Marshal(resp.User)
		if err != nil {
			return nil, err
		}
		if err := m.store.Set(userKey, string(raw)); err != nil {
			return nil, err
		}
		m.log.Info().Str("email", email).Msg("session established")
	}

	return &resp, nil
}

// Logout removes the token and user record. Safe to call without a session.
func (m *Manager) Logout() {
	_ = m.store.Delete(tokenKey)
	_ = m.store.Delete(userKey)
}

// IsAuthenticated reports whether a token is present. No local validity
// check is performed; the server decides on the next request.
func (m *Manager) IsAuthenticated() bool {
	return m.Token() != ""
}

// CurrentUser returns the stored user record, or nil when missing or
// unparseable. A corrupt record is treated as "no user", never an error.
func (m *Manager) CurrentUser() *domain.User {
	raw, ok := m.store.Get(userKey)
	if !ok {
		return nil
	}
	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

// Token returns the trimmed bearer token, or "" when no session exists.
func (m *Manager) Token() string {
	raw, ok := m.store.Get(tokenKey)
	if !ok {
		return ""
	}
	return strings.TrimSpace(raw)
}

// IsAdmin reports whether the current user holds the administrative role.
func (m *Manager) IsAdmin() bool {
	return m.CurrentUser().IsAdmin()
}

// Clear satisfies client.TokenSource: the access layer calls it on a 401.
func (m *Manager) Clear() {
	m.Logout()
}
