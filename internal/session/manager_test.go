package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/motobazar/admin-console/internal/client"
	"github.com/motobazar/admin-console/internal/core/domain"
)

// stubAPI records login posts and answers with a canned response.
type stubAPI struct {
	calls    int
	response *LoginResponse
	err      error
}

func (s *stubAPI) Post(_ context.Context, path string, body, out any, _ ...client.CallOption) error {
	s.calls++
	if path != "/auth/login" {
		panic("unexpected path " + path)
	}
	if s.err != nil {
		return s.err
	}
	*out.(*LoginResponse) = *s.response
	return nil
}

func newTestManager(api API) (*Manager, *MemoryStore) {
	store := NewMemoryStore()
	m := NewManager(store, zerolog.Nop())
	m.SetAPI(api)
	return m, store
}

func TestManager_Login_TrimsAndPersists(t *testing.T) {
	api := &stubAPI{response: &LoginResponse{
		AccessToken: " tok123 ",
		User:        &domain.User{ID: 1, Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin},
	}}
	m, store := newTestManager(api)

	resp, err := m.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if resp.User == nil || resp.User.ID != 1 {
		t.Fatalf("unexpected response user: %+v", resp.User)
	}

	if token, _ := store.Get("admin_token"); token != "tok123" {
		t.Fatalf("expected trimmed token persisted, got %q", token)
	}
	if got := m.Token(); got != "tok123" {
		t.Fatalf("Token() = %q, want tok123", got)
	}
	if !m.IsAuthenticated() {
		t.Fatalf("expected authenticated session")
	}
	if !m.IsAdmin() {
		t.Fatalf("expected admin session")
	}
	if user := m.CurrentUser(); user == nil || user.ID != 1 {
		t.Fatalf("unexpected current user: %+v", user)
	}
}

func TestManager_Login_EmptyCredentialsNeverHitNetwork(t *testing.T) {
	api := &stubAPI{}
	m, _ := newTestManager(api)

	cases := [][2]string{
		{"", "x"},
		{"x", ""},
		{" ", " "},
		{"", ""},
	}
	for _, c := range cases {
		_, err := m.Login(context.Background(), c[0], c[1])
		if client.KindOf(err) != client.KindValidation {
			t.Fatalf("login(%q, %q): expected validation error, got %v", c[0], c[1], err)
		}
	}
	if api.calls != 0 {
		t.Fatalf("expected no network calls, got %d", api.calls)
	}
	if m.IsAuthenticated() {
		t.Fatalf("expected no session after failed validation")
	}
}

func TestManager_Login_ServerErrorPassesThrough(t *testing.T) {
	api := &stubAPI{err: &client.Error{Kind: client.KindRequest, Message: "invalid credentials", Status: 401}}
	m, _ := newTestManager(api)

	if _, err := m.Login(context.Background(), "a@b.com", "bad"); err == nil {
		t.Fatalf("expected error")
	}
	if m.IsAuthenticated() {
		t.Fatalf("expected no session after failed login")
	}
}

func TestManager_CurrentUser_RoundTrip(t *testing.T) {
	want := &domain.User{ID: 7, Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin}
	api := &stubAPI{response: &LoginResponse{AccessToken: "t", User: want}}
	m, _ := newTestManager(api)

	resp, err := m.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if got := m.CurrentUser(); !reflect.DeepEqual(got, resp.User) {
		t.Fatalf("CurrentUser() = %+v, want %+v", got, resp.User)
	}
}

func TestManager_CurrentUser_CorruptRecordIsNil(t *testing.T) {
	m, store := newTestManager(&stubAPI{})
	_ = store.Set("admin_user", "{not json")

	if user := m.CurrentUser(); user != nil {
		t.Fatalf("expected nil user for corrupt record, got %+v", user)
	}
	if m.IsAdmin() {
		t.Fatalf("corrupt record must not grant admin")
	}
}

func TestManager_TokenTrimmedOnRead(t *testing.T) {
	m, store := newTestManager(&stubAPI{})
	_ = store.Set("admin_token", "  spaced-token\n")

	if got := m.Token(); got != "spaced-token" {
		t.Fatalf("Token() = %q, want trimmed", got)
	}
}

func TestManager_Logout_Idempotent(t *testing.T) {
	api := &stubAPI{response: &LoginResponse{
		AccessToken: "tok",
		User:        &domain.User{ID: 1, Role: domain.RoleAdmin},
	}}
	m, _ := newTestManager(api)

	// Logout with no session is a no-op.
	m.Logout()
	if m.IsAuthenticated() {
		t.Fatalf("expected unauthenticated after logout without session")
	}

	if _, err := m.Login(context.Background(), "a@b.com", "pw"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	m.Logout()
	m.Logout()
	if m.IsAuthenticated() || m.CurrentUser() != nil || m.Token() != "" {
		t.Fatalf("expected fully cleared session")
	}
}

// TestManager_NonAdminLoginContract exercises the mandatory entry-point
// contract: a successful login by a non-admin account must be torn down and
// treated as access denied.
func TestManager_NonAdminLoginContract(t *testing.T) {
	api := &stubAPI{response: &LoginResponse{
		AccessToken: "tok",
		User:        &domain.User{ID: 2, Name: "Rahim", Email: "rahim@example.com", Role: domain.RoleUser},
	}}
	m, _ := newTestManager(api)

	resp, err := m.Login(context.Background(), "rahim@example.com", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// The caller-side check.
	if resp.User.IsAdmin() {
		t.Fatalf("fixture should not be admin")
	}
	m.Logout()

	if m.IsAuthenticated() {
		t.Fatalf("expected session torn down for non-admin login")
	}
}

// TestManager_AgainstRealClient runs the full wiring: manager as token
// source of a real access layer talking to a login endpoint.
func TestManager_AgainstRealClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("login must not carry a bearer token")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":" tok123 ","user":{"id":1,"name":"Admin","email":"admin@example.com","role":"admin"}}`))
	}))
	defer srv.Close()

	m := NewManager(NewMemoryStore(), zerolog.Nop())
	api := client.New(client.Config{BaseURL: srv.URL, Tokens: m, Logger: zerolog.Nop()})
	m.SetAPI(api)

	resp, err := m.Login(context.Background(), "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if resp.AccessToken != " tok123 " {
		t.Fatalf("response must carry the token exactly as sent, got %q", resp.AccessToken)
	}
	if m.Token() != "tok123" {
		t.Fatalf("stored token must be trimmed, got %q", m.Token())
	}
	if !m.IsAdmin() {
		t.Fatalf("expected admin session")
	}
	if user := m.CurrentUser(); user == nil || user.ID != 1 {
		t.Fatalf("unexpected current user: %+v", user)
	}
}
