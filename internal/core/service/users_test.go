package service

import (
	"context"
	"testing"

	"github.com/motobazar/admin-console/internal/core/domain"
)

func TestUsersService_All(t *testing.T) {
	api := newFakeAPI(t)
	api.respond("GET /admin/users", []domain.User{
		{ID: 1, Name: "Admin", Role: domain.RoleAdmin},
		{ID: 2, Name: "Rahim", Role: domain.RoleUser},
	})

	users, err := NewUsersService(api).All(context.Background())
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(users) != 2 || users[1].Name != "Rahim" {
		t.Fatalf("unexpected users: %+v", users)
	}
}

func TestUsersService_Delete(t *testing.T) {
	api := newFakeAPI(t)
	api.respond("DELETE /admin/users/2", map[string]string{"message": "user deleted"})

	msg, err := NewUsersService(api).Delete(context.Background(), 2)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if msg != "user deleted" {
		t.Fatalf("unexpected message %q", msg)
	}
	if !api.called("DELETE /admin/users/2") {
		t.Fatalf("expected delete call, got %v", api.calls)
	}
}
