package service

import (
	"context"
	"fmt"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// UsersService covers account administration.
type UsersService struct {
	api API
}

func NewUsersService(api API) *UsersService {
	return &UsersService{api: api}
}

// All lists every account.
func (s *UsersService) All(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	err := s.api.Get(ctx, "/admin/users", &users)
	return users, err
}

// Get fetches a single account.
func (s *UsersService) Get(ctx context.Context, id int) (*domain.User, error) {
	var user domain.User
	if err := s.api.Get(ctx, fmt.Sprintf("/admin/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes an account and returns the server's confirmation message.
func (s *UsersService) Delete(ctx context.Context, id int) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := s.api.Delete(ctx, fmt.Sprintf("/admin/users/%d", id), &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
