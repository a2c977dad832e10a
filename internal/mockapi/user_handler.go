package mockapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// UserHandler implements account administration endpoints.
type UserHandler struct {
	store *Store
}

func NewUserHandler(store *Store) *UserHandler {
	return &UserHandler{store: store}
}

// List handles GET /admin/users.
func (h *UserHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.store.Users())
}

// Get handles GET /admin/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	user, err := h.store.User(id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Delete handles DELETE /admin/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.store.DeleteUser(id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}
