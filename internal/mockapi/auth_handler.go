package mockapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/motobazar/admin-console/internal/core/domain"
)

// AuthHandler implements the credential exchange endpoint.
type AuthHandler struct {
	store     *Store
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthHandler(store *Store, jwtSecret string, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	User        *domain.User `json:"user"`
}

// Login exchanges credentials for a bearer token and the user record.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.store.Authenticate(req.Email, req.Password)
	if err != nil {
		LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	token, err := issueToken(user, h.jwtSecret, h.tokenTTL)
	if err != nil {
		return err
	}

	LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{AccessToken: token, User: user})
}
