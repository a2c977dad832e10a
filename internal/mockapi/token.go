package mockapi

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/motobazar/admin-console/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// issueToken signs an HS256 bearer token for the user.
func issueToken(user *domain.User, secret string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}
