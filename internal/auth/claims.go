package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims is the JWT payload for access tokens. Subject carries the
// user id.
type AccessClaims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

// NewAccessClaims builds claims for a user with the given lifetime.
func NewAccessClaims(userID string, username string, ttl time.Duration) AccessClaims {
	now := time.Now().UTC()
	return AccessClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
}
