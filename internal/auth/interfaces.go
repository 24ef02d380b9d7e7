package auth

import (
	"time"

	"github.com/google/uuid"
)

// TokenService defines the interface for token creation and validation.
// The shipped implementation is JWTService (HS256).
type TokenService interface {
	CreateToken(userID uuid.UUID, name, avatarURL string, duration time.Duration) (string, error)
	VerifyToken(tokenStr string) (*TokenClaims, error)
}
