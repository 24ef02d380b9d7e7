package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// TokenClaims is the minimal identity claim set embedded in a token.
// The password hash is deliberately never part of it.
type TokenClaims struct {
	UserID    string    `json:"user_id"` // UUID stored as string in token
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// jwtClaims is the wire form handed to the jwt library.
type jwtClaims struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies HS256 bearer tokens with a process-wide
// secret loaded once at startup. Sessions are stateless: validity is proven
// solely by signature and expiry, nothing is stored server-side.
type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

// CreateToken generates a signed token carrying the identity claims and a
// validity window of the given duration.
func (s *JWTService) CreateToken(userID uuid.UUID, name, avatarURL string, duration time.Duration) (string, error) {
	now := time.Now()

	claims := jwtClaims{
		Name:      name,
		AvatarURL: avatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken validates a token and returns its claims. Expired tokens fail
// with ErrExpiredToken; malformed tokens and bad signatures (including
// tokens signed with a different secret or a non-HMAC method) fail with
// ErrInvalidToken.
func (s *JWTService) VerifyToken(tokenStr string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwtClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwtClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	var issuedAt, expiresAt time.Time
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &TokenClaims{
		UserID:    claims.Subject,
		Name:      claims.Name,
		AvatarURL: claims.AvatarURL,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}
