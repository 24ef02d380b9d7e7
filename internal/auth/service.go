package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/devconnector/auth-api/internal/user"
)

var (
	ErrEmailTaken        = errors.New("email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrPasswordIncorrect = errors.New("password incorrect")
)

// Service handles authentication business logic
type Service struct {
	store         user.Store
	tokenService  TokenService
	tokenDuration time.Duration
}

func NewService(store user.Store, tokenService TokenService, tokenDuration time.Duration) *Service {
	return &Service{
		store:         store,
		tokenService:  tokenService,
		tokenDuration: tokenDuration,
	}
}

// Register creates a new user with a derived gravatar and a bcrypt password
// hash. Inputs are assumed validated; the email existence check here only
// orders the error nicely, the unique index in the store is what actually
// guards against concurrent duplicates.
func (s *Service) Register(ctx context.Context, name, email, password string) (*user.User, error) {
	email = normalizeEmail(email)

	_, err := s.store.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, user.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	avatarURL := GravatarURL(email)

	passwordHash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := s.store.Create(ctx, strings.TrimSpace(name), email, avatarURL, passwordHash)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return newUser, nil
}

// Login authenticates a user and returns a signed bearer token. Unknown
// email and wrong password are reported as distinct outcomes, which the
// handlers preserve on the wire.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	existingUser, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to get user: %w", err)
	}

	if !CheckPassword(password, existingUser.PasswordHash) {
		return "", ErrPasswordIncorrect
	}

	token, err := s.tokenService.CreateToken(existingUser.ID, existingUser.Name, existingUser.AvatarURL, s.tokenDuration)
	if err != nil {
		return "", fmt.Errorf("failed to create token: %w", err)
	}

	return token, nil
}

// normalizeEmail makes email matching case-insensitive in practice; the
// store only ever sees the normalized form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
