package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devconnector/auth-api/internal/user"
)

// memStore is an in-memory user.Store for tests. createErr, when set, is
// returned by Create regardless of state, to simulate losing the race to
// the unique index.
type memStore struct {
	mu        sync.Mutex
	byEmail   map[string]*user.User
	byID      map[uuid.UUID]*user.User
	createErr error
}

func newMemStore() *memStore {
	return &memStore{
		byEmail: make(map[string]*user.User),
		byID:    make(map[uuid.UUID]*user.User),
	}
}

func (m *memStore) Create(ctx context.Context, name, email, avatarURL, passwordHash string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return nil, m.createErr
	}
	if _, exists := m.byEmail[email]; exists {
		return nil, user.ErrDuplicateEmail
	}

	u := &user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		AvatarURL:    avatarURL,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	m.byEmail[email] = u
	m.byID[u.ID] = u
	return u, nil
}

func (m *memStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byEmail[email]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (m *memStore) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.byID[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newTestService(store user.Store) *Service {
	return NewService(store, NewJWTService(testSecret), time.Hour)
}

func TestService_Register(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Alice", "Alice@Example.com ", "secret1")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, "Alice", created.Name)
	assert.Equal(t, "alice@example.com", created.Email, "email should be normalized before storage")
	assert.Equal(t, GravatarURL("alice@example.com"), created.AvatarURL)

	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.True(t, CheckPassword("secret1", created.PasswordHash))
}

func TestService_Register_EmailTaken(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Impostor", "ALICE@example.com", "secret2")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_LosesRaceToUniqueIndex(t *testing.T) {
	// The lookup sees no user, but the insert hits the unique constraint,
	// as happens when two registrations interleave.
	store := newMemStore()
	store.createErr = user.ErrDuplicateEmail
	svc := newTestService(store)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	created, err := svc.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// The token must verify and carry the minimal claim set
	claims, err := NewJWTService(testSecret).VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID.String(), claims.UserID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, created.AvatarURL, claims.AvatarURL)
}

func TestService_Login_UserNotFound(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Login_PasswordIncorrect(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@example.com", "wrong")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}
