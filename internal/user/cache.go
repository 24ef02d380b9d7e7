package user

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CachedStore is a Redis read-through decorator over a Store. Only id
// lookups are cached; those run on every authenticated request, while email
// lookups happen once per login and are left to hit Postgres directly.
type CachedStore struct {
	inner  Store
	client *redis.Client
	ttl    time.Duration
}

func NewCachedStore(inner Store, client *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, client: client, ttl: ttl}
}

// getUserKey generates the Redis key for a cached user record
func getUserKey(id uuid.UUID) string {
	return fmt.Sprintf("user:id:%s", id.String())
}

// Create passes through. Newly created users are not pre-warmed.
func (c *CachedStore) Create(ctx context.Context, name, email, avatarURL, passwordHash string) (*User, error) {
	return c.inner.Create(ctx, name, email, avatarURL, passwordHash)
}

// GetByEmail passes through to the underlying store.
func (c *CachedStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	return c.inner.GetByEmail(ctx, email)
}

// GetByID serves from Redis when possible, falling through to the store on
// miss or on any Redis failure. Cache errors never fail the request.
// Cached records round-trip through the JSON model, which strips the
// password hash; callers that need the hash must use GetByEmail.
func (c *CachedStore) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	key := getUserKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var u User
		if err := json.Unmarshal(data, &u); err == nil {
			return &u, nil
		}
		// Corrupt entry, drop it and fall through
		c.client.Del(ctx, key)
	}

	u, err := c.inner.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(u); err == nil {
		c.client.Set(ctx, key, encoded, c.ttl)
	}

	return u, nil
}
