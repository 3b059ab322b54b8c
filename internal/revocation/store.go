// Package revocation tracks token identifiers invalidated before their
// natural expiry. The set is injected into the auth service so deployments
// can choose between a process-local store and a shared Redis store.
package revocation

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the revocation set checked on every protected request.
// Revoke is idempotent: revoking an already-revoked identifier is a no-op.
type Store interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Memory is a process-local, mutex-guarded revocation set. Entries live for
// the process lifetime; the set starts empty on every restart. Suitable only
// for single-instance deployments.
type Memory struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

// NewMemory creates an empty in-memory revocation store.
func NewMemory() *Memory {
	return &Memory{revoked: make(map[string]struct{})}
}

func (m *Memory) Revoke(_ context.Context, jti string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[jti] = struct{}{}
	return nil
}

func (m *Memory) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.revoked[jti]
	return ok, nil
}

// Redis stores revoked identifiers in Redis with a TTL matching the token's
// remaining lifetime, so entries disappear once the token would have expired
// anyway. This is the externalized variant for multi-instance deployments.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed revocation store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired; nothing to remember.
		return nil
	}
	return r.client.Set(ctx, revocationKey(jti), "1", ttl).Err()
}

func (r *Redis) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := r.client.Exists(ctx, revocationKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func revocationKey(jti string) string {
	return "revoked_token:" + jti
}
