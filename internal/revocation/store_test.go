package revocation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// =============================================================================
// Memory Store Tests
// =============================================================================

func TestMemory_RevokeAndCheck(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if revoked {
		t.Error("IsRevoked() = true for a fresh identifier")
	}

	if err := store.Revoke(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	revoked, err = store.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if !revoked {
		t.Error("IsRevoked() = false after Revoke()")
	}
}

func TestMemory_RevokeIdempotent(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := store.Revoke(ctx, "jti-1", time.Hour); err != nil {
			t.Fatalf("Revoke() call %d error = %v", i+1, err)
		}
	}

	revoked, _ := store.IsRevoked(ctx, "jti-1")
	if !revoked {
		t.Error("IsRevoked() = false after repeated Revoke()")
	}
}

func TestMemory_ConcurrentAccess(t *testing.T) {
	store := NewMemory()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Revoke(ctx, "jti", time.Hour)
		}(i)
		go func(n int) {
			defer wg.Done()
			_, _ = store.IsRevoked(ctx, "jti")
		}(i)
	}
	wg.Wait()

	revoked, _ := store.IsRevoked(ctx, "jti")
	if !revoked {
		t.Error("IsRevoked() = false after concurrent Revoke()")
	}
}

// =============================================================================
// Redis Store Tests
// =============================================================================

func setupRedisStore(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to create miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedis(client), mr
}

func TestRedis_RevokeAndCheck(t *testing.T) {
	store, _ := setupRedisStore(t)
	ctx := context.Background()

	if err := store.Revoke(ctx, "jti-1", time.Hour); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	revoked, err := store.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if !revoked {
		t.Error("IsRevoked() = false after Revoke()")
	}

	revoked, err = store.IsRevoked(ctx, "jti-2")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if revoked {
		t.Error("IsRevoked() = true for an unrevoked identifier")
	}
}

func TestRedis_EntryExpiresWithToken(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	if err := store.Revoke(ctx, "jti-1", time.Minute); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	mr.FastForward(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	if err != nil {
		t.Fatalf("IsRevoked() error = %v", err)
	}
	if revoked {
		t.Error("IsRevoked() = true after entry TTL elapsed")
	}
}

func TestRedis_ExpiredTokenRevokeIsNoop(t *testing.T) {
	store, mr := setupRedisStore(t)
	ctx := context.Background()

	if err := store.Revoke(ctx, "jti-1", -time.Minute); err != nil {
		t.Fatalf("Revoke() error = %v", err)
	}

	if mr.Exists("revoked_token:jti-1") {
		t.Error("Revoke() with non-positive TTL should not write an entry")
	}
}
