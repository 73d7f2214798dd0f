package redisclient

import (
	"context"
	"testing"
	"time"
)

// A nil cache is the normal shape when Redis is not configured; every
// operation must degrade to a miss instead of panicking.
func TestNilCache(t *testing.T) {
	cache := NewResponseCache(nil, time.Hour)
	if cache != nil {
		t.Fatal("nil client should produce a nil cache")
	}

	ctx := context.Background()
	if _, ok := cache.Get(ctx, "k"); ok {
		t.Error("nil cache reported a hit")
	}
	cache.Set(ctx, "k", "v")
	n, err := cache.Flush(ctx)
	if err != nil || n != 0 {
		t.Errorf("Flush on nil cache: n=%d err=%v", n, err)
	}
}

func TestNewRedisClientUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("dial timeout")
	}
	if _, err := NewRedisClient("127.0.0.1:1", "", ""); err == nil {
		t.Error("connecting to a closed port did not error")
	}
}
