package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestMemoryLimiter_AllowsUpToMax(t *testing.T) {
	limiter := NewMemoryLimiter(2, time.Hour)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "1.2.3.4")
		if err != nil {
			t.Fatalf("allow error: %v", err)
		}
		if !ok {
			t.Fatalf("hit %d should be allowed", i+1)
		}
	}

	ok, err := limiter.Allow(ctx, "1.2.3.4")
	if err != nil {
		t.Fatalf("allow error: %v", err)
	}
	if ok {
		t.Fatalf("third hit should be denied")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Hour)
	ctx := context.Background()

	if ok, _ := limiter.Allow(ctx, "1.2.3.4"); !ok {
		t.Fatalf("first key should be allowed")
	}
	if ok, _ := limiter.Allow(ctx, "5.6.7.8"); !ok {
		t.Fatalf("second key must not share the first key's window")
	}
	if ok, _ := limiter.Allow(ctx, "1.2.3.4"); ok {
		t.Fatalf("first key should now be exhausted")
	}
}

func TestMemoryLimiter_WindowExpires(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return base }

	if ok, _ := limiter.Allow(ctx, "1.2.3.4"); !ok {
		t.Fatalf("first hit should be allowed")
	}
	if ok, _ := limiter.Allow(ctx, "1.2.3.4"); ok {
		t.Fatalf("second hit inside the window should be denied")
	}

	limiter.now = func() time.Time { return base.Add(61 * time.Second) }
	if ok, _ := limiter.Allow(ctx, "1.2.3.4"); !ok {
		t.Fatalf("hit after the window should be allowed again")
	}
}
