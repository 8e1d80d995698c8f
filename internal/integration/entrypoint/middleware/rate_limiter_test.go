package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRateLimiterWithConfig(client, maxAttempts, window), server
}

func TestRateLimiterAllow(t *testing.T) {
	ctx := context.Background()

	t.Run("allows up to the limit and blocks the next attempt", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 5, time.Minute)

		for i := 0; i < 5; i++ {
			if !limiter.allow(ctx, "10.0.0.1") {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
		if limiter.allow(ctx, "10.0.0.1") {
			t.Error("sixth attempt should be blocked")
		}
	})

	t.Run("tracks clients independently", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, time.Minute)

		if !limiter.allow(ctx, "10.0.0.1") {
			t.Fatal("first client should be allowed")
		}
		if limiter.allow(ctx, "10.0.0.1") {
			t.Error("first client should be over its limit")
		}
		if !limiter.allow(ctx, "10.0.0.2") {
			t.Error("second client should have its own window")
		}
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		limiter, server := newTestLimiter(t, 1, time.Minute)

		if !limiter.allow(ctx, "10.0.0.1") {
			t.Fatal("first attempt should be allowed")
		}
		if limiter.allow(ctx, "10.0.0.1") {
			t.Fatal("second attempt should be blocked")
		}

		server.FastForward(2 * time.Minute)

		if !limiter.allow(ctx, "10.0.0.1") {
			t.Error("attempt after the window should be allowed again")
		}
	})

	t.Run("fails open when redis is unreachable", func(t *testing.T) {
		limiter, server := newTestLimiter(t, 1, time.Minute)
		server.Close()

		if !limiter.allow(ctx, "10.0.0.1") {
			t.Error("requests should pass when the limiter backend is down")
		}
	})

	t.Run("reset clears tracked clients", func(t *testing.T) {
		limiter, _ := newTestLimiter(t, 1, time.Minute)

		if !limiter.allow(ctx, "10.0.0.1") {
			t.Fatal("first attempt should be allowed")
		}
		if err := limiter.Reset(ctx); err != nil {
			t.Fatalf("reset failed: %v", err)
		}
		if !limiter.allow(ctx, "10.0.0.1") {
			t.Error("attempt after reset should be allowed")
		}
	})
}
