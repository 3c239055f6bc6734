// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"testing"
	"time"
)

func TestRateLimiter_Take(t *testing.T) {
	t.Run("allows up to the limit then blocks", func(t *testing.T) {
		rl := &RateLimiter{
			buckets: make(map[string]*bucket),
			limit:   3,
			window:  time.Minute,
		}

		for i := 0; i < 3; i++ {
			if !rl.take("10.0.0.1") {
				t.Fatalf("attempt %d should be allowed", i+1)
			}
		}
		if rl.take("10.0.0.1") {
			t.Error("attempt over the limit should be blocked")
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		rl := &RateLimiter{
			buckets: make(map[string]*bucket),
			limit:   1,
			window:  time.Minute,
		}

		if !rl.take("10.0.0.1") {
			t.Fatal("first client should be allowed")
		}
		if !rl.take("10.0.0.2") {
			t.Error("second client should have its own bucket")
		}
		if rl.take("10.0.0.1") {
			t.Error("first client should be blocked")
		}
	})

	t.Run("window expiry resets the count", func(t *testing.T) {
		rl := &RateLimiter{
			buckets: make(map[string]*bucket),
			limit:   1,
			window:  10 * time.Millisecond,
		}

		if !rl.take("10.0.0.1") {
			t.Fatal("first attempt should be allowed")
		}
		if rl.take("10.0.0.1") {
			t.Fatal("second attempt in the window should be blocked")
		}

		time.Sleep(20 * time.Millisecond)

		if !rl.take("10.0.0.1") {
			t.Error("attempt after the window should start a fresh bucket")
		}
	})

	t.Run("expired buckets of other clients are pruned", func(t *testing.T) {
		rl := &RateLimiter{
			buckets: make(map[string]*bucket),
			limit:   5,
			window:  10 * time.Millisecond,
		}

		rl.take("10.0.0.1")
		rl.take("10.0.0.2")
		time.Sleep(20 * time.Millisecond)

		rl.take("10.0.0.3")

		rl.mu.Lock()
		defer rl.mu.Unlock()
		if _, ok := rl.buckets["10.0.0.1"]; ok {
			t.Error("expired bucket should have been pruned")
		}
		if _, ok := rl.buckets["10.0.0.3"]; !ok {
			t.Error("active bucket should remain")
		}
	})
}
