package application

import (
	"testing"
	"time"
)

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 3)

	for i := 0; i < 3; i++ {
		allowed, err := rl.Allow("10.0.0.1")
		if !allowed || err != nil {
			t.Fatalf("request %d rejected: %v", i+1, err)
		}
	}
	allowed, err := rl.Allow("10.0.0.1")
	if allowed {
		t.Fatal("fourth request should be blocked")
	}
	if err == nil {
		t.Fatal("blocked request should carry an error")
	}
}

func TestRateLimiterIsolatesIdentifiers(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)

	if allowed, _ := rl.Allow("10.0.0.1"); !allowed {
		t.Fatal("first caller rejected")
	}
	if allowed, _ := rl.Allow("10.0.0.2"); !allowed {
		t.Fatal("second caller should have its own window")
	}
	if remaining := rl.Remaining("10.0.0.3"); remaining != 1 {
		t.Errorf("untracked caller Remaining = %d, want 1", remaining)
	}
}

func TestRateLimiterReset(t *testing.T) {
	rl := NewRateLimiter(time.Minute, 1)

	rl.Allow("10.0.0.1")
	if remaining := rl.Remaining("10.0.0.1"); remaining != 0 {
		t.Fatalf("Remaining = %d, want 0", remaining)
	}

	rl.Reset("10.0.0.1")
	if allowed, _ := rl.Allow("10.0.0.1"); !allowed {
		t.Error("request after Reset should be allowed")
	}
}
