package application

import (
	"fmt"
	"sync"
	"time"
)

type rateLimitEntry struct {
	count     int
	resetTime time.Time
}

// RateLimiter is a fixed-window request limiter keyed by caller identifier,
// typically the client IP. It carries its own lock because it is consulted
// before the command gate.
type RateLimiter struct {
	entries map[string]*rateLimitEntry
	mu      sync.RWMutex
	window  time.Duration
	limit   int
}

// NewRateLimiter creates a limiter allowing limit requests per window
func NewRateLimiter(window time.Duration, limit int) *RateLimiter {
	rl := &RateLimiter{
		entries: make(map[string]*rateLimitEntry),
		window:  window,
		limit:   limit,
	}

	go rl.cleanupLoop()

	return rl
}

// Allow reports whether a request from the given identifier is admitted
func (rl *RateLimiter) Allow(identifier string) (bool, error) {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	entry, exists := rl.entries[identifier]

	if !exists || now.After(entry.resetTime) {
		rl.entries[identifier] = &rateLimitEntry{
			count:     1,
			resetTime: now.Add(rl.window),
		}
		return true, nil
	}

	if entry.count >= rl.limit {
		untilReset := entry.resetTime.Sub(now)
		return false, fmt.Errorf("request limit exceeded, retry in %v", untilReset.Round(time.Second))
	}

	entry.count++
	return true, nil
}

// Remaining returns how many requests the identifier has left in the window
func (rl *RateLimiter) Remaining(identifier string) int {
	if identifier == "" {
		identifier = "anonymous"
	}

	rl.mu.RLock()
	defer rl.mu.RUnlock()

	entry, exists := rl.entries[identifier]
	if !exists || time.Now().After(entry.resetTime) {
		return rl.limit
	}

	remaining := rl.limit - entry.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset drops the window for one identifier
func (rl *RateLimiter) Reset(identifier string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	delete(rl.entries, identifier)
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.cleanup()
	}
}

func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, entry := range rl.entries {
		if now.After(entry.resetTime) {
			delete(rl.entries, key)
		}
	}
}

// Size returns the number of tracked identifiers
func (rl *RateLimiter) Size() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()

	return len(rl.entries)
}
