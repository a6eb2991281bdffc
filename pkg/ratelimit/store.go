package ratelimit

import (
	"sync"
	"time"
)

// counter tracks one client's requests within the current window.
type counter struct {
	count       int
	windowStart time.Time
	mu          sync.Mutex
}

// Decision is the outcome of a Take call: whether the request fits in the
// window plus the counter state needed for rate-limit headers and debug info.
type Decision struct {
	// Allowed is true when the request was admitted (and counted).
	Allowed bool
	// Count is the number of admitted requests in the current window,
	// including this one when Allowed is true.
	Count int
	// Remaining is the quota left in the window after this request.
	Remaining int
	// WindowStart is when the current window began.
	WindowStart time.Time
	// RetryAfter is the whole seconds until the window resets, rounded up
	// and never below 1. Only meaningful when Allowed is false.
	RetryAfter int
	// ResetAt is the Unix epoch second at which the window resets.
	ResetAt int64
}

// Store is a process-wide fixed-window counter store keyed by client
// identifier. It is safe for concurrent use: the check-and-increment
// sequence for a given key is serialized, so two simultaneous requests can
// never both consume the last slot in a window.
//
// Construct one Store per process and pass it to the handler explicitly;
// tests construct isolated instances.
type Store struct {
	mu       sync.RWMutex
	counters map[string]*counter

	now func() time.Time // overridable in tests
}

// NewStore creates an empty counter store.
func NewStore() *Store {
	return &Store{
		counters: make(map[string]*counter),
		now:      time.Now,
	}
}

// Take runs one request from key through the window accounting: it rolls the
// window over if expired, then either admits and counts the request or
// rejects it with retry timing. limit is the number of requests allowed per
// window.
func (s *Store) Take(key string, limit int, window time.Duration) Decision {
	c := s.fetchOrCreate(key)

	c.mu.Lock()
	defer c.mu.Unlock()

	now := s.now()

	// Window rollover happens on read, the first time a request arrives
	// after expiry.
	if now.Sub(c.windowStart) > window {
		c.count = 0
		c.windowStart = now
	}

	resetAt := c.windowStart.Add(window)

	if c.count >= limit {
		retry := int(resetAt.Sub(now).Seconds()) + 1
		if retry < 1 {
			retry = 1
		}
		return Decision{
			Allowed:     false,
			Count:       c.count,
			Remaining:   0,
			WindowStart: c.windowStart,
			RetryAfter:  retry,
			ResetAt:     resetAt.Unix(),
		}
	}

	c.count++
	return Decision{
		Allowed:     true,
		Count:       c.count,
		Remaining:   limit - c.count,
		WindowStart: c.windowStart,
		ResetAt:     resetAt.Unix(),
	}
}

// Reset deletes the counter for key so the next request starts a fresh
// window. Resetting a key that has no counter is a no-op, not an error.
func (s *Store) Reset(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.counters, key)
}

// Peek returns a snapshot of key's counter without mutating it.
// The second return value is false when no counter exists.
func (s *Store) Peek(key string) (count int, windowStart time.Time, ok bool) {
	s.mu.RLock()
	c, exists := s.counters[key]
	s.mu.RUnlock()
	if !exists {
		return 0, time.Time{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count, c.windowStart, true
}

// Len returns the number of tracked client keys.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.counters)
}

// fetchOrCreate returns the counter for key, creating it lazily on first use.
func (s *Store) fetchOrCreate(key string) *counter {
	s.mu.RLock()
	c, ok := s.counters[key]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Double-check after acquiring write lock
	if c, ok = s.counters[key]; ok {
		return c
	}
	c = &counter{windowStart: s.now()}
	s.counters[key] = c
	return c
}
