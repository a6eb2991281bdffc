package simulate

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/faultd/faultd/pkg/logging"
	"github.com/faultd/faultd/pkg/ratelimit"
)

// Simulator owns the fault handlers and their dependencies: the injected
// rate-limit store, the client-key resolver, and a mutex-guarded RNG.
type Simulator struct {
	store    *ratelimit.Store
	resolver *ratelimit.Resolver
	log      *slog.Logger

	rng *rand.Rand
	mu  sync.Mutex // guards rng

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// Option configures a Simulator.
type Option func(*Simulator)

// WithStore sets the rate-limit counter store. Defaults to a fresh store.
func WithStore(store *ratelimit.Store) Option {
	return func(s *Simulator) {
		if store != nil {
			s.store = store
		}
	}
}

// WithResolver sets the client-key resolver used by the rate-limit endpoint.
func WithResolver(rv *ratelimit.Resolver) Option {
	return func(s *Simulator) {
		if rv != nil {
			s.resolver = rv
		}
	}
}

// WithLogger sets the operational logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Simulator) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSimulator creates a Simulator with the given options.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		store:    ratelimit.NewStore(),
		resolver: ratelimit.NewResolver(nil, false),
		log:      logging.Nop(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		sleep:    ctxSleep,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the rate-limit counter store.
func (s *Simulator) Store() *ratelimit.Store {
	return s.store
}

// ctxSleep waits for d or until ctx is done, whichever comes first. The
// context is tied to the client connection, so a disconnect abandons the
// wait instead of pinning the goroutine for the full duration.
func ctxSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// float64n returns a uniform random float64 in [min, max).
func (s *Simulator) float64n(min, max float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return min + s.rng.Float64()*(max-min)
}

// pick returns a uniformly random element of codes.
func (s *Simulator) pick(codes []int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return codes[s.rng.Intn(len(codes))]
}

// chance returns true with probability p.
func (s *Simulator) chance(p float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < p
}

// timestamp returns the current time as an ISO-8601 UTC string with
// millisecond precision and a Z suffix.
func (s *Simulator) timestamp() string {
	return s.now().UTC().Format("2006-01-02T15:04:05.000Z")
}
