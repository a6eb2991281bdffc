package simulate

import (
	"context"
	"time"
)

// randomPool is the fixed set of status codes the random-fault endpoint
// draws from.
var randomPool = []int{400, 401, 403, 404, 422, 429, 500, 502, 503, 504}

// Random-fault latency injection parameters.
const (
	randomDelayChance = 0.3
	randomDelayMin    = 0.5
	randomDelayMax    = 2.0
)

// Random picks a uniformly random status code from the pool minus the given
// exclusions, optionally injects a short delay, and delegates to the status
// simulation with headers enabled. Exclusions that empty the pool fall back
// to {500}.
func (s *Simulator) Random(ctx context.Context, excludeCodes string) (*Response, error) {
	pool := excludeFromPool(randomPool, parseCodeList(excludeCodes))
	if len(pool) == 0 {
		pool = []int{500}
	}

	code := s.pick(pool)

	// Sometimes slow, to simulate unpredictable upstream behavior.
	if s.chance(randomDelayChance) {
		delay := s.float64n(randomDelayMin, randomDelayMax)
		if err := s.sleep(ctx, time.Duration(delay*float64(time.Second))); err != nil {
			return nil, err
		}
	}

	return s.Status(code, true)
}

// excludeFromPool returns pool minus the excluded codes, preserving order.
func excludeFromPool(pool, excluded []int) []int {
	if len(excluded) == 0 {
		return pool
	}
	skip := make(map[int]bool, len(excluded))
	for _, c := range excluded {
		skip[c] = true
	}
	var out []int
	for _, c := range pool {
		if !skip[c] {
			out = append(out, c)
		}
	}
	return out
}
