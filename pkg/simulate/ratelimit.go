package simulate

import (
	"fmt"
	"strconv"
	"time"
)

// Rate-limit endpoint defaults.
const (
	DefaultRateLimit  = 3
	DefaultRateWindow = 60
)

// RateLimit runs one request from clientKey through the windowed counter
// store. When reset is true the counter is deleted and a confirmation
// returned; the reset path never increments or checks the limit, and
// resetting a client that has no counter still succeeds (idempotent reset).
func (s *Simulator) RateLimit(clientKey string, limit, window int, reset bool) *Response {
	if reset {
		s.store.Reset(clientKey)
		return &Response{
			StatusCode: 200,
			Body: RateLimitResetBody{
				Status:  "reset",
				Message: fmt.Sprintf("Rate limit counter reset for %s", clientKey),
				Limit:   limit,
				Window:  window,
			},
		}
	}

	d := s.store.Take(clientKey, limit, time.Duration(window)*time.Second)

	if !d.Allowed {
		return &Response{
			StatusCode: 429,
			Headers: map[string]string{
				"retry-after":           strconv.Itoa(d.RetryAfter),
				"x-ratelimit-limit":     strconv.Itoa(limit),
				"x-ratelimit-remaining": "0",
				"x-ratelimit-reset":     strconv.FormatInt(d.ResetAt, 10),
				"x-debug-mode":          "true",
			},
			Body: RateLimitExceededBody{
				Error:      "Too Many Requests",
				Code:       429,
				Message:    fmt.Sprintf("Rate limit of %d requests per %d seconds exceeded", limit, window),
				RetryAfter: d.RetryAfter,
				Limit:      limit,
				Remaining:  0,
				Window:     window,
				DebugInfo: RateLimitDebugInfo{
					CurrentCount: d.Count,
					WindowStart:  d.WindowStart.Unix(),
					ClientIP:     clientKey,
					Tip:          "Implement exponential backoff: wait 1s, then 2s, then 4s, etc.",
				},
			},
		}
	}

	return &Response{
		StatusCode: 200,
		Headers: map[string]string{
			"x-ratelimit-limit":     strconv.Itoa(limit),
			"x-ratelimit-remaining": strconv.Itoa(d.Remaining),
			"x-ratelimit-reset":     strconv.FormatInt(d.ResetAt, 10),
		},
		Body: RateLimitOKBody{
			Status:  "success",
			Message: "Request processed successfully",
			RateLimitInfo: RateLimitInfo{
				Limit:        limit,
				Remaining:    d.Remaining,
				Window:       window,
				CurrentCount: d.Count,
			},
		},
	}
}
