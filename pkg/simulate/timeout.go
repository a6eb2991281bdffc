package simulate

import (
	"context"
	"fmt"
	"time"
)

// MaxHangSeconds caps how long the hang endpoint will suspend a request.
// Values above the cap are silently clamped, not rejected — the endpoint
// exists so the client's timeout fires first, and an oversized request
// should still hang rather than fail fast.
const MaxHangSeconds = 120

// Hang suspends the request for min(hangTime, MaxHangSeconds) seconds.
// Reaching the return value is the unexpected path: it means the client's
// timeout is longer than the hang. The wait is cancellable through ctx so a
// disconnected client releases the request immediately.
func (s *Simulator) Hang(ctx context.Context, hangTime int) (*Response, error) {
	if hangTime > MaxHangSeconds {
		hangTime = MaxHangSeconds
	}

	if err := s.sleep(ctx, time.Duration(hangTime)*time.Second); err != nil {
		return nil, err
	}

	body := HangBody{
		Status:  "timeout_expired",
		Message: fmt.Sprintf("Request hung for %d seconds", hangTime),
		Tip:     fmt.Sprintf("If you see this response, your client timeout is longer than %ds", hangTime),
	}

	return &Response{StatusCode: 200, Body: body}, nil
}
