package simulate

import (
	"context"
	"fmt"
	"math"
	"time"
)

// MaxDelaySeconds is the upper bound for the delay endpoint.
const MaxDelaySeconds = 30

// minJitterDelay is the floor applied when jitter would push the delay to
// zero or below.
const minJitterDelay = 0.1

// Slow suspends the request for the computed duration, then reports what was
// applied. seconds above MaxDelaySeconds is a ValidationError. The wait is
// cooperative: it never blocks other in-flight requests, and a client
// disconnect cancels it via ctx.
func (s *Simulator) Slow(ctx context.Context, seconds int, jitter bool) (*Response, error) {
	if seconds > MaxDelaySeconds {
		return nil, validationError("Maximum delay is 30 seconds")
	}

	actual := float64(seconds)
	if jitter {
		actual = float64(seconds) + s.float64n(-1, 2)
		if actual < minJitterDelay {
			actual = minJitterDelay
		}
	}
	actual = round2(actual)

	start := s.now()
	if err := s.sleep(ctx, time.Duration(actual*float64(time.Second))); err != nil {
		return nil, err
	}
	elapsed := round2(s.now().Sub(start).Seconds())

	body := SlowBody{
		Status:         "success",
		Message:        fmt.Sprintf("Response delayed for %.2f seconds", actual),
		DelaySeconds:   actual,
		RequestedDelay: seconds,
		ActualElapsed:  elapsed,
		JitterApplied:  jitter,
		Timestamp:      s.timestamp(),
		DebugInfo: SlowDebugInfo{
			UseCase: "Test client timeout handling and loading states",
			Tip:     "Implement progressive timeout values: connection timeout (5s), read timeout (30s)",
		},
	}

	return &Response{StatusCode: 200, Body: body}, nil
}

// round2 rounds to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
