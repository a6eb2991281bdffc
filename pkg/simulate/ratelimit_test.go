package simulate

import (
	"fmt"
	"testing"
)

func TestRateLimit_SequenceToExhaustion(t *testing.T) {
	t.Parallel()
	s := NewSimulator()

	for i := 1; i <= 3; i++ {
		resp := s.RateLimit("10.0.0.1", 3, 60, false)
		if resp.StatusCode != 200 {
			t.Fatalf("request %d: status = %d, want 200", i, resp.StatusCode)
		}
		body := resp.Body.(RateLimitOKBody)
		if body.Status != "success" {
			t.Errorf("request %d: status field = %q", i, body.Status)
		}
		if body.RateLimitInfo.CurrentCount != i {
			t.Errorf("request %d: current_count = %d", i, body.RateLimitInfo.CurrentCount)
		}
		if body.RateLimitInfo.Remaining != 3-i {
			t.Errorf("request %d: remaining = %d, want %d", i, body.RateLimitInfo.Remaining, 3-i)
		}
		if got := resp.Headers["x-ratelimit-remaining"]; got != fmt.Sprintf("%d", 3-i) {
			t.Errorf("request %d: x-ratelimit-remaining = %q", i, got)
		}
	}

	resp := s.RateLimit("10.0.0.1", 3, 60, false)
	if resp.StatusCode != 429 {
		t.Fatalf("fourth request: status = %d, want 429", resp.StatusCode)
	}
	body := resp.Body.(RateLimitExceededBody)
	if body.Error != "Too Many Requests" || body.Code != 429 {
		t.Errorf("body = %+v", body)
	}
	if body.Message != "Rate limit of 3 requests per 60 seconds exceeded" {
		t.Errorf("message = %q", body.Message)
	}
	if body.RetryAfter < 1 || body.RetryAfter > 60 {
		t.Errorf("retry_after = %d, want within (0, 60]", body.RetryAfter)
	}
	if body.DebugInfo.ClientIP != "10.0.0.1" {
		t.Errorf("debug client_ip = %q", body.DebugInfo.ClientIP)
	}
	if resp.Headers["x-ratelimit-remaining"] != "0" {
		t.Errorf("x-ratelimit-remaining = %q", resp.Headers["x-ratelimit-remaining"])
	}
	if resp.Headers["retry-after"] == "" {
		t.Error("retry-after header missing")
	}
	if resp.Headers["x-debug-mode"] != "true" {
		t.Errorf("x-debug-mode = %q", resp.Headers["x-debug-mode"])
	}
}

func TestRateLimit_KeysAreIndependent(t *testing.T) {
	t.Parallel()
	s := NewSimulator()

	for i := 0; i < 3; i++ {
		s.RateLimit("10.0.0.1", 3, 60, false)
	}
	if resp := s.RateLimit("10.0.0.1", 3, 60, false); resp.StatusCode != 429 {
		t.Fatalf("exhausted key: status = %d", resp.StatusCode)
	}
	if resp := s.RateLimit("10.0.0.2", 3, 60, false); resp.StatusCode != 200 {
		t.Errorf("fresh key: status = %d, want 200", resp.StatusCode)
	}
}

func TestRateLimit_ResetRestoresBudget(t *testing.T) {
	t.Parallel()
	s := NewSimulator()

	for i := 0; i < 4; i++ {
		s.RateLimit("10.0.0.1", 3, 60, false)
	}

	resp := s.RateLimit("10.0.0.1", 3, 60, true)
	if resp.StatusCode != 200 {
		t.Fatalf("reset: status = %d", resp.StatusCode)
	}
	body := resp.Body.(RateLimitResetBody)
	if body.Status != "reset" {
		t.Errorf("status = %q", body.Status)
	}
	if body.Message != "Rate limit counter reset for 10.0.0.1" {
		t.Errorf("message = %q", body.Message)
	}

	after := s.RateLimit("10.0.0.1", 3, 60, false)
	if after.StatusCode != 200 {
		t.Errorf("post-reset request: status = %d, want 200", after.StatusCode)
	}
	if got := after.Body.(RateLimitOKBody).RateLimitInfo.CurrentCount; got != 1 {
		t.Errorf("post-reset current_count = %d, want 1", got)
	}
}

func TestRateLimit_ResetUnknownKeySucceeds(t *testing.T) {
	t.Parallel()
	s := NewSimulator()

	resp := s.RateLimit("192.168.0.9", 3, 60, true)
	if resp.StatusCode != 200 {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if resp.Body.(RateLimitResetBody).Status != "reset" {
		t.Error("reset of a key with no counter should still report reset")
	}
}

func TestRateLimit_CustomLimitAndWindow(t *testing.T) {
	t.Parallel()
	s := NewSimulator()

	if resp := s.RateLimit("10.0.0.1", 1, 10, false); resp.StatusCode != 200 {
		t.Fatalf("first: status = %d", resp.StatusCode)
	}
	resp := s.RateLimit("10.0.0.1", 1, 10, false)
	if resp.StatusCode != 429 {
		t.Fatalf("second: status = %d, want 429", resp.StatusCode)
	}
	body := resp.Body.(RateLimitExceededBody)
	if body.Message != "Rate limit of 1 requests per 10 seconds exceeded" {
		t.Errorf("message = %q", body.Message)
	}
	if body.RetryAfter > 10 {
		t.Errorf("retry_after = %d exceeds the 10s window", body.RetryAfter)
	}
}
