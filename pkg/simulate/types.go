package simulate

// Response is the uniform handler output contract: a status code, flat
// headers, and either a structured JSON body or a literal raw body. The
// transport layer serializes it without further interpretation.
type Response struct {
	StatusCode int
	Headers    map[string]string

	// Body is a JSON-marshalable value. Ignored when Raw is set.
	Body any

	// Raw, when non-empty, is written to the wire verbatim with ContentType.
	// Used for intentionally malformed payloads that must not be re-encoded.
	Raw         string
	ContentType string
}

// DebugInfo is the debugging block attached to simulated error bodies.
type DebugInfo struct {
	Endpoint     string         `json:"endpoint"`
	Parameters   map[string]any `json:"parameters"`
	CommonCauses []string       `json:"common_causes"`
}

// StatusBody is the error envelope for status-code simulations.
type StatusBody struct {
	Error     string    `json:"error"`
	Code      int       `json:"code"`
	Message   string    `json:"message"`
	Fix       string    `json:"fix"`
	Timestamp string    `json:"timestamp"`
	RequestID string    `json:"request_id"`
	DebugInfo DebugInfo `json:"debug_info"`
}

// SlowDebugInfo documents the intended use of the delay endpoint.
type SlowDebugInfo struct {
	UseCase string `json:"use_case"`
	Tip     string `json:"tip"`
}

// SlowBody is the success payload of the delay endpoint.
type SlowBody struct {
	Status         string        `json:"status"`
	Message        string        `json:"message"`
	DelaySeconds   float64       `json:"delay_seconds"`
	RequestedDelay int           `json:"requested_delay"`
	ActualElapsed  float64       `json:"actual_elapsed"`
	JitterApplied  bool          `json:"jitter_applied"`
	Timestamp      string        `json:"timestamp"`
	DebugInfo      SlowDebugInfo `json:"debug_info"`
}

// HangBody is returned on the rare occasion a hang simulation outlives the
// client's timeout.
type HangBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Tip     string `json:"tip"`
}

// RateLimitInfo is the quota snapshot included in successful rate-limit
// responses.
type RateLimitInfo struct {
	Limit        int `json:"limit"`
	Remaining    int `json:"remaining"`
	Window       int `json:"window"`
	CurrentCount int `json:"current_count"`
}

// RateLimitOKBody is the under-quota rate-limit payload.
type RateLimitOKBody struct {
	Status        string        `json:"status"`
	Message       string        `json:"message"`
	RateLimitInfo RateLimitInfo `json:"rate_limit_info"`
}

// RateLimitDebugInfo carries the raw counter state for 429 responses.
type RateLimitDebugInfo struct {
	CurrentCount int    `json:"current_count"`
	WindowStart  int64  `json:"window_start"`
	ClientIP     string `json:"client_ip"`
	Tip          string `json:"tip"`
}

// RateLimitExceededBody is the over-quota rate-limit payload.
type RateLimitExceededBody struct {
	Error      string             `json:"error"`
	Code       int                `json:"code"`
	Message    string             `json:"message"`
	RetryAfter int                `json:"retry_after"`
	Limit      int                `json:"limit"`
	Remaining  int                `json:"remaining"`
	Window     int                `json:"window"`
	DebugInfo  RateLimitDebugInfo `json:"debug_info"`
}

// RateLimitResetBody confirms a counter reset.
type RateLimitResetBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Limit   int    `json:"limit"`
	Window  int    `json:"window"`
}

// NetworkDebugInfo identifies the emulated network-level failure.
type NetworkDebugInfo struct {
	ErrorType    string   `json:"error_type"`
	CommonCauses []string `json:"common_causes"`
}

// NetworkErrorBody is the structured payload for emulated upstream network
// failures.
type NetworkErrorBody struct {
	Error     string           `json:"error"`
	Code      int              `json:"code"`
	Message   string           `json:"message"`
	Fix       string           `json:"fix"`
	DebugInfo NetworkDebugInfo `json:"debug_info"`
}
