package simulate

import (
	"strings"

	"github.com/faultd/faultd/internal/id"
	"github.com/faultd/faultd/pkg/catalog"
)

// statusEndpoint is the endpoint name echoed in status-simulation debug info,
// including when the random-fault endpoint delegates here.
const statusEndpoint = "/simulate/status"

// Status simulates an arbitrary HTTP status code with diagnostic detail.
// code must be within [200, 599]; anything else is a ValidationError.
func (s *Simulator) Status(code int, includeHeaders bool) (*Response, error) {
	if code < 200 || code > 599 {
		return nil, validationError("Status code must be between 200-599")
	}

	entry := catalog.Lookup(code)
	requestID := id.Request()

	body := StatusBody{
		Error:     entry.Title,
		Code:      code,
		Message:   entry.Message,
		Fix:       entry.Fix,
		Timestamp: s.timestamp(),
		RequestID: requestID,
		DebugInfo: DebugInfo{
			Endpoint: statusEndpoint,
			Parameters: map[string]any{
				"code":            code,
				"include_headers": includeHeaders,
			},
			CommonCauses: entry.CommonCauses,
		},
	}

	headers := map[string]string{}
	if includeHeaders {
		headers["x-debug-mode"] = "true"
		headers["x-request-id"] = requestID
		headers["x-error-type"] = errorTypeSlug(entry.Title)

		// Certain codes carry their conventional companion headers so
		// clients can exercise the full handling path.
		switch code {
		case 429:
			headers["retry-after"] = "60"
			headers["x-ratelimit-limit"] = "100"
			headers["x-ratelimit-remaining"] = "0"
		case 401:
			headers["www-authenticate"] = "Bearer"
		}
	}

	return &Response{
		StatusCode: code,
		Headers:    headers,
		Body:       body,
	}, nil
}

// errorTypeSlug normalizes a catalog title into a header-friendly slug:
// lowercased with spaces replaced by underscores.
func errorTypeSlug(title string) string {
	return strings.ReplaceAll(strings.ToLower(title), " ", "_")
}
