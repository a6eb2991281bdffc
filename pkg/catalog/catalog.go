// Package catalog holds the static fault catalog: diagnostic text for the
// HTTP status codes the simulator knows how to explain. Lookups are pure and
// the catalog never changes after process start.
package catalog

import "fmt"

// Entry describes one known HTTP status code: what it means, how a client
// should react, and the failure modes that commonly produce it.
type Entry struct {
	Title        string
	Message      string
	Fix          string
	CommonCauses []string
}

var entries = map[int]Entry{
	400: {
		Title:        "Bad Request",
		Message:      "The request contains invalid syntax or cannot be fulfilled.",
		Fix:          "Check your request body, query parameters, and ensure all required fields are present and properly formatted.",
		CommonCauses: []string{"Invalid JSON syntax", "Missing required fields", "Invalid data types"},
	},
	401: {
		Title:        "Unauthorized",
		Message:      "Authentication credentials are missing or invalid.",
		Fix:          "Include a valid API key in the 'x-api-key' header or check your authentication token.",
		CommonCauses: []string{"Missing API key", "Invalid credentials", "Expired token"},
	},
	403: {
		Title:        "Forbidden",
		Message:      "You don't have permission to access this resource.",
		Fix:          "Verify your account has the necessary permissions or contact support to upgrade your access level.",
		CommonCauses: []string{"Insufficient permissions", "Account suspended", "IP blocked"},
	},
	404: {
		Title:        "Not Found",
		Message:      "The requested endpoint or resource does not exist.",
		Fix:          "Check the URL path and ensure you're calling the correct endpoint. Verify the resource ID exists.",
		CommonCauses: []string{"Wrong endpoint URL", "Resource deleted", "Typo in path"},
	},
	422: {
		Title:        "Unprocessable Entity",
		Message:      "The request body contains invalid or missing required fields.",
		Fix:          "Validate your JSON payload against the API schema. Check field types and required properties.",
		CommonCauses: []string{"Validation errors", "Business logic violations", "Invalid field values"},
	},
	429: {
		Title:        "Too Many Requests",
		Message:      "Rate limit exceeded. You've sent too many requests in a given time period.",
		Fix:          "Implement exponential backoff in your client. Check the 'Retry-After' header for the wait time.",
		CommonCauses: []string{"Too many requests", "Rate limit exceeded", "Burst limit reached"},
	},
	500: {
		Title:        "Internal Server Error",
		Message:      "An unexpected error occurred on the server side.",
		Fix:          "This is likely a temporary issue. Try again in a few moments or contact support if it persists.",
		CommonCauses: []string{"Server bug", "Database connection error", "Unhandled exception"},
	},
	502: {
		Title:        "Bad Gateway",
		Message:      "The server received an invalid response from an upstream server.",
		Fix:          "This indicates a temporary server issue. Retry your request with exponential backoff.",
		CommonCauses: []string{"Upstream server error", "Load balancer issues", "Network problems"},
	},
	503: {
		Title:        "Service Unavailable",
		Message:      "The service is temporarily unavailable, often due to maintenance or overload.",
		Fix:          "Wait a few minutes and try again. Check the service status page for maintenance announcements.",
		CommonCauses: []string{"Server maintenance", "Overloaded server", "Temporary outage"},
	},
	504: {
		Title:        "Gateway Timeout",
		Message:      "The server didn't receive a response from an upstream server in time.",
		Fix:          "Reduce request complexity or try again later. Consider implementing client-side timeouts.",
		CommonCauses: []string{"Slow upstream response", "Network timeout", "Processing timeout"},
	},
}

// Lookup returns the catalog entry for the given status code. Codes without
// a dedicated entry map to a generic fallback whose message echoes the code.
func Lookup(code int) Entry {
	if e, ok := entries[code]; ok {
		return e
	}
	return Entry{
		Title:        "Unknown Error",
		Message:      fmt.Sprintf("HTTP status code %d was returned.", code),
		Fix:          "Refer to HTTP status code documentation for this specific error.",
		CommonCauses: []string{"Unknown cause"},
	}
}

// Known reports whether the catalog has a dedicated entry for code.
func Known(code int) bool {
	_, ok := entries[code]
	return ok
}

// Codes returns the status codes with dedicated catalog entries.
func Codes() []int {
	codes := make([]int, 0, len(entries))
	for c := range entries {
		codes = append(codes, c)
	}
	return codes
}
