package simulate

import (
	"net/url"
	"strconv"
	"strings"
)

// Malformed optional input is defined to fall back to a safe default rather
// than error. These combinators make that fallback an explicit, testable
// code path instead of an accidental catch-all.

// intOrDefault parses q[key] as an integer, returning def when the parameter
// is absent or malformed.
func intOrDefault(q url.Values, key string, def int) int {
	v := q.Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// boolOrDefault parses q[key] as a boolean, returning def when the parameter
// is absent or malformed. Accepts the forms strconv.ParseBool does.
func boolOrDefault(q url.Values, key string, def bool) bool {
	v := q.Get(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

// stringOrDefault returns q[key] or def when absent.
func stringOrDefault(q url.Values, key, def string) string {
	if v := q.Get(key); v != "" {
		return v
	}
	return def
}

// parseCodeList parses a comma-separated list of status codes. Malformed
// entries are skipped, not rejected. Returns nil for an empty list.
func parseCodeList(s string) []int {
	if s == "" {
		return nil
	}
	var codes []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		codes = append(codes, n)
	}
	return codes
}
