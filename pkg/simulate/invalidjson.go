package simulate

// malformedBodies maps each JSON error type to a literal payload that is
// broken in exactly that way. The strings are constants delivered verbatim —
// the whole point is to defeat the client's JSON parser, so nothing here is
// ever generated or re-serialized.
var malformedBodies = map[string]string{
	"missing_comma":  `{"status": "error" "message": "Missing comma between properties"}`,
	"unclosed_brace": `{"status": "error", "message": "Unclosed brace"`,
	"invalid_escape": `{"status": "error", "message": "Invalid escape \q sequence"}`,
	"trailing_comma": `{"status": "error", "message": "Trailing comma",}`,
	"unquoted_key":   `{status: "error", "message": "Unquoted key"}`,
	"single_quotes":  `{'status': 'error', 'message': 'Single quotes instead of double'}`,
}

// defaultJSONErrorType is the fallback when an unknown error type is
// requested. Unknown values are not an error — the simulator stays friendly
// and serves the default breakage instead.
const defaultJSONErrorType = "missing_comma"

// InvalidJSON returns a deliberately malformed JSON body with status 200 and
// a content type that still claims application/json.
func (s *Simulator) InvalidJSON(errorType string) *Response {
	body, ok := malformedBodies[errorType]
	if !ok {
		errorType = defaultJSONErrorType
		body = malformedBodies[errorType]
	}

	return &Response{
		StatusCode:  200,
		Raw:         body,
		ContentType: "application/json",
		Headers: map[string]string{
			"x-debug-mode":      "true",
			"x-json-error-type": errorType,
			"x-expected-error":  "JSON parse error",
		},
	}
}

// JSONErrorTypes returns the supported malformed-JSON error types.
func JSONErrorTypes() []string {
	types := make([]string, 0, len(malformedBodies))
	for t := range malformedBodies {
		types = append(types, t)
	}
	return types
}
