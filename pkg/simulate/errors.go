package simulate

// ValidationError reports an out-of-contract parameter supplied by the
// caller. The transport layer surfaces it as a 400 response with a plain
// message. It is never retried and never logged as a server fault.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// validationError is a convenience constructor.
func validationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// SimulatedFailure is an intentionally produced fault that is itself the
// product: it is always delivered to the client, never suppressed or retried
// internally.
type SimulatedFailure struct {
	StatusCode int
	Message    string
}

func (e *SimulatedFailure) Error() string {
	return e.Message
}
