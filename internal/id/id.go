package id

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// requestIDPrefix marks identifiers handed out to clients for correlation.
const requestIDPrefix = "req_"

// requestIDHexLen is the number of hex characters after the prefix.
const requestIDHexLen = 12

// Request generates an opaque request identifier for response correlation.
// Format: req_ followed by 12 random hex characters. IDs are not
// cryptographically sensitive; collision probability is negligible for
// correlation purposes.
func Request() string {
	u := uuid.New()
	return requestIDPrefix + hex.EncodeToString(u[:])[:requestIDHexLen]
}

// IsRequest reports whether s looks like an identifier produced by Request.
func IsRequest(s string) bool {
	if len(s) != len(requestIDPrefix)+requestIDHexLen {
		return false
	}
	if s[:len(requestIDPrefix)] != requestIDPrefix {
		return false
	}
	_, err := hex.DecodeString(s[len(requestIDPrefix):])
	return err == nil
}
