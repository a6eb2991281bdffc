package simulate

// Network error types accepted by the network-error endpoint.
const (
	NetworkConnectionReset = "connection_reset"
	NetworkDNSFailure      = "dns_failure"
	NetworkSSLError        = "ssl_error"
)

// NetworkError emulates network-level failures between the service and an
// imaginary upstream. connection_reset is delivered as a SimulatedFailure
// (500, plain message); dns_failure and ssl_error return structured 502
// bodies; anything else is a ValidationError.
func (s *Simulator) NetworkError(errorType string) (*Response, error) {
	switch errorType {
	case NetworkConnectionReset:
		return nil, &SimulatedFailure{
			StatusCode: 500,
			Message:    "Connection reset by peer",
		}

	case NetworkDNSFailure:
		return &Response{
			StatusCode: 502,
			Body: NetworkErrorBody{
				Error:   "Bad Gateway",
				Code:    502,
				Message: "DNS resolution failed for upstream service",
				Fix:     "Check network connectivity and DNS settings",
				DebugInfo: NetworkDebugInfo{
					ErrorType:    "dns_resolution_failure",
					CommonCauses: []string{"Network connectivity issues", "DNS server problems", "Firewall blocking DNS"},
				},
			},
		}, nil

	case NetworkSSLError:
		return &Response{
			StatusCode: 502,
			Body: NetworkErrorBody{
				Error:   "SSL/TLS Error",
				Code:    502,
				Message: "SSL certificate verification failed",
				Fix:     "Check SSL certificate validity and chain",
				DebugInfo: NetworkDebugInfo{
					ErrorType:    "ssl_verification_failure",
					CommonCauses: []string{"Expired certificate", "Self-signed certificate", "Certificate chain issues"},
				},
			},
		}, nil

	default:
		return nil, validationError("Unknown network error type")
	}
}
