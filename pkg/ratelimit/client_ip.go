package ratelimit

import (
	"net"
	"net/http"
	"strings"
)

// Resolver derives the client key for rate limiting from an HTTP request,
// respecting trusted proxy settings. By default only the connection's
// RemoteAddr is used; X-Forwarded-For and X-Real-IP are honored only when the
// connection comes from a trusted proxy.
type Resolver struct {
	trustedProxies []*net.IPNet
	trustProxy     bool
}

// NewResolver creates a resolver. trustedProxies holds CIDR ranges or single
// IPs of proxies whose forwarding headers are trusted. trustAll trusts proxy
// headers from any source (insecure; test environments only).
func NewResolver(trustedProxies []string, trustAll bool) *Resolver {
	r := &Resolver{}

	if trustAll {
		r.trustProxy = true
		r.trustedProxies = nil // nil means trust all
		return r
	}

	for _, cidr := range trustedProxies {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			// Try parsing as a single IP
			ip := net.ParseIP(cidr)
			if ip != nil {
				if ip.To4() != nil {
					_, network, _ = net.ParseCIDR(cidr + "/32")
				} else {
					_, network, _ = net.ParseCIDR(cidr + "/128")
				}
			}
		}
		if network != nil {
			r.trustedProxies = append(r.trustedProxies, network)
			r.trustProxy = true
		}
	}

	return r
}

// ClientIP extracts the client IP from the request.
func (rv *Resolver) ClientIP(r *http.Request) string {
	remoteIP := extractRemoteIP(r.RemoteAddr)

	if rv.isTrustedProxy(remoteIP) {
		// X-Forwarded-For may contain multiple IPs; the first is the client.
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if idx := strings.IndexByte(xff, ','); idx != -1 {
				xff = xff[:idx]
			}
			ip := strings.TrimSpace(xff)
			if ip != "" && isValidIP(ip) {
				return ip
			}
		}

		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			ip := strings.TrimSpace(xri)
			if ip != "" && isValidIP(ip) {
				return ip
			}
		}
	}

	return remoteIP
}

// isTrustedProxy checks if the given IP is from a trusted proxy.
func (rv *Resolver) isTrustedProxy(ip string) bool {
	if !rv.trustProxy {
		return false
	}
	// nil trustedProxies with trustProxy=true means trust all
	if rv.trustedProxies == nil {
		return true
	}
	parsedIP := net.ParseIP(ip)
	if parsedIP == nil {
		return false
	}
	for _, network := range rv.trustedProxies {
		if network.Contains(parsedIP) {
			return true
		}
	}
	return false
}

// extractRemoteIP extracts the IP address from RemoteAddr (strips port if present).
func extractRemoteIP(remoteAddr string) string {
	ip, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		return remoteAddr
	}
	return ip
}

// isValidIP checks if the string is a valid IP address.
func isValidIP(s string) bool {
	return net.ParseIP(s) != nil
}
