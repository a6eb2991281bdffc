// CORS middleware for the simulation server.

package engine

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/faultd/faultd/pkg/config"
)

// CORSMiddleware wraps an http.Handler with CORS handling based on
// configuration. The simulation endpoints are meant to be called from
// browser-based clients on arbitrary origins, so the default policy is
// wide open.
type CORSMiddleware struct {
	handler http.Handler
	config  *config.CORSConfig
}

// NewCORSMiddleware creates a new CORS middleware with the given
// configuration. If cfg is nil, the allow-all default is used.
func NewCORSMiddleware(handler http.Handler, cfg *config.CORSConfig) *CORSMiddleware {
	if cfg == nil {
		cfg = config.DefaultCORSConfig()
	}
	return &CORSMiddleware{handler: handler, config: cfg}
}

// ServeHTTP implements the http.Handler interface.
func (m *CORSMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !m.config.Enabled {
		m.handler.ServeHTTP(w, r)
		return
	}

	origin := r.Header.Get("Origin")
	allowOrigin := m.config.GetAllowOriginValue(origin)

	if allowOrigin != "" {
		w.Header().Set("Access-Control-Allow-Origin", allowOrigin)

		methods := m.config.AllowMethods
		if len(methods) == 0 {
			methods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"}
		}
		w.Header().Set("Access-Control-Allow-Methods", strings.Join(methods, ", "))

		headers := m.config.AllowHeaders
		if len(headers) == 0 {
			headers = []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"}
		}
		w.Header().Set("Access-Control-Allow-Headers", strings.Join(headers, ", "))

		if m.config.AllowCredentials {
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}

		maxAge := m.config.MaxAge
		if maxAge <= 0 {
			maxAge = 86400
		}
		w.Header().Set("Access-Control-Max-Age", strconv.Itoa(maxAge))
	}

	if r.Method == http.MethodOptions {
		if allowOrigin != "" {
			w.WriteHeader(http.StatusOK)
		} else {
			w.WriteHeader(http.StatusForbidden)
		}
		return
	}

	m.handler.ServeHTTP(w, r)
}
