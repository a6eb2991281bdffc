package config

import "fmt"

// ServerConfiguration defines the simulation server runtime settings.
type ServerConfiguration struct {
	// HTTPPort is the port for the HTTP server
	HTTPPort int `json:"httpPort,omitempty" yaml:"httpPort,omitempty"`
	// Host is the listen address (default: 0.0.0.0)
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	// ReadTimeout is the HTTP read timeout in seconds
	ReadTimeout int `json:"readTimeout,omitempty" yaml:"readTimeout,omitempty"`
	// WriteTimeout is the HTTP write timeout in seconds. It must stay 0
	// (disabled): the timeout endpoint holds responses open for up to 120
	// seconds, and any lower write timeout would cut those off.
	WriteTimeout int `json:"writeTimeout,omitempty" yaml:"writeTimeout,omitempty"`
	// IdleTimeout is the keep-alive idle timeout in seconds
	IdleTimeout int `json:"idleTimeout,omitempty" yaml:"idleTimeout,omitempty"`
	// CORS configures Cross-Origin Resource Sharing. Default allows any
	// origin, since the server exists to be hit from arbitrary test clients.
	CORS *CORSConfig `json:"cors,omitempty" yaml:"cors,omitempty"`
	// TrustedProxies lists CIDR ranges whose X-Forwarded-For and X-Real-IP
	// headers are honored for client identification. Empty means headers
	// from any peer are ignored and the TCP source address is used.
	TrustedProxies []string `json:"trustedProxies,omitempty" yaml:"trustedProxies,omitempty"`
	// LogRequests enables per-request logging
	LogRequests bool `json:"logRequests" yaml:"logRequests"`
	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`
	// LogFormat selects the log output format (text or json)
	LogFormat string `json:"logFormat,omitempty" yaml:"logFormat,omitempty"`
}

// CORSConfig defines Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	// Enabled enables CORS handling. When false, no CORS headers are added.
	Enabled bool `json:"enabled" yaml:"enabled"`
	// AllowOrigins specifies allowed origins. Use "*" for any origin.
	AllowOrigins []string `json:"allowOrigins,omitempty" yaml:"allowOrigins,omitempty"`
	// AllowMethods specifies allowed HTTP methods.
	AllowMethods []string `json:"allowMethods,omitempty" yaml:"allowMethods,omitempty"`
	// AllowHeaders specifies allowed request headers.
	AllowHeaders []string `json:"allowHeaders,omitempty" yaml:"allowHeaders,omitempty"`
	// AllowCredentials indicates whether credentials are allowed.
	AllowCredentials bool `json:"allowCredentials,omitempty" yaml:"allowCredentials,omitempty"`
	// MaxAge is the preflight cache duration in seconds. Default: 86400.
	MaxAge int `json:"maxAge,omitempty" yaml:"maxAge,omitempty"`
}

// GetAllowOriginValue returns the Access-Control-Allow-Origin value for the
// given request origin, or "" when the origin is not allowed. A wildcard
// with credentials echoes the request origin, since "*" cannot be combined
// with Access-Control-Allow-Credentials.
func (c *CORSConfig) GetAllowOriginValue(requestOrigin string) string {
	if c == nil || !c.Enabled {
		return ""
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			if c.AllowCredentials {
				if requestOrigin != "" {
					return requestOrigin
				}
				return ""
			}
			return "*"
		}
	}

	for _, allowed := range c.AllowOrigins {
		if allowed == requestOrigin {
			return requestOrigin
		}
	}

	return ""
}

// DefaultServerConfiguration returns a ServerConfiguration with sensible
// defaults for local development.
func DefaultServerConfiguration() *ServerConfiguration {
	return &ServerConfiguration{
		HTTPPort:     8000,
		Host:         "0.0.0.0",
		ReadTimeout:  30,
		WriteTimeout: 0,
		IdleTimeout:  120,
		CORS:         DefaultCORSConfig(),
		LogRequests:  true,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// DefaultCORSConfig returns a CORSConfig that allows any origin with
// credentials, matching what browser-based API clients expect from a
// diagnostic service.
func DefaultCORSConfig() *CORSConfig {
	return &CORSConfig{
		Enabled:          true,
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", "Accept", "Origin"},
		AllowCredentials: false,
		MaxAge:           86400,
	}
}

// Validate checks the configuration for values the server cannot run with.
func (c *ServerConfiguration) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("httpPort must be between 1 and 65535, got %d", c.HTTPPort)
	}
	if c.ReadTimeout < 0 {
		return fmt.Errorf("readTimeout must not be negative, got %d", c.ReadTimeout)
	}
	if c.WriteTimeout != 0 {
		return fmt.Errorf("writeTimeout must be 0 so hung responses are not cut short, got %d", c.WriteTimeout)
	}
	if c.IdleTimeout < 0 {
		return fmt.Errorf("idleTimeout must not be negative, got %d", c.IdleTimeout)
	}
	return nil
}

// Addr returns the host:port listen address.
func (c *ServerConfiguration) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HTTPPort)
}
