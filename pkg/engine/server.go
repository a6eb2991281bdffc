package engine

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/faultd/faultd/pkg/config"
	"github.com/faultd/faultd/pkg/httputil"
	"github.com/faultd/faultd/pkg/logging"
	"github.com/faultd/faultd/pkg/ratelimit"
	"github.com/faultd/faultd/pkg/simulate"
)

// Server is the failure simulation server engine.
type Server struct {
	cfg         *config.ServerConfiguration
	log         *slog.Logger
	sim         *simulate.Simulator
	httpServer  *http.Server
	httpHandler http.Handler
	mu          sync.RWMutex
	running     bool
	startTime   time.Time
}

// ServerOption is a functional option for configuring a Server.
type ServerOption func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSimulator replaces the server's simulator. Useful for wiring a shared
// rate-limit store or a custom client-key resolver in tests.
func WithSimulator(sim *simulate.Simulator) ServerOption {
	return func(s *Server) {
		if sim != nil {
			s.sim = sim
		}
	}
}

// NewServer creates a new Server with the given configuration.
// Optional ServerOption functions can be passed to customize the server.
func NewServer(cfg *config.ServerConfiguration, opts ...ServerOption) *Server {
	if cfg == nil {
		cfg = config.DefaultServerConfiguration()
	}

	s := &Server{
		cfg: cfg,
		log: logging.Nop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.sim == nil {
		s.sim = simulate.NewSimulator(
			simulate.WithResolver(ratelimit.NewResolver(cfg.TrustedProxies, false)),
			simulate.WithLogger(s.log),
		)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.Handle("/simulate/", simulate.NewHandler(s.sim))

	var handler http.Handler = mux
	if cfg.LogRequests {
		handler = RequestLogMiddleware(handler, s.log)
	}
	handler = NewCORSMiddleware(handler, cfg.CORS)
	s.httpHandler = handler

	return s
}

// Handler returns the fully assembled HTTP handler, including middleware.
func (s *Server) Handler() http.Handler {
	return s.httpHandler
}

// Simulator returns the server's simulator.
func (s *Server) Simulator() *simulate.Simulator {
	return s.sim
}

// Start starts the HTTP server. It returns once the listener goroutine is
// launched; serve errors are logged, not returned.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server is already running")
	}

	// WriteTimeout stays at the configured zero: hung responses are held
	// open far longer than any sane write timeout.
	s.httpServer = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.httpHandler,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.IdleTimeout) * time.Second,
	}

	s.log.Info("starting HTTP server", "addr", s.cfg.Addr())
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Error("HTTP server error", "error", err)
		}
	}()

	s.running = true
	s.startTime = time.Now()
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var err error
	if s.httpServer != nil {
		if serr := s.httpServer.Shutdown(ctx); serr != nil {
			err = fmt.Errorf("HTTP shutdown: %w", serr)
		}
	}

	s.running = false
	return err
}

// IsRunning reports whether the server has been started and not yet stopped.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// handleRoot describes the service and its endpoints.
func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, map[string]any{
		"service": "API Failure Simulator",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"/simulate/status":        "Return any HTTP status code with debugging context",
			"/simulate/invalid-json":  "Return malformed JSON payloads",
			"/simulate/slow":          "Delay the response by a configurable number of seconds",
			"/simulate/timeout":       "Hang the request until the client times out",
			"/simulate/rate-limit":    "Per-client windowed rate limiting with 429 responses",
			"/simulate/random":        "Random failure from a configurable status pool",
			"/simulate/network-error": "Emulate connection resets, DNS and SSL failures",
			"/health":                 "Liveness probe",
		},
	})
}

// handleHealth handles the liveness probe endpoint.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteOK(w, map[string]string{
		"status":    "healthy",
		"message":   "API Failure Simulator is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
