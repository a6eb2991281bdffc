package simulate

import (
	"context"
	"errors"
	"net/http"

	"github.com/faultd/faultd/pkg/httputil"
)

// Handler is the HTTP transport for the Simulator: it maps query parameters
// onto handler inputs and serializes the returned Response. It carries no
// decision logic of its own.
type Handler struct {
	sim *Simulator
	mux *http.ServeMux
}

// NewHandler creates the /simulate HTTP handler for sim.
func NewHandler(sim *Simulator) *Handler {
	h := &Handler{sim: sim, mux: http.NewServeMux()}
	h.registerRoutes()
	return h
}

// registerRoutes sets up the simulation endpoints.
func (h *Handler) registerRoutes() {
	h.mux.HandleFunc("GET /simulate/status", h.handleStatus)
	h.mux.HandleFunc("GET /simulate/invalid-json", h.handleInvalidJSON)
	h.mux.HandleFunc("GET /simulate/slow", h.handleSlow)
	h.mux.HandleFunc("GET /simulate/timeout", h.handleTimeout)
	h.mux.HandleFunc("GET /simulate/rate-limit", h.handleRateLimit)
	h.mux.HandleFunc("GET /simulate/random", h.handleRandom)
	h.mux.HandleFunc("GET /simulate/network-error", h.handleNetworkError)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	code := intOrDefault(q, "code", 400)
	includeHeaders := boolOrDefault(q, "include_headers", true)

	resp, err := h.sim.Status(code, includeHeaders)
	h.write(w, r, resp, err)
}

func (h *Handler) handleInvalidJSON(w http.ResponseWriter, r *http.Request) {
	errorType := stringOrDefault(r.URL.Query(), "error_type", defaultJSONErrorType)
	h.write(w, r, h.sim.InvalidJSON(errorType), nil)
}

func (h *Handler) handleSlow(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	seconds := intOrDefault(q, "seconds", 5)
	jitter := boolOrDefault(q, "jitter", false)

	resp, err := h.sim.Slow(r.Context(), seconds, jitter)
	h.write(w, r, resp, err)
}

func (h *Handler) handleTimeout(w http.ResponseWriter, r *http.Request) {
	hangTime := intOrDefault(r.URL.Query(), "hang_time", 60)

	resp, err := h.sim.Hang(r.Context(), hangTime)
	h.write(w, r, resp, err)
}

func (h *Handler) handleRateLimit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := intOrDefault(q, "limit", DefaultRateLimit)
	window := intOrDefault(q, "window", DefaultRateWindow)
	reset := boolOrDefault(q, "reset_counts", false)

	clientKey := h.sim.resolver.ClientIP(r)
	h.write(w, r, h.sim.RateLimit(clientKey, limit, window, reset), nil)
}

func (h *Handler) handleRandom(w http.ResponseWriter, r *http.Request) {
	excludeCodes := r.URL.Query().Get("exclude_codes")

	resp, err := h.sim.Random(r.Context(), excludeCodes)
	h.write(w, r, resp, err)
}

func (h *Handler) handleNetworkError(w http.ResponseWriter, r *http.Request) {
	errorType := stringOrDefault(r.URL.Query(), "error_type", NetworkConnectionReset)

	resp, err := h.sim.NetworkError(errorType)
	h.write(w, r, resp, err)
}

// write serializes a handler outcome. ValidationErrors become 400s,
// SimulatedFailures are delivered at their own status, and a cancelled
// context writes nothing (the client is gone).
func (h *Handler) write(w http.ResponseWriter, r *http.Request, resp *Response, err error) {
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			httputil.WriteBadRequest(w, "validation_error", verr.Message)
			return
		}

		var sf *SimulatedFailure
		if errors.As(err, &sf) {
			httputil.WriteJSON(w, sf.StatusCode, map[string]any{
				"error":   http.StatusText(sf.StatusCode),
				"code":    sf.StatusCode,
				"message": sf.Message,
			})
			return
		}

		if errors.Is(err, context.Canceled) || r.Context().Err() != nil {
			return
		}

		httputil.WriteInternalError(w, "internal_error", err.Error())
		return
	}

	for name, value := range resp.Headers {
		w.Header().Set(name, value)
	}

	if resp.Raw != "" {
		httputil.WriteRaw(w, resp.StatusCode, resp.ContentType, resp.Raw)
		return
	}
	httputil.WriteJSON(w, resp.StatusCode, resp.Body)
}
