package submission

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/fivesolo/site-api/pkg/logging"
)

// Handler exposes the contact pipeline over HTTP.
type Handler struct {
	service *Service
	logger  *logging.Logger
}

// NewHandler creates a submission handler.
func NewHandler(service *Service, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{service: service, logger: logger}
}

type successResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Submit handles POST /api/contact. Success is {ok:true}; failures carry one
// stable snake_case kind in {error:"<kind>"}. Internal detail stays in logs.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Info("failed to decode submission body", "error", err)
		writeKind(w, KindMissingFields)
		return
	}

	kind := h.service.Process(r.Context(), req, clientIP(r))
	if kind != "" {
		writeKind(w, kind)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(successResponse{OK: true})
}

// Preflight handles OPTIONS /api/contact; CORS headers come from middleware.
func (h *Handler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeKind(w http.ResponseWriter, kind Kind) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(kind.HTTPStatus())
	json.NewEncoder(w).Encode(errorResponse{Error: kind.String()})
}

// clientIP prefers the X-Real-Ip header set by chi's RealIP middleware.
func clientIP(r *http.Request) string {
	if xri := strings.TrimSpace(r.Header.Get("X-Real-Ip")); xri != "" {
		return xri
	}
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}
