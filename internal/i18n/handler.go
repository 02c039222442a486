package i18n

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fivesolo/site-api/pkg/logging"
)

// Handler serves locale dictionaries to static clients.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates an i18n handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// DictionaryResponse is the payload for GET /api/i18n/{locale}.
type DictionaryResponse struct {
	Locale   Locale   `json:"locale"`
	Dir      string   `json:"dir"`
	Meta     Meta     `json:"meta"`
	Messages Messages `json:"messages"`
}

// GetDictionary handles GET /api/i18n/{locale} requests. Unknown locales
// return 404 rather than silently serving the default dictionary.
func (h *Handler) GetDictionary(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "locale")
	if !IsLocale(raw) {
		http.Error(w, "unknown locale", http.StatusNotFound)
		return
	}
	locale := Locale(raw)

	resp := DictionaryResponse{
		Locale:   locale,
		Dir:      Dir(locale),
		Meta:     MetaFor(locale),
		Messages: ForLocale(locale),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("failed to encode dictionary", "error", err, "locale", locale)
	}
}
