package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/notifyhub/apprise-node/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// errorBody is the JSON shape of every error response. ItemIndex is set when
// the error came from a specific input item.
type errorBody struct {
	Error     string `json:"error"`
	ItemIndex *int   `json:"item_index,omitempty"`
}

// mapError translates domain sentinel errors to HTTP status codes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error) {
	body := errorBody{Error: err.Error()}
	if idx, ok := domain.ItemIndex(err); ok {
		body.ItemIndex = &idx
	}

	var status int
	switch {
	case errors.Is(err, domain.ErrInvalidPolicy),
		errors.Is(err, domain.ErrEmptyDomain):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrMissingKey),
		errors.Is(err, domain.ErrMissingURLs),
		errors.Is(err, domain.ErrInvalidParameter),
		errors.Is(err, domain.ErrBatchTooLarge):
		status = http.StatusUnprocessableEntity
	default:
		// Everything else failed on the way to, or at, the Apprise instance.
		status = http.StatusBadGateway
	}

	respondJSON(w, status, body)
}
