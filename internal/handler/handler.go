package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-catalog/internal/model"

	"github.com/rs/zerolog"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, ErrorResponse{Error: message})
}

// writeServiceError maps a service error onto the error taxonomy: validation
// failures to 400, missing identifiers to 404, a failing persistence layer to
// 503, and anything else to 500 with the fallback message.
func writeServiceError(w http.ResponseWriter, err error, fallback string, logger zerolog.Logger) {
	var validationErr *model.ValidationError
	var notFoundErr *model.NotFoundError
	var unavailableErr *model.UnavailableError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error(), logger)
	case errors.As(err, &notFoundErr):
		writeError(w, http.StatusNotFound, notFoundErr.Error(), logger)
	case errors.As(err, &unavailableErr):
		writeError(w, http.StatusServiceUnavailable, unavailableErr.Error(), logger)
	default:
		writeError(w, http.StatusInternalServerError, fallback, logger)
	}
}
