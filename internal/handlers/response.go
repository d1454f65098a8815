package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-ticket-registry/internal/logger"
	"github.com/sbilibin2017/gw-ticket-registry/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse represents a successful response without payload
// swagger:model MessageResponse
type MessageResponse struct {
	// Success message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeBadRequest(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
}

// writeError maps service errors to status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrMissingField):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "All fields are required"})
	case errors.Is(err, services.ErrStockOverflow):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Stock limit exceeded"})
	case errors.Is(err, services.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
	case errors.Is(err, services.ErrInvalidOrExpiredToken):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired token"})
	case errors.Is(err, services.ErrForbidden):
		writeJSON(w, http.StatusForbidden, ErrorResponse{Error: "Admin accounts cannot be deleted"})
	case errors.Is(err, services.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "User not found"})
	case errors.Is(err, services.ErrDuplicateUsername):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Username already exists"})
	case errors.Is(err, services.ErrDuplicateEmail):
		writeJSON(w, http.StatusConflict, ErrorResponse{Error: "Email already registered"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
