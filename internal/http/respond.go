package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/kranthi-07/Dab/internal/repository"
	"github.com/kranthi-07/Dab/internal/service"
	"github.com/kranthi-07/Dab/internal/session"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps the service error taxonomy to HTTP statuses.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrNoSession):
		respondError(w, http.StatusUnauthorized, "not_authenticated", "Not logged in")
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, "invalid_input", "Missing or invalid field")
	case errors.Is(err, repository.ErrDuplicateUser):
		respondError(w, http.StatusBadRequest, "duplicate_user", "User already exists!")
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusBadRequest, "invalid_credentials", "Invalid credentials")
	case errors.Is(err, repository.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "not_found", "User not found")
	case errors.Is(err, service.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "not_found", "Item not found in cart")
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "Server error")
	}
}
