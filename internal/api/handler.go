// Package api provides HTTP handlers for the Worldmark API.
package api

import (
	"encoding/json"
	"net/http"

	"worldmark/internal/mapview"
	"worldmark/internal/selection"
	"worldmark/internal/store"
)

// Handler provides common handler utilities and shared dependencies.
type Handler struct {
	repo       store.Repository
	selections *selection.Store
	surface    *mapview.Surface
}

// NewHandler creates a new Handler with common dependencies.
func NewHandler(repo store.Repository, selections *selection.Store, surface *mapview.Surface) *Handler {
	return &Handler{
		repo:       repo,
		selections: selections,
		surface:    surface,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
