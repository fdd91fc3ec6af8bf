package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"worldmark/internal/domain"
	"worldmark/internal/identity"
	"worldmark/internal/selection"
)

// SelectionHandler handles the selection-list endpoints.
type SelectionHandler struct {
	*Handler
}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler(base *Handler) *SelectionHandler {
	return &SelectionHandler{Handler: base}
}

// RegisterRoutes registers selection routes.
func (h *SelectionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/selections", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Replace)
		r.Delete("/", h.Clear)
		r.Put("/{country}", h.Upsert)
	})
	r.Get("/api/me", h.GetMe)
}

// List returns the user's current selection list.
func (h *SelectionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	list, err := h.selections.Load(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to load selections", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to load selections")
		return
	}

	JSON(w, http.StatusOK, list)
}

type upsertRequest struct {
	Status domain.Status `json:"status"`
}

// Upsert applies one status choice to a country and returns the full list.
func (h *SelectionHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	country, err := url.PathUnescape(chi.URLParam(r, "country"))
	if err != nil || country == "" {
		Error(w, http.StatusBadRequest, "invalid country")
		return
	}

	var req upsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid status")
		return
	}

	list, err := h.selections.Upsert(r.Context(), userID, country, req.Status)
	if err != nil {
		if errors.Is(err, selection.ErrInvalidStatus) {
			Error(w, http.StatusBadRequest, "invalid status")
			return
		}
		slog.Error("Failed to upsert selection", "error", err, "user_id", userID, "country", country)
		Error(w, http.StatusInternalServerError, "failed to save selection")
		return
	}

	JSON(w, http.StatusOK, list)
}

// Replace overwrites the user's list with the request body.
func (h *SelectionHandler) Replace(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var list domain.SelectionList
	if err := json.NewDecoder(r.Body).Decode(&list); err != nil {
		Error(w, http.StatusBadRequest, "invalid selection list")
		return
	}

	stored, err := h.selections.Replace(r.Context(), userID, list)
	if err != nil {
		slog.Error("Failed to replace selections", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to save selections")
		return
	}

	JSON(w, http.StatusOK, stored)
}

// Clear removes every selection for the user.
func (h *SelectionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.selections.Clear(r.Context(), userID); err != nil {
		slog.Error("Failed to clear selections", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to clear selections")
		return
	}

	JSON(w, http.StatusOK, domain.SelectionList{})
}

// GetMe returns the current identity and its selection count.
func (h *SelectionHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.repo.GetUser(r.Context(), userID)
	if err != nil || user == nil {
		Error(w, http.StatusUnauthorized, "user not found")
		return
	}

	list, err := h.selections.Load(r.Context(), userID)
	if err != nil {
		Error(w, http.StatusInternalServerError, "failed to load selections")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"user_id":         user.UserID,
		"username":        user.Username,
		"selection_count": len(list),
	})
}
