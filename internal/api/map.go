package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"worldmark/internal/domain"
	"worldmark/internal/identity"
	"worldmark/internal/mapview"
	"worldmark/internal/selection"
)

// MapHandler exposes the map surface: region rendering state and the
// choice-prompt protocol.
type MapHandler struct {
	*Handler
}

// NewMapHandler creates a new map handler.
func NewMapHandler(base *Handler) *MapHandler {
	return &MapHandler{Handler: base}
}

// RegisterRoutes registers map routes.
func (h *MapHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/map", func(r chi.Router) {
		r.Get("/regions", h.Regions)
		r.Post("/prompt", h.OpenPrompt)
		r.Post("/prompt/choose", h.Choose)
		r.Post("/prompt/dismiss", h.Dismiss)
	})
}

// Regions returns every region with its current fill color.
func (h *MapHandler) Regions(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	views, err := h.surface.Regions(r.Context(), userID)
	if err != nil {
		slog.Error("Failed to build region views", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to load regions")
		return
	}

	JSON(w, http.StatusOK, views)
}

type openPromptRequest struct {
	Country string  `json:"country"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// OpenPrompt opens the three-choice prompt for a clicked region. Any
// prompt the user already has open is closed first.
func (h *MapHandler) OpenPrompt(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req openPromptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Country == "" {
		Error(w, http.StatusBadRequest, "invalid prompt request")
		return
	}

	prompt, err := h.surface.OpenPrompt(userID, req.Country, req.X, req.Y)
	if err != nil {
		if errors.Is(err, mapview.ErrUnknownRegion) {
			Error(w, http.StatusNotFound, "unknown region")
			return
		}
		slog.Error("Failed to open prompt", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to open prompt")
		return
	}

	JSON(w, http.StatusOK, prompt)
}

type chooseRequest struct {
	PromptID string        `json:"prompt_id"`
	Status   domain.Status `json:"status"`
}

// Choose applies a choice on the current prompt and returns the updated
// selection list.
func (h *MapHandler) Choose(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req chooseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PromptID == "" {
		Error(w, http.StatusBadRequest, "invalid choice")
		return
	}

	list, err := h.surface.Choose(r.Context(), userID, req.PromptID, req.Status)
	if err != nil {
		if errors.Is(err, mapview.ErrStalePrompt) {
			Error(w, http.StatusConflict, "prompt is no longer open")
			return
		}
		if errors.Is(err, selection.ErrInvalidStatus) {
			Error(w, http.StatusBadRequest, "invalid status")
			return
		}
		slog.Error("Failed to apply choice", "error", err, "user_id", userID)
		Error(w, http.StatusInternalServerError, "failed to apply choice")
		return
	}

	JSON(w, http.StatusOK, list)
}

type dismissRequest struct {
	PromptID string `json:"prompt_id"`
}

// Dismiss closes the current prompt without changing any state.
func (h *MapHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())
	if userID == "" {
		Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req dismissRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PromptID == "" {
		Error(w, http.StatusBadRequest, "invalid dismissal")
		return
	}

	h.surface.Dismiss(userID, req.PromptID)
	w.WriteHeader(http.StatusNoContent)
}
