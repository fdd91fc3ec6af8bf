package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"worldmark/internal/domain"
	"worldmark/internal/identity"
	"worldmark/internal/itinerary"
)

// ItineraryHandler fronts the itinerary-generation service.
type ItineraryHandler struct {
	generator itinerary.Generator
}

// NewItineraryHandler creates a new itinerary handler.
func NewItineraryHandler(generator itinerary.Generator) *ItineraryHandler {
	return &ItineraryHandler{generator: generator}
}

// RegisterRoutes registers the generation route. The path is kept at the
// root, not under /api, because the original frontend posts there.
func (h *ItineraryHandler) RegisterRoutes(r chi.Router) {
	r.Post("/generate-itinerary", h.Generate)
}

// Generate produces an itinerary for one planned country. Failures never
// touch selection state; the map stays usable.
func (h *ItineraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID := identity.UserIDFromContext(r.Context())

	var req domain.ItineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		Error(w, http.StatusBadRequest, err.Error())
		return
	}

	text, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Itinerary generation failed", "error", err, "user_id", userID, "country", req.Country)
		Error(w, http.StatusBadGateway, "itinerary generation failed")
		return
	}

	JSON(w, http.StatusOK, domain.Itinerary{Itinerary: text})
}
