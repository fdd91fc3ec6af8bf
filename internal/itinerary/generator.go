// Package itinerary fronts the opaque itinerary-generation service. The
// selection model never depends on it: a failed generation leaves map
// state untouched.
package itinerary

import (
	"context"
	"fmt"
	"strings"

	"worldmark/internal/domain"
)

// Generator produces an opaque itinerary string for a validated request.
type Generator interface {
	Generate(ctx context.Context, req domain.ItineraryRequest) (string, error)
}

// StubGenerator returns deterministic placeholder text. Used when no LLM
// API key is configured so the rest of the app stays usable.
type StubGenerator struct{}

// Generate builds the placeholder itinerary text.
func (StubGenerator) Generate(_ context.Context, req domain.ItineraryRequest) (string, error) {
	return fmt.Sprintf("Sample itinerary for %d days in %s focused on %s.",
		req.Days, req.Country, strings.Join(req.Interests, ", ")), nil
}
