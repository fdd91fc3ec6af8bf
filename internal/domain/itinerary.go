package domain

import (
	"fmt"
	"strings"
	"time"
)

const maxItineraryDays = 90

// ItineraryRequest is the body of a generate-itinerary call. ArrivalDate
// is an optional ISO-8601 date.
type ItineraryRequest struct {
	Country     string   `json:"country"`
	Days        int      `json:"days"`
	Interests   []string `json:"interests"`
	ArrivalDate string   `json:"arrivalDate,omitempty"`
}

// Validate checks the request fields before generation is attempted.
func (r *ItineraryRequest) Validate() error {
	if strings.TrimSpace(r.Country) == "" {
		return fmt.Errorf("country is required")
	}
	if r.Days < 1 || r.Days > maxItineraryDays {
		return fmt.Errorf("days must be between 1 and %d", maxItineraryDays)
	}
	if r.ArrivalDate != "" {
		if _, err := time.Parse("2006-01-02", r.ArrivalDate); err != nil {
			return fmt.Errorf("arrivalDate must be YYYY-MM-DD: %w", err)
		}
	}
	return nil
}

// Itinerary is the opaque generated plan returned to the frontend.
type Itinerary struct {
	Itinerary string `json:"itinerary"`
}
