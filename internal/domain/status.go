// Package domain contains core domain types for the Worldmark application.
package domain

import (
	"encoding/json"
	"fmt"
)

// Status is a country's travel classification. A country with no stored
// entry is unset; there is no Status value for "unset".
type Status string

const (
	// StatusVisited marks a country the user has already been to.
	StatusVisited Status = "visited"
	// StatusPlan marks a country the user intends to visit.
	StatusPlan Status = "plan"
	// StatusReset is a request sentinel that removes a country's entry.
	// It is never stored.
	StatusReset Status = "reset"
)

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusVisited, StatusPlan, StatusReset:
		return Status(s), nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}

// Storable reports whether the status may appear in a persisted entry.
func (s Status) Storable() bool {
	return s == StatusVisited || s == StatusPlan
}

// UnmarshalJSON validates the status on decode so handlers reject bad
// values before they reach the store.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
