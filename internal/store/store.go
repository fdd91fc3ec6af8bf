// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"worldmark/internal/domain"
)

// Repository defines the interface for persisting identities and country
// selections.
type Repository interface {
	// GetUser retrieves a user by their user ID. Returns (nil, nil) when
	// the user does not exist.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// UpsertUser creates or updates a user record.
	UpsertUser(ctx context.Context, user *domain.User) error

	// UpdateLastSeen updates the last_seen_at timestamp for a user.
	UpdateLastSeen(ctx context.Context, userID string, lastSeen time.Time) error

	// GetSelections loads a user's selection list in insertion order.
	// Missing or unreadable state yields an empty list, not an error.
	GetSelections(ctx context.Context, userID string) (domain.SelectionList, error)

	// ReplaceSelections overwrites a user's stored list with the given
	// one in a single transaction. Storage never holds a partial list.
	ReplaceSelections(ctx context.Context, userID string, list domain.SelectionList) error

	// GetStaleUsers retrieves users whose last activity is older than
	// the retention window.
	GetStaleUsers(ctx context.Context, retention time.Duration) ([]*domain.User, error)

	// DeleteUser removes a user and all of their selections.
	DeleteUser(ctx context.Context, userID string) error

	// Ping verifies database connectivity.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close() error
}
