// Package selection owns the authoritative country→status mapping and
// keeps it synchronized with durable storage and the rendering layer.
package selection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"worldmark/internal/domain"
	"worldmark/internal/store"
)

// ErrInvalidStatus is returned when a mutation carries a status that is
// neither storable nor the reset sentinel.
var ErrInvalidStatus = errors.New("invalid status")

// OnChange is invoked after every successful mutation with the user's new
// fully-materialized list. Used to push updates to open tabs.
type OnChange func(userID string, list domain.SelectionList)

// Store is the selection state model. All mutations go through it: each
// one is a read-modify-write against the stored list followed by a
// write-through full-list save, serialized per user.
type Store struct {
	repo     store.Repository
	onChange OnChange

	// userLocks serializes mutations per user so concurrent requests
	// from the same browser can't interleave read-modify-write cycles.
	userLocks sync.Map
}

// NewStore creates a selection store backed by repo.
func NewStore(repo store.Repository) *Store {
	return &Store{repo: repo}
}

// SetOnChange registers the change listener. Must be called before the
// store receives traffic.
func (s *Store) SetOnChange(fn OnChange) {
	s.onChange = fn
}

// Load returns the user's current list. Absent state is an empty list,
// never an error; malformed stored rows are dropped by the repository.
func (s *Store) Load(ctx context.Context, userID string) (domain.SelectionList, error) {
	list, err := s.repo.GetSelections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load selections: %w", err)
	}
	return list, nil
}

// Upsert applies one choice for a country and returns the new full list.
// A reset status removes the country; otherwise the status is set,
// keeping an existing entry's position and appending a new one. The list
// is persisted before the call returns.
func (s *Store) Upsert(ctx context.Context, userID, country string, status domain.Status) (domain.SelectionList, error) {
	if status != domain.StatusReset && !status.Storable() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	unlock := s.lockUser(userID)
	defer unlock()

	current, err := s.repo.GetSelections(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load selections: %w", err)
	}

	next := current.Upsert(country, status)
	if err := s.repo.ReplaceSelections(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("persist selections: %w", err)
	}

	slog.Info("Selection updated", "user_id", userID, "country", country, "status", status, "count", len(next))
	s.notify(userID, next)
	return next, nil
}

// Replace overwrites the user's mapping with an externally supplied list.
// Entries with unknown statuses and duplicate countries are dropped,
// keeping first occurrences. Returns the list as stored.
func (s *Store) Replace(ctx context.Context, userID string, list domain.SelectionList) (domain.SelectionList, error) {
	unlock := s.lockUser(userID)
	defer unlock()

	next := list.Normalize()
	if err := s.repo.ReplaceSelections(ctx, userID, next); err != nil {
		return nil, fmt.Errorf("persist selections: %w", err)
	}

	slog.Info("Selections replaced", "user_id", userID, "count", len(next))
	s.notify(userID, next)
	return next, nil
}

// Clear removes every selection for the user.
func (s *Store) Clear(ctx context.Context, userID string) error {
	_, err := s.Replace(ctx, userID, nil)
	return err
}

func (s *Store) lockUser(userID string) func() {
	lock, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	mu := lock.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *Store) notify(userID string, list domain.SelectionList) {
	if s.onChange != nil {
		s.onChange(userID, list)
	}
}
