// Package retention sweeps out anonymous identities that have gone
// quiet. Server-side storage grows with every browser that ever loaded
// the map, so stale identities and their selections are deleted after a
// configurable window.
package retention

import (
	"context"
	"log/slog"
	"time"

	"worldmark/internal/shared"
	"worldmark/internal/store"
)

// CleanupCallback is called after a user's state has been deleted.
type CleanupCallback func(userID string)

// StartWorker runs a background goroutine that periodically deletes
// users (and their selections) not seen within retention. It stops when
// ctx is canceled.
func StartWorker(ctx context.Context, repo store.Repository, retention, interval time.Duration, onCleanup CleanupCallback) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		slog.Info("Retention worker started", "interval", interval, "retention", retention)

		for {
			select {
			case <-ticker.C:
				sweep(ctx, repo, retention, onCleanup)
			case <-ctx.Done():
				slog.Info("Retention worker shutting down", "reason", ctx.Err())
				return
			}
		}
	}()
}

func sweep(ctx context.Context, repo store.Repository, retention time.Duration, onCleanup CleanupCallback) {
	stale, err := repo.GetStaleUsers(ctx, retention)
	if err != nil {
		slog.Error("Retention worker failed to list stale users", "error", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	slog.Info("Retention worker found stale identities", "count", len(stale))

	for _, user := range stale {
		if err := deleteUserWithRetry(ctx, repo, user.UserID); err != nil {
			slog.Warn("Retention worker failed to delete user",
				"error", err,
				"user_id", user.UserID)
			continue
		}
		if onCleanup != nil {
			onCleanup(user.UserID)
		}
	}
}

// deleteUserWithRetry retries SQLITE_BUSY conflicts with exponential
// backoff; a concurrent write-through save can hold the lock briefly.
func deleteUserWithRetry(ctx context.Context, repo store.Repository, userID string) error {
	const maxRetries = 3
	baseDelay := 100 * time.Millisecond

	var err error
	for i := 0; i < maxRetries; i++ {
		err = repo.DeleteUser(ctx, userID)
		if err == nil {
			return nil
		}
		if !shared.IsSQLiteConflictError(err) || i == maxRetries-1 {
			break
		}
		delay := baseDelay * time.Duration(1<<i)
		slog.Debug("Retention delete hit a lock conflict, retrying",
			"user_id", userID,
			"attempt", i+1,
			"delay", delay)
		time.Sleep(delay)
	}
	return err
}
