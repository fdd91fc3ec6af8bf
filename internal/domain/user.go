package domain

import (
	"time"
)

// User represents an anonymous browser identity and its bookkeeping.
type User struct {
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	LastSeenAt time.Time `json:"last_seen_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Stale reports whether the user has been inactive longer than retention.
func (u *User) Stale(retention time.Duration) bool {
	return time.Since(u.LastSeenAt) > retention
}
