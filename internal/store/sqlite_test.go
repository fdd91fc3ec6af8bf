package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"worldmark/internal/domain"
)

func newTestStore(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "worldmark.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close failed: %v", err)
		}
	})
	return repo
}

func TestReplaceThenGetRoundTrips(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	list := domain.SelectionList{
		{Country: "France", Status: domain.StatusVisited},
		{Country: "Japan", Status: domain.StatusPlan},
		{Country: "Brazil", Status: domain.StatusPlan},
	}
	if err := repo.ReplaceSelections(ctx, "user-1", list); err != nil {
		t.Fatalf("ReplaceSelections failed: %v", err)
	}

	got, err := repo.GetSelections(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetSelections failed: %v", err)
	}
	if len(got) != len(list) {
		t.Fatalf("round trip lost entries: got %+v", got)
	}
	for i := range list {
		if got[i] != list[i] {
			t.Errorf("entry %d = %+v, want %+v (order must survive)", i, got[i], list[i])
		}
	}
}

func TestGetSelectionsMissingUser(t *testing.T) {
	repo := newTestStore(t)

	got, err := repo.GetSelections(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("missing state must not error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %+v", got)
	}
}

func TestReplaceOverwritesCompletely(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	first := domain.SelectionList{
		{Country: "France", Status: domain.StatusVisited},
		{Country: "Japan", Status: domain.StatusPlan},
	}
	if err := repo.ReplaceSelections(ctx, "user-1", first); err != nil {
		t.Fatal(err)
	}

	second := domain.SelectionList{{Country: "Chile", Status: domain.StatusPlan}}
	if err := repo.ReplaceSelections(ctx, "user-1", second); err != nil {
		t.Fatal(err)
	}

	got, err := repo.GetSelections(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0] != second[0] {
		t.Errorf("old entries leaked through replace: %+v", got)
	}
}

func TestMalformedRowsAreSkipped(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	if err := repo.ReplaceSelections(ctx, "user-1", domain.SelectionList{
		{Country: "France", Status: domain.StatusVisited},
	}); err != nil {
		t.Fatal(err)
	}

	// Corrupt a row behind the store's back, as an old or buggy writer
	// might have.
	s := repo.(*SQLiteStore)
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO selections (user_id, country, status, position, updated_at) VALUES (?, ?, ?, ?, ?)`,
		"user-1", "Atlantis", "someday", 1, time.Now().Unix()); err != nil {
		t.Fatalf("failed to inject malformed row: %v", err)
	}

	got, err := repo.GetSelections(ctx, "user-1")
	if err != nil {
		t.Fatalf("malformed row must not fail the load: %v", err)
	}
	if len(got) != 1 || got[0].Country != "France" {
		t.Errorf("expected only the valid row, got %+v", got)
	}
}

func TestUserLifecycle(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()
	now := time.Now().Truncate(time.Second)

	user := &domain.User{
		UserID:     "anon_0123",
		Username:   "traveler-0123",
		LastSeenAt: now,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := repo.UpsertUser(ctx, user); err != nil {
		t.Fatalf("UpsertUser failed: %v", err)
	}

	got, err := repo.GetUser(ctx, "anon_0123")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if got == nil || got.Username != "traveler-0123" {
		t.Fatalf("unexpected user: %+v", got)
	}

	missing, err := repo.GetUser(ctx, "anon_none")
	if err != nil || missing != nil {
		t.Errorf("missing user should be (nil, nil), got (%+v, %v)", missing, err)
	}
}

func TestStaleUsersAndDelete(t *testing.T) {
	repo := newTestStore(t)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	if err := repo.UpsertUser(ctx, &domain.User{
		UserID: "anon_old", Username: "traveler-old",
		LastSeenAt: old, CreatedAt: old, UpdatedAt: old,
	}); err != nil {
		t.Fatal(err)
	}
	now := time.Now()
	if err := repo.UpsertUser(ctx, &domain.User{
		UserID: "anon_new", Username: "traveler-new",
		LastSeenAt: now, CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		t.Fatal(err)
	}
	if err := repo.ReplaceSelections(ctx, "anon_old", domain.SelectionList{
		{Country: "Peru", Status: domain.StatusVisited},
	}); err != nil {
		t.Fatal(err)
	}

	stale, err := repo.GetStaleUsers(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("GetStaleUsers failed: %v", err)
	}
	if len(stale) != 1 || stale[0].UserID != "anon_old" {
		t.Fatalf("unexpected stale set: %+v", stale)
	}

	if err := repo.DeleteUser(ctx, "anon_old"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if got, _ := repo.GetUser(ctx, "anon_old"); got != nil {
		t.Errorf("user survived delete: %+v", got)
	}
	list, err := repo.GetSelections(ctx, "anon_old")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("selections survived delete: %+v", list)
	}
}
