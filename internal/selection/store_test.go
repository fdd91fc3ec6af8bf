package selection

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"worldmark/internal/domain"
)

// fakeRepo keeps selections in memory behind the same full-replace
// contract as the SQLite store.
type fakeRepo struct {
	mu         sync.Mutex
	selections map[string]domain.SelectionList
	failWrites bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{selections: make(map[string]domain.SelectionList)}
}

func (f *fakeRepo) GetSelections(_ context.Context, userID string) (domain.SelectionList, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.selections[userID]
	out := make(domain.SelectionList, len(list))
	copy(out, list)
	return out, nil
}

func (f *fakeRepo) ReplaceSelections(_ context.Context, userID string, list domain.SelectionList) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWrites {
		return fmt.Errorf("disk full")
	}
	stored := make(domain.SelectionList, len(list))
	copy(stored, list)
	f.selections[userID] = stored
	return nil
}

func (f *fakeRepo) GetUser(context.Context, string) (*domain.User, error)      { return nil, nil }
func (f *fakeRepo) UpsertUser(context.Context, *domain.User) error             { return nil }
func (f *fakeRepo) UpdateLastSeen(context.Context, string, time.Time) error    { return nil }
func (f *fakeRepo) GetStaleUsers(context.Context, time.Duration) ([]*domain.User, error) {
	return nil, nil
}
func (f *fakeRepo) DeleteUser(context.Context, string) error { return nil }
func (f *fakeRepo) Ping(context.Context) error               { return nil }
func (f *fakeRepo) Close() error                             { return nil }

func TestLoadEmptyState(t *testing.T) {
	store := NewStore(newFakeRepo())

	list, err := store.Load(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Load on empty state returned error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %+v", list)
	}
}

func TestUpsertWriteThrough(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo)
	ctx := context.Background()

	list, err := store.Upsert(ctx, "user-1", "France", domain.StatusVisited)
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	if len(list) != 1 || list[0].Country != "France" || list[0].Status != domain.StatusVisited {
		t.Fatalf("unexpected list after upsert: %+v", list)
	}

	// The mutation must already be durable: a fresh Load sees it.
	loaded, err := store.Load(ctx, "user-1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0] != list[0] {
		t.Errorf("loaded %+v, want %+v", loaded, list)
	}
}

func TestUpsertResetThenLoad(t *testing.T) {
	store := NewStore(newFakeRepo())
	ctx := context.Background()

	if _, err := store.Upsert(ctx, "user-1", "France", domain.StatusVisited); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Upsert(ctx, "user-1", "Japan", domain.StatusPlan); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Upsert(ctx, "user-1", "France", domain.StatusReset); err != nil {
		t.Fatal(err)
	}

	list, err := store.Load(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 entry after reset, got %+v", list)
	}
	if list[0].Country != "Japan" || list[0].Status != domain.StatusPlan {
		t.Errorf("got %+v, want Japan/plan", list[0])
	}
}

func TestReplaceNormalizes(t *testing.T) {
	store := NewStore(newFakeRepo())
	ctx := context.Background()

	stored, err := store.Replace(ctx, "user-1", domain.SelectionList{
		{Country: "France", Status: domain.StatusVisited},
		{Country: "France", Status: domain.StatusPlan},
		{Country: "Japan", Status: domain.StatusPlan},
	})
	if err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected duplicates dropped, got %+v", stored)
	}
	if stored[0].Country != "France" || stored[0].Status != domain.StatusVisited {
		t.Errorf("first occurrence should win, got %+v", stored[0])
	}
}

func TestFailedPersistSurfacesError(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo)
	ctx := context.Background()

	if _, err := store.Upsert(ctx, "user-1", "France", domain.StatusVisited); err != nil {
		t.Fatal(err)
	}

	repo.failWrites = true
	if _, err := store.Upsert(ctx, "user-1", "Japan", domain.StatusPlan); err == nil {
		t.Fatal("expected error when persistence fails")
	}

	// Stored state is untouched by the failed mutation.
	repo.failWrites = false
	list, err := store.Load(ctx, "user-1")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Country != "France" {
		t.Errorf("stored state changed after failed persist: %+v", list)
	}
}

func TestOnChangeNotification(t *testing.T) {
	store := NewStore(newFakeRepo())
	ctx := context.Background()

	var mu sync.Mutex
	var gotUser string
	var gotList domain.SelectionList
	store.SetOnChange(func(userID string, list domain.SelectionList) {
		mu.Lock()
		defer mu.Unlock()
		gotUser = userID
		gotList = list
	})

	if _, err := store.Upsert(ctx, "user-1", "Brazil", domain.StatusPlan); err != nil {
		t.Fatal(err)
	}

	mu.Lock()
	defer mu.Unlock()
	if gotUser != "user-1" {
		t.Errorf("notified user = %q, want user-1", gotUser)
	}
	if len(gotList) != 1 || gotList[0].Country != "Brazil" {
		t.Errorf("notified list = %+v", gotList)
	}
}

func TestUsersAreIsolated(t *testing.T) {
	store := NewStore(newFakeRepo())
	ctx := context.Background()

	if _, err := store.Upsert(ctx, "user-1", "France", domain.StatusVisited); err != nil {
		t.Fatal(err)
	}

	list, err := store.Load(ctx, "user-2")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Errorf("user-2 sees user-1's selections: %+v", list)
	}
}
