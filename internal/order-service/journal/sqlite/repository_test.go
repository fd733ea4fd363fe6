package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ravelar/storefront/internal/order-service/journal"
)

func openTestRepo(t *testing.T) *Repository {
	t.Helper()

	repo, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestSaveAndRecent(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	entries := []*journal.Entry{
		journal.NewEntry(ctx, 0, 99, 1, 1, journal.OutcomeAccountNotFound, ""),
		journal.NewEntry(ctx, 1, 1, 1, 2, journal.OutcomeCreated, ""),
	}
	for _, entry := range entries {
		if err := repo.Save(ctx, entry); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	recent, err := repo.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(recent))
	}

	// Newest first.
	if recent[0].Outcome != journal.OutcomeCreated {
		t.Errorf("recent[0].Outcome = %q, want %q", recent[0].Outcome, journal.OutcomeCreated)
	}
	if recent[0].OrderID != 1 || recent[0].Quantity != 2 {
		t.Errorf("recent[0] = %+v", recent[0])
	}
	if recent[1].Outcome != journal.OutcomeAccountNotFound {
		t.Errorf("recent[1].Outcome = %q, want %q", recent[1].Outcome, journal.OutcomeAccountNotFound)
	}
	if recent[1].OrderID != 0 {
		t.Errorf("rejected attempt stored order id %d, want 0", recent[1].OrderID)
	}
}

func TestRecentRespectsLimit(t *testing.T) {
	repo := openTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		entry := journal.NewEntry(ctx, int64(i+1), 1, 1, 1, journal.OutcomeCreated, "")
		if err := repo.Save(ctx, entry); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	recent, err := repo.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Recent returned %d entries, want 3", len(recent))
	}
	if recent[0].OrderID != 5 {
		t.Errorf("newest entry order id = %d, want 5", recent[0].OrderID)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	repo, err := Open(path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if err := repo.Save(context.Background(), journal.NewEntry(context.Background(), 1, 1, 1, 1, journal.OutcomeCreated, "")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	repo.Close()

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	recent, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent after reopen: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("entries survived reopen = %d, want 1", len(recent))
	}
}
