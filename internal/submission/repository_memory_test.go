package submission

import (
	"context"
	"testing"
	"time"
)

func savedSubmission(t *testing.T, repo *InMemoryRepository, name, email string, eventDate time.Time) *Submission {
	t.Helper()

	details := testDetails()
	details.FullName = name
	details.Email = email
	details.EventDate = eventDate

	sub := Assemble(details, testSelections(), "", time.Now())
	if _, err := repo.Save(context.Background(), sub); err != nil {
		t.Fatalf("save: %v", err)
	}
	return sub
}

func TestListNewestFirst(t *testing.T) {
	repo := NewInMemoryRepository()
	first := savedSubmission(t, repo, "First Customer", "first@example.com", time.Now())
	second := savedSubmission(t, repo, "Second Customer", "second@example.com", time.Now())

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 submissions, got %d", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatal("expected newest-first ordering")
	}
}

func TestSearchMatchesNameAndEmail(t *testing.T) {
	repo := NewInMemoryRepository()
	savedSubmission(t, repo, "Jane Dlamini", "jane@example.com", time.Now())
	savedSubmission(t, repo, "Sipho Ndlovu", "sipho@mail.com", time.Now())

	byName, err := repo.Search(context.Background(), "DLAMINI")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byName) != 1 || byName[0].Details.FullName != "Jane Dlamini" {
		t.Fatalf("case-insensitive name search failed: %v", byName)
	}

	byEmail, err := repo.Search(context.Background(), "mail.com")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(byEmail) != 1 || byEmail[0].Details.FullName != "Sipho Ndlovu" {
		t.Fatalf("email substring search failed: %v", byEmail)
	}
}

func TestFilterByEventDateInclusive(t *testing.T) {
	repo := NewInMemoryRepository()
	inRange := savedSubmission(t, repo, "In Range", "in@example.com",
		time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC))
	savedSubmission(t, repo, "Out Of Range", "out@example.com",
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	// Boundaries are inclusive on both ends.
	got, err := repo.FilterByEventDate(context.Background(),
		time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 1 || got[0].ID != inRange.ID {
		t.Fatalf("expected only the in-range submission, got %v", got)
	}
}

func TestSetReviewedStampsTimestamp(t *testing.T) {
	repo := NewInMemoryRepository()
	reviewedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return reviewedAt }

	sub := savedSubmission(t, repo, "Jane Dlamini", "jane@example.com", time.Now())

	if err := repo.SetReviewed(context.Background(), sub.ID, true); err != nil {
		t.Fatalf("set reviewed: %v", err)
	}
	if !sub.Reviewed || sub.ReviewedAt == nil || !sub.ReviewedAt.Equal(reviewedAt) {
		t.Fatalf("reviewed fields not set: %+v", sub)
	}

	if err := repo.SetReviewed(context.Background(), sub.ID, false); err != nil {
		t.Fatalf("clear reviewed: %v", err)
	}
	if sub.Reviewed || sub.ReviewedAt != nil {
		t.Fatal("reviewed fields not cleared")
	}
}

func TestSetReviewedUnknownID(t *testing.T) {
	repo := NewInMemoryRepository()
	if err := repo.SetReviewed(context.Background(), "missing", true); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
