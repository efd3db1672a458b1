package wizard

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/intake"
)

func testDetails() *intake.Details {
	return &intake.Details{
		FullName:      "Jane Dlamini",
		Phone:         "0821234567",
		Email:         "jane@example.com",
		EventType:     "Wedding",
		EventDate:     time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		EventLocation: "Durban North",
		GuestCount:    120,
	}
}

func startedSession() *Session {
	s := NewSession(catalog.Default())
	s.BeginWizard(testDetails())
	return s
}

func TestNewSessionStartsAtDetails(t *testing.T) {
	s := NewSession(catalog.Default())

	if s.Stage != StageDetails {
		t.Fatalf("expected details stage, got %s", s.Stage)
	}
	if s.ID == "" {
		t.Fatal("session should get an id")
	}
}

func TestNextWalksEveryStepThenReview(t *testing.T) {
	s := startedSession()
	n := len(s.Steps())

	for i := 1; i < n; i++ {
		if s.Step != i {
			t.Fatalf("expected step %d, got %d", i, s.Step)
		}
		s.Next()
	}
	if s.Step != n {
		t.Fatalf("expected last step %d, got %d", n, s.Step)
	}

	s.Next()
	if s.Stage != StageReview {
		t.Fatalf("next on last step should enter review, got %s", s.Stage)
	}
}

// TestNextBackRoundTrip checks next followed by back lands on the same
// step with selections untouched.
func TestNextBackRoundTrip(t *testing.T) {
	s := startedSession()
	s.Next()
	s.Next() // step 3

	s.Selections.Toggle(catalog.Vegetables, "Creamy Spinach")
	before := s.Selections.Snapshot()

	s.Next()
	s.Back()

	if s.Step != 3 {
		t.Fatalf("expected step 3 after next+back, got %d", s.Step)
	}
	if !reflect.DeepEqual(s.Selections.Snapshot(), before) {
		t.Fatal("selections changed during navigation")
	}
}

// TestBackFromFirstStepKeepsDetails verifies re-entering the intake
// form does not clear captured details; only Restart does.
func TestBackFromFirstStepKeepsDetails(t *testing.T) {
	s := startedSession()

	s.Back()
	if s.Stage != StageDetails {
		t.Fatalf("expected details stage, got %s", s.Stage)
	}
	if s.Details == nil {
		t.Fatal("details must persist until restart")
	}
}

func TestBackFromReviewReturnsToLastStep(t *testing.T) {
	s := startedSession()
	for range s.Steps() {
		s.Next()
	}

	s.Back()
	if s.Stage != StageWizard {
		t.Fatalf("expected wizard stage, got %s", s.Stage)
	}
	if s.Step != len(s.Steps()) {
		t.Fatalf("expected last step, got %d", s.Step)
	}
}

func TestProgressBounds(t *testing.T) {
	s := startedSession()

	if p := s.Progress(); p != 0 {
		t.Fatalf("expected progress 0 at step 1, got %v", p)
	}

	for s.Step < len(s.Steps()) {
		s.Next()
	}
	if p := s.Progress(); math.Abs(p-1) > 1e-9 {
		t.Fatalf("expected progress 1 at last step, got %v", p)
	}
}

func TestRestartResetsEverything(t *testing.T) {
	s := startedSession()
	s.Selections.Toggle(catalog.MeatCurry, "Beef Curry")
	s.Next()
	s.Notes = "extra napkins"
	s.PDF = []byte("%PDF-fake")

	s.Restart()

	if s.Stage != StageDetails || s.Step != 1 {
		t.Fatalf("expected boot state, got stage=%s step=%d", s.Stage, s.Step)
	}
	if s.Details != nil {
		t.Error("details should be cleared")
	}
	if s.Notes != "" || s.PDF != nil {
		t.Error("notes and generated quote should be cleared")
	}
	if s.Selections.Count(catalog.MeatCurry) != 0 {
		t.Error("non-included selections should be cleared")
	}
	want := catalog.Default().Items(catalog.Starters)
	if !reflect.DeepEqual(s.Selections.Selected(catalog.Starters), want) {
		t.Error("included category should be restored to the full list")
	}
}

func TestBeginExportGuard(t *testing.T) {
	s := startedSession()

	if !s.BeginExport() {
		t.Fatal("first export should be allowed")
	}
	if s.BeginExport() {
		t.Fatal("second export must be refused while one is in flight")
	}

	s.EndExport()
	if !s.BeginExport() {
		t.Fatal("export should be allowed again after the first finishes")
	}
}

func TestStoreCreateGetDelete(t *testing.T) {
	store := NewStore()
	s := store.Create(catalog.Default())

	got, err := store.Get(s.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != s {
		t.Fatal("expected the same session back")
	}

	store.Delete(s.ID)
	if _, err := store.Get(s.ID); err != ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
