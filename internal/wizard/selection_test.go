package wizard

import (
	"errors"
	"reflect"
	"testing"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
)

func newTestSelections() *Selections {
	return NewSelections(catalog.Default(), catalog.Steps())
}

func TestIncludedCategoryStartsFull(t *testing.T) {
	s := newTestSelections()

	want := catalog.Default().Items(catalog.Starters)
	if got := s.Selected(catalog.Starters); !reflect.DeepEqual(got, want) {
		t.Fatalf("starters should start with the full catalog list, got %v", got)
	}
}

func TestToggleAddsAndRemoves(t *testing.T) {
	s := newTestSelections()

	if err := s.Toggle(catalog.MeatCurry, "Beef Curry"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsSelected(catalog.MeatCurry, "Beef Curry") {
		t.Fatal("item should be selected after toggle")
	}

	if err := s.Toggle(catalog.MeatCurry, "Beef Curry"); err != nil {
		t.Fatalf("removal should always succeed: %v", err)
	}
	if s.Count(catalog.MeatCurry) != 0 {
		t.Fatalf("expected empty category after removal, got %d", s.Count(catalog.MeatCurry))
	}
}

// TestToggleLimitEnforced checks the fourth selection in a
// limit-3 category is refused and selection order is preserved.
func TestToggleLimitEnforced(t *testing.T) {
	s := newTestSelections()

	items := []string{"Beef Curry", "Chicken Curry", "Chicken Briyani"}
	for _, item := range items {
		if err := s.Toggle(catalog.MeatCurry, item); err != nil {
			t.Fatalf("toggle %q: %v", item, err)
		}
	}

	err := s.Toggle(catalog.MeatCurry, "Mutton Curry")
	var limitErr *LimitError
	if !errors.As(err, &limitErr) {
		t.Fatalf("expected LimitError, got %v", err)
	}
	if limitErr.Max != 3 {
		t.Errorf("expected limit 3, got %d", limitErr.Max)
	}

	if got := s.Selected(catalog.MeatCurry); !reflect.DeepEqual(got, items) {
		t.Errorf("selection changed after rejected toggle: %v", got)
	}
}

// TestToggleRemovalIgnoresLimit verifies removing an item at the cap
// always decreases the count by exactly one.
func TestToggleRemovalIgnoresLimit(t *testing.T) {
	s := newTestSelections()

	for _, item := range []string{"Coleslaw", "Chakalaka", "Beetroot Salad", "3 Bean Salad"} {
		if err := s.Toggle(catalog.Salads, item); err != nil {
			t.Fatalf("toggle %q: %v", item, err)
		}
	}

	if err := s.Toggle(catalog.Salads, "Chakalaka"); err != nil {
		t.Fatalf("removal at the limit should succeed: %v", err)
	}
	if s.Count(catalog.Salads) != 3 {
		t.Fatalf("expected count 3 after removal, got %d", s.Count(catalog.Salads))
	}
}

func TestImmutableCategoryRejectsToggle(t *testing.T) {
	s := newTestSelections()
	before := s.Selected(catalog.Starters)

	err := s.Toggle(catalog.Starters, "Samosa")
	if !errors.Is(err, ErrImmutableCategory) {
		t.Fatalf("expected ErrImmutableCategory, got %v", err)
	}

	if got := s.Selected(catalog.Starters); !reflect.DeepEqual(got, before) {
		t.Errorf("starters changed after rejected toggle: %v", got)
	}
}

func TestToggleUnknownItem(t *testing.T) {
	s := newTestSelections()

	if err := s.Toggle(catalog.MeatCurry, "Pizza"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if err := s.Toggle(catalog.Category("desserts"), "Cake"); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}

func TestSelectionOrderPreserved(t *testing.T) {
	s := newTestSelections()

	order := []string{"Plain Rice", "Jeqe", "Creamy Samp"}
	for _, item := range order {
		if err := s.Toggle(catalog.Starches, item); err != nil {
			t.Fatalf("toggle %q: %v", item, err)
		}
	}

	if got := s.Selected(catalog.Starches); !reflect.DeepEqual(got, order) {
		t.Fatalf("expected insertion order %v, got %v", order, got)
	}
}

func TestResetRestoresInitialShape(t *testing.T) {
	s := newTestSelections()

	s.Toggle(catalog.MeatCurry, "Beef Curry")
	s.Toggle(catalog.Vegetables, "Creamy Spinach")
	s.Reset()

	for _, step := range catalog.Steps() {
		if step.Included {
			want := catalog.Default().Items(step.Category)
			if got := s.Selected(step.Category); !reflect.DeepEqual(got, want) {
				t.Errorf("%s: expected full list after reset, got %v", step.Category, got)
			}
			continue
		}
		if s.Count(step.Category) != 0 {
			t.Errorf("%s: expected empty after reset, got %d", step.Category, s.Count(step.Category))
		}
	}
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := newTestSelections()
	s.Toggle(catalog.MeatCurry, "Beef Curry")

	snap := s.Snapshot()
	snap[catalog.MeatCurry][0] = "tampered"

	if got := s.Selected(catalog.MeatCurry)[0]; got != "Beef Curry" {
		t.Fatalf("snapshot mutation leaked into state: %q", got)
	}
	if len(snap[catalog.Extras]) != 0 {
		t.Errorf("empty categories must be present in snapshot")
	}
	if _, ok := snap[catalog.Extras]; !ok {
		t.Error("snapshot dropped an empty category")
	}
}
