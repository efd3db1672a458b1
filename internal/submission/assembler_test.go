package submission

import (
	"reflect"
	"testing"
	"time"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/intake"
)

func testDetails() intake.Details {
	return intake.Details{
		FullName:      "Jane Dlamini",
		Phone:         "0821234567",
		Email:         "jane@example.com",
		EventType:     "Wedding",
		EventDate:     time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC),
		EventLocation: "Durban North",
		GuestCount:    120,
	}
}

func testSelections() map[catalog.Category][]string {
	return map[catalog.Category][]string{
		catalog.Starters:   catalog.Default().Items(catalog.Starters),
		catalog.MeatCurry:  {"Beef Curry", "Roast Chicken"},
		catalog.Extras:     {},
		catalog.Starches:   {"Plain Rice"},
		catalog.Salads:     {},
		catalog.Vegetables: {"Creamy Spinach"},
	}
}

// TestAssembleIdempotent runs the assembler twice on the same input at
// different times; only the creation timestamp may differ.
func TestAssembleIdempotent(t *testing.T) {
	details := testDetails()
	selections := testSelections()

	first := Assemble(details, selections, "  gluten free please ", time.Unix(1000, 0))
	second := Assemble(details, selections, "  gluten free please ", time.Unix(2000, 0))

	if !first.CreatedAt.Equal(time.Unix(1000, 0)) {
		t.Fatalf("unexpected timestamp: %v", first.CreatedAt)
	}
	second.CreatedAt = first.CreatedAt
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("assemble is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestAssembleTrimsNotes(t *testing.T) {
	sub := Assemble(testDetails(), testSelections(), "  extra napkins  ", time.Now())
	if sub.Notes != "extra napkins" {
		t.Fatalf("notes not trimmed: %q", sub.Notes)
	}
}

func TestAssembleKeepsEmptyCategories(t *testing.T) {
	sub := Assemble(testDetails(), testSelections(), "", time.Now())

	for _, cat := range []catalog.Category{catalog.Extras, catalog.Salads} {
		items, ok := sub.Selections[cat]
		if !ok {
			t.Errorf("%s dropped from snapshot", cat)
		}
		if len(items) != 0 {
			t.Errorf("%s should be empty, got %v", cat, items)
		}
	}
}

func TestAssembleCopiesSelections(t *testing.T) {
	selections := testSelections()
	sub := Assemble(testDetails(), selections, "", time.Now())

	selections[catalog.MeatCurry][0] = "tampered"
	if sub.Selections[catalog.MeatCurry][0] != "Beef Curry" {
		t.Fatal("assembled snapshot shares memory with its input")
	}
}
