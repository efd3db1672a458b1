package intake

import (
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

func validForm() Form {
	return Form{
		FullName:      "Jane Dlamini",
		Phone:         "0821234567",
		Email:         "jane@example.com",
		EventType:     "Wedding",
		EventDate:     "2026-06-20",
		EventLocation: "Durban North",
		GuestCount:    "120",
	}
}

func TestValidateSuccess(t *testing.T) {
	details, errs := Validate(validForm(), testNow)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if details.FullName != "Jane Dlamini" {
		t.Errorf("unexpected name: %q", details.FullName)
	}
	if details.GuestCount != 120 {
		t.Errorf("expected guest count 120, got %d", details.GuestCount)
	}
	if !details.EventDate.Equal(time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected event date: %v", details.EventDate)
	}
}

// TestValidateCollectsAllErrors verifies every invalid field is reported
// together, one error per field, in form field order.
func TestValidateCollectsAllErrors(t *testing.T) {
	form := Form{
		FullName:      "",
		Phone:         "123",
		Email:         "bad",
		EventType:     "",
		EventDate:     "2000-01-01",
		EventLocation: "",
		GuestCount:    "0",
	}

	details, errs := Validate(form, testNow)
	if details != nil {
		t.Fatal("expected nil details")
	}
	if len(errs) != 7 {
		t.Fatalf("expected 7 field errors, got %d: %v", len(errs), errs)
	}

	wantOrder := []string{
		"fullName", "phone", "email", "eventType",
		"eventDate", "eventLocation", "guestCount",
	}
	for i, want := range wantOrder {
		if errs[i].Field != want {
			t.Errorf("error %d: expected field %q, got %q", i, want, errs[i].Field)
		}
	}
}

func TestValidateTrimsFields(t *testing.T) {
	form := validForm()
	form.FullName = "  Jane Dlamini  "
	form.EventLocation = "  Durban North "

	details, errs := Validate(form, testNow)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if details.FullName != "Jane Dlamini" {
		t.Errorf("name not trimmed: %q", details.FullName)
	}
	if details.EventLocation != "Durban North" {
		t.Errorf("location not trimmed: %q", details.EventLocation)
	}
}

// TestValidateEventDateToday checks the comparison is date-only: an event
// on the current calendar day passes even late in the day.
func TestValidateEventDateToday(t *testing.T) {
	form := validForm()
	form.EventDate = "2026-03-10"

	if _, errs := Validate(form, testNow); len(errs) != 0 {
		t.Fatalf("today's date should be accepted, got %v", errs)
	}

	form.EventDate = "2026-03-09"
	_, errs := Validate(form, testNow)
	if len(errs) != 1 || errs[0].Field != "eventDate" {
		t.Fatalf("expected one eventDate error, got %v", errs)
	}
}

func TestValidateUnknownEventType(t *testing.T) {
	form := validForm()
	form.EventType = "Quiz Night"

	_, errs := Validate(form, testNow)
	if len(errs) != 1 || errs[0].Field != "eventType" {
		t.Fatalf("expected one eventType error, got %v", errs)
	}
}

func TestValidateGuestCount(t *testing.T) {
	cases := []string{"", "abc", "0", "-5"}
	for _, raw := range cases {
		form := validForm()
		form.GuestCount = raw

		_, errs := Validate(form, testNow)
		if len(errs) != 1 || errs[0].Field != "guestCount" {
			t.Errorf("guestCount=%q: expected one guestCount error, got %v", raw, errs)
		}
	}
}
