package intake

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Form holds the raw field values exactly as submitted.
type Form struct {
	FullName      string `json:"fullName"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	EventType     string `json:"eventType"`
	EventDate     string `json:"eventDate"` // YYYY-MM-DD
	EventLocation string `json:"eventLocation"`
	GuestCount    string `json:"guestCount"`
}

// FieldError points one validation message at one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks every field independently and returns ALL violations
// together, in form field order, so the caller can highlight every
// invalid field at once. On success the parsed Details are returned.
// The current time is injected; only the calendar day matters.
func Validate(f Form, now time.Time) (*Details, []FieldError) {
	var errs []FieldError

	fullName := strings.TrimSpace(f.FullName)
	if len(fullName) < 2 {
		errs = append(errs, FieldError{"fullName", "Please enter your full name"})
	}

	phone := strings.TrimSpace(f.Phone)
	if len(phone) < 10 {
		errs = append(errs, FieldError{"phone", "Please enter a valid phone number"})
	}

	email := strings.TrimSpace(f.Email)
	if !emailPattern.MatchString(email) {
		errs = append(errs, FieldError{"email", "Please enter a valid email"})
	}

	if !isEventType(f.EventType) {
		errs = append(errs, FieldError{"eventType", "Please select an event type"})
	}

	eventDate, dateErr := time.ParseInLocation("2006-01-02", f.EventDate, time.UTC)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dateErr != nil || eventDate.Before(today) {
		errs = append(errs, FieldError{"eventDate", "Please select a future date"})
	}

	eventLocation := strings.TrimSpace(f.EventLocation)
	if eventLocation == "" {
		errs = append(errs, FieldError{"eventLocation", "Please enter the event location"})
	}

	guestCount, countErr := strconv.Atoi(strings.TrimSpace(f.GuestCount))
	if countErr != nil || guestCount < 1 {
		errs = append(errs, FieldError{"guestCount", "Please enter the number of guests"})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &Details{
		FullName:      fullName,
		Phone:         phone,
		Email:         email,
		EventType:     f.EventType,
		EventDate:     eventDate,
		EventLocation: eventLocation,
		GuestCount:    guestCount,
	}, nil
}
