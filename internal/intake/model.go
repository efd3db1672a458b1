package intake

import "time"

// Details is the validated customer/event information captured once
// before the wizard unlocks. Immutable for the rest of the session.
type Details struct {
	FullName      string    `json:"fullName"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	EventType     string    `json:"eventType"`
	EventDate     time.Time `json:"eventDate"`
	EventLocation string    `json:"eventLocation"`
	GuestCount    int       `json:"guestCount"`
}

// EventTypes is the fixed set offered on the intake form.
var EventTypes = []string{
	"Wedding",
	"Birthday Party",
	"Corporate Event",
	"Funeral",
	"Graduation",
	"Baby Shower",
	"Anniversary",
	"Other",
}

func isEventType(s string) bool {
	for _, t := range EventTypes {
		if t == s {
			return true
		}
	}
	return false
}

// FormatDate renders a date the way the quote and emails show it,
// e.g. "14 February 2026".
func FormatDate(d time.Time) string {
	return d.Format("2 January 2006")
}
