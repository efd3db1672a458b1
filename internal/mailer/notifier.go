package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/intake"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/submission"
)

// DefaultCatererRecipients receive a copy of every submission.
var DefaultCatererRecipients = []string{
	"themastercookery@gmail.com",
	"empirecontractoragency@gmail.com",
}

// Notifier sends the per-submission emails: one to the customer plus
// one to each configured caterer address.
type Notifier struct {
	mailer   Mailer
	caterers []string
}

func NewNotifier(mailer Mailer, caterers []string) *Notifier {
	if len(caterers) == 0 {
		caterers = DefaultCatererRecipients
	}
	return &Notifier{mailer: mailer, caterers: caterers}
}

// SendAll dispatches the customer email first, then each caterer email
// in order. The first failure stops the rest.
func (n *Notifier) SendAll(ctx context.Context, sub *submission.Submission, pdfBytes []byte, pdfName string) error {
	customer := &Message{
		To:             sub.Details.Email,
		Subject:        "Your Master Cookery Menu Selection",
		Body:           customerBody(sub),
		AttachmentName: pdfName,
		Attachment:     pdfBytes,
	}
	if err := n.mailer.Send(ctx, customer); err != nil {
		return err
	}

	for _, to := range n.caterers {
		caterer := &Message{
			To:             to,
			Subject:        fmt.Sprintf("New Menu Submission - %s", sub.Details.FullName),
			Body:           catererBody(sub),
			AttachmentName: pdfName,
			Attachment:     pdfBytes,
		}
		if err := n.mailer.Send(ctx, caterer); err != nil {
			return err
		}
	}
	return nil
}

func customerBody(sub *submission.Submission) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", sub.Details.FullName)
	b.WriteString("Thank you for choosing The Master Cookery. Your menu selection is attached.\n\n")
	fmt.Fprintf(&b, "Event: %s\n", sub.Details.EventType)
	fmt.Fprintf(&b, "Date: %s\n", intake.FormatDate(sub.Details.EventDate))
	fmt.Fprintf(&b, "Location: %s\n", sub.Details.EventLocation)
	fmt.Fprintf(&b, "Guests: %d\n\n", sub.Details.GuestCount)
	b.WriteString(MenuSummary(sub.Selections))
	fmt.Fprintf(&b, "Notes: %s\n\n", notesOrNone(sub.Notes))
	b.WriteString("We look forward to making your event memorable!\n\nThe Master Cookery\n")
	return b.String()
}

func catererBody(sub *submission.Submission) string {
	var b strings.Builder
	b.WriteString("A new menu selection has been submitted.\n\n")
	fmt.Fprintf(&b, "Customer: %s\n", sub.Details.FullName)
	fmt.Fprintf(&b, "Phone: %s\n", sub.Details.Phone)
	fmt.Fprintf(&b, "Email: %s\n", sub.Details.Email)
	fmt.Fprintf(&b, "Event: %s\n", sub.Details.EventType)
	fmt.Fprintf(&b, "Date: %s\n", intake.FormatDate(sub.Details.EventDate))
	fmt.Fprintf(&b, "Location: %s\n", sub.Details.EventLocation)
	fmt.Fprintf(&b, "Guests: %d\n\n", sub.Details.GuestCount)
	b.WriteString(MenuSummary(sub.Selections))
	fmt.Fprintf(&b, "Notes: %s\n", notesOrNone(sub.Notes))
	return b.String()
}

// summaryOrder matches the order the review page lists categories in.
var summaryOrder = []catalog.Category{
	catalog.Starters,
	catalog.MeatCurry,
	catalog.Extras,
	catalog.Starches,
	catalog.Salads,
	catalog.Vegetables,
}

// MenuSummary renders the plain-text selection summary, one line per
// non-empty category.
func MenuSummary(selections map[catalog.Category][]string) string {
	var b strings.Builder
	for _, cat := range summaryOrder {
		items := selections[cat]
		if len(items) == 0 {
			continue
		}
		fmt.Fprintf(&b, "%s: %s\n\n", catalog.SectionTitle(cat), strings.Join(items, ", "))
	}
	return b.String()
}

func notesOrNone(notes string) string {
	if notes == "" {
		return "None"
	}
	return notes
}
