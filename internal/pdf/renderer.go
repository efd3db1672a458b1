package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/intake"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/submission"
)

// ErrRender wraps any failure while producing the quote PDF.
var ErrRender = errors.New("pdf render failed")

const (
	pageWidth  = 210.0 // A4 portrait, mm
	pageHeight = 297.0
	margin     = 14.0
	rightCol   = 110.0
	footerTop  = 264.0
)

// Renderer draws the A4 menu-selection quote: orange header band,
// customer and event blocks, two-column menu sections, wrapped notes
// and a thank-you footer.
type Renderer struct {
	businessName string
	tagline      string
}

func NewRenderer() *Renderer {
	return &Renderer{
		businessName: "The Master Cookery",
		tagline:      "Mastering Taste, Every Time.",
	}
}

func (r *Renderer) Render(sub *submission.Submission) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	r.drawHeader(doc)
	leftY := r.drawCustomerBlock(doc, sub)
	r.drawEventBlock(doc, sub)

	// Menu selection, two columns. Left restarts under the customer
	// block, right at a fixed offset like the original quote.
	doc.SetTextColor(51, 51, 51)
	doc.SetFont("Helvetica", "B", 14)
	leftY += 12
	doc.Text(margin, leftY, "MENU SELECTION")
	leftY += 10

	rightY := 92.0
	leftY = r.drawSection(doc, sub, catalog.Starters, margin, leftY)
	leftY = r.drawSection(doc, sub, catalog.MeatCurry, margin, leftY)
	leftY = r.drawSection(doc, sub, catalog.Vegetables, margin, leftY)
	rightY = r.drawSection(doc, sub, catalog.Starches, rightCol, rightY)
	rightY = r.drawSection(doc, sub, catalog.Salads, rightCol, rightY)
	rightY = r.drawSection(doc, sub, catalog.Extras, rightCol, rightY)

	if sub.Notes != "" {
		notesY := leftY
		if rightY > notesY {
			notesY = rightY
		}
		r.drawNotes(doc, sub.Notes, notesY+6)
	}

	r.drawFooter(doc)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawHeader(doc *fpdf.Fpdf) {
	doc.SetFillColor(242, 127, 0)
	doc.Rect(0, 0, pageWidth, 33, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "B", 22)
	doc.Text(margin, 16, r.businessName)
	doc.SetFont("Helvetica", "", 10)
	doc.Text(margin, 24, r.tagline)

	doc.SetFont("Helvetica", "B", 20)
	doc.Text(pageWidth-margin-doc.GetStringWidth("MENU SELECTION"), 20, "MENU SELECTION")
}

func (r *Renderer) drawCustomerBlock(doc *fpdf.Fpdf, sub *submission.Submission) float64 {
	y := 44.0
	doc.SetTextColor(242, 127, 0)
	doc.SetFont("Helvetica", "B", 13)
	doc.Text(margin, y, "BILL TO:")

	doc.SetTextColor(51, 51, 51)
	doc.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		sub.Details.FullName,
		sub.Details.Phone,
		sub.Details.Email,
	} {
		y += 7
		doc.Text(margin, y, line)
	}
	return y
}

func (r *Renderer) drawEventBlock(doc *fpdf.Fpdf, sub *submission.Submission) {
	y := 44.0
	doc.SetTextColor(242, 127, 0)
	doc.SetFont("Helvetica", "B", 13)
	doc.Text(rightCol, y, "EVENT DETAILS")

	doc.SetTextColor(51, 51, 51)
	doc.SetFont("Helvetica", "", 10)
	for _, line := range []string{
		"Event Name: " + sub.Details.FullName,
		"Event Date: " + intake.FormatDate(sub.Details.EventDate),
		"Location: " + sub.Details.EventLocation,
		"Type: " + sub.Details.EventType,
		fmt.Sprintf("Guests: %d", sub.Details.GuestCount),
	} {
		y += 6
		doc.Text(rightCol, y, line)
	}
}

// drawSection renders one category heading plus its bullet list and
// returns the next free y position. Empty categories draw nothing.
func (r *Renderer) drawSection(doc *fpdf.Fpdf, sub *submission.Submission, cat catalog.Category, x, y float64) float64 {
	items := sub.Selections[cat]
	if len(items) == 0 {
		return y
	}

	doc.SetTextColor(242, 127, 0)
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(x, y, catalog.SectionTitle(cat))
	y += 6

	doc.SetTextColor(51, 51, 51)
	doc.SetFont("Helvetica", "", 9)
	for _, item := range items {
		if y > footerTop-10 {
			// Out of room above the footer; the bounded category
			// sizes make this a safety stop, not a real path.
			break
		}
		doc.Text(x+2, y, "- "+item)
		y += 5
	}
	return y + 4
}

func (r *Renderer) drawNotes(doc *fpdf.Fpdf, notes string, y float64) {
	if y > footerTop-20 {
		return
	}
	doc.SetTextColor(242, 127, 0)
	doc.SetFont("Helvetica", "B", 11)
	doc.Text(margin, y, "Additional Notes:")

	doc.SetTextColor(51, 51, 51)
	doc.SetFont("Helvetica", "", 9)
	doc.SetXY(margin+2, y+2)
	doc.MultiCell(pageWidth-2*margin-2, 5, notes, "", "L", false)
}

func (r *Renderer) drawFooter(doc *fpdf.Fpdf) {
	doc.SetFillColor(242, 127, 0)
	doc.Rect(0, footerTop, pageWidth, pageHeight-footerTop, "F")

	doc.SetTextColor(255, 255, 255)
	doc.SetFont("Helvetica", "", 14)
	doc.SetXY(0, footerTop+6)
	doc.CellFormat(pageWidth, 8, "Thank You for Choosing", "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(pageWidth, 10, strings.ToUpper(r.businessName), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.CellFormat(pageWidth, 7, "We look forward to making your event memorable!", "", 1, "C", false, 0, "")
}

// FileName builds the download name for a quote,
// e.g. MasterCookery_Menu_Jane_Dlamini.pdf.
func FileName(sub *submission.Submission) string {
	name := strings.Join(strings.Fields(sub.Details.FullName), "_")
	return fmt.Sprintf("MasterCookery_Menu_%s.pdf", name)
}
