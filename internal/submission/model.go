package submission

import (
	"time"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/intake"
)

// Submission is the immutable snapshot of one completed menu selection.
// Once saved it is owned by the store; only the dashboard mutates the
// reviewed fields.
type Submission struct {
	ID         string                        `json:"id"`
	Details    intake.Details                `json:"customerDetails"`
	Selections map[catalog.Category][]string `json:"menuSelections"`
	Notes      string                        `json:"notes,omitempty"`
	PDFURL     string                        `json:"pdfUrl,omitempty"`
	CreatedAt  time.Time                     `json:"createdAt"`
	Reviewed   bool                          `json:"reviewed"`
	ReviewedAt *time.Time                    `json:"reviewedAt,omitempty"`
}
