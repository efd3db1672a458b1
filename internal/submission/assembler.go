package submission

import (
	"strings"
	"time"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/intake"
)

// Assemble composes validated details and the current selections into
// the submission payload all three export paths consume. Selection
// lists are deep-copied; categories with zero items are kept as empty
// lists so downstream rendering decides visibility. No validation
// happens here — details arrive already validated.
func Assemble(
	details intake.Details,
	selections map[catalog.Category][]string,
	notes string,
	now time.Time,
) *Submission {

	snapshot := make(map[catalog.Category][]string, len(selections))
	for cat, items := range selections {
		copied := make([]string, len(items))
		copy(copied, items)
		snapshot[cat] = copied
	}

	return &Submission{
		Details:    details,
		Selections: snapshot,
		Notes:      strings.TrimSpace(notes),
		CreatedAt:  now,
	}
}
