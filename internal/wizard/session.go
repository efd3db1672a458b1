package wizard

import (
	"sync"

	"github.com/google/uuid"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/intake"
)

// Stage is where the customer is in the surrounding flow: the intake
// form, the category steps, or the review page.
type Stage string

const (
	StageDetails Stage = "details"
	StageWizard  Stage = "wizard"
	StageReview  Stage = "review"
)

// Session owns one in-progress menu selection. All state for a customer
// lives here and nowhere else; handlers receive the session explicitly.
type Session struct {
	mu sync.Mutex

	ID         string
	Stage      Stage
	Step       int // 1-based, meaningful while Stage == StageWizard
	Details    *intake.Details
	Selections *Selections
	Notes      string
	PDF        []byte // last generated quote, kept for download

	steps     []catalog.Step
	exporting bool
}

func NewSession(c catalog.Catalog) *Session {
	steps := catalog.Steps()
	return &Session{
		ID:         uuid.New().String(),
		Stage:      StageDetails,
		Step:       1,
		Selections: NewSelections(c, steps),
		steps:      steps,
	}
}

// Lock takes the session's own mutex. The wizard is single-threaded per
// customer; the lock only guards against overlapping HTTP requests for
// the same session id.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Steps returns the fixed step sequence.
func (s *Session) Steps() []catalog.Step {
	return s.steps
}

// CurrentStep returns the rule for the step the customer is on.
func (s *Session) CurrentStep() catalog.Step {
	return s.steps[s.Step-1]
}

// BeginWizard records the validated intake details and enters the
// wizard at step 1.
func (s *Session) BeginWizard(details *intake.Details) {
	s.Details = details
	s.Stage = StageWizard
	s.Step = 1
}

// Next advances one step; on the last step it moves to review.
func (s *Session) Next() {
	if s.Stage != StageWizard {
		return
	}
	if s.Step == len(s.steps) {
		s.Stage = StageReview
		return
	}
	s.Step++
}

// Back goes one step back; on the first step it returns to the intake
// form. Captured details persist until Restart.
func (s *Session) Back() {
	switch s.Stage {
	case StageReview:
		s.Stage = StageWizard
	case StageWizard:
		if s.Step == 1 {
			s.Stage = StageDetails
			return
		}
		s.Step--
	}
}

// Progress is 0 at step 1 and 1 at the last step.
func (s *Session) Progress() float64 {
	return float64(s.Step-1) / float64(len(s.steps)-1)
}

// Restart brings the session back to its boot state: intake form, step
// 1, details and notes cleared, selections reset, quote dropped.
func (s *Session) Restart() {
	s.Stage = StageDetails
	s.Step = 1
	s.Details = nil
	s.Notes = ""
	s.PDF = nil
	s.exporting = false
	s.Selections.Reset()
}

// BeginExport marks an export in flight. It returns false when one is
// already running so a second submit of the same session is refused
// (there is no server-side idempotency key).
func (s *Session) BeginExport() bool {
	if s.exporting {
		return false
	}
	s.exporting = true
	return true
}

func (s *Session) EndExport() {
	s.exporting = false
}
