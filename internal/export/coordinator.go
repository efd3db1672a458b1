package export

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/intake"
	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/submission"
)

// Stage names the export step that failed.
type Stage string

const (
	StageRender  Stage = "render"
	StageArchive Stage = "archive"
	StagePersist Stage = "persist"
	StageEmail   Stage = "email"
)

// Error is the single aggregated failure reported for one export run.
// Side effects completed before the failing stage are left in place.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export failed at %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Renderer produces the quote PDF bytes for a submission.
type Renderer interface {
	Render(sub *submission.Submission) ([]byte, error)
}

// Archive stores the rendered PDF and returns its public URL.
type Archive interface {
	Put(ctx context.Context, key string, body []byte) (string, error)
}

// Notifier sends the customer and caterer emails.
type Notifier interface {
	SendAll(ctx context.Context, sub *submission.Submission, pdfBytes []byte, pdfName string) error
}

// Namer builds the attachment/download file name for a quote.
type Namer func(sub *submission.Submission) string

// Coordinator runs the export sequence for one submission:
// render PDF -> archive PDF -> persist -> email. The first failure
// aborts the remaining stages; nothing is rolled back.
type Coordinator struct {
	renderer Renderer
	archive  Archive // nil disables archiving
	repo     submission.Repository
	notifier Notifier
	fileName Namer
	now      func() time.Time
}

func NewCoordinator(
	renderer Renderer,
	archive Archive,
	repo submission.Repository,
	notifier Notifier,
	fileName Namer,
) *Coordinator {
	return &Coordinator{
		renderer: renderer,
		archive:  archive,
		repo:     repo,
		notifier: notifier,
		fileName: fileName,
		now:      time.Now,
	}
}

// Export assembles the submission snapshot and drives it through the
// three collaborator calls. On success the persisted submission and the
// rendered PDF bytes are returned.
func (c *Coordinator) Export(
	ctx context.Context,
	details intake.Details,
	selections map[catalog.Category][]string,
	notes string,
) (*submission.Submission, []byte, error) {

	sub := submission.Assemble(details, selections, notes, c.now())
	sub.ID = uuid.New().String()

	pdfBytes, err := c.renderer.Render(sub)
	if err != nil {
		return nil, nil, &Error{Stage: StageRender, Err: err}
	}

	if c.archive != nil {
		url, err := c.archive.Put(ctx, "quotes/"+sub.ID+".pdf", pdfBytes)
		if err != nil {
			return nil, nil, &Error{Stage: StageArchive, Err: err}
		}
		sub.PDFURL = url
	}

	if _, err := c.repo.Save(ctx, sub); err != nil {
		return nil, nil, &Error{Stage: StagePersist, Err: err}
	}

	if err := c.notifier.SendAll(ctx, sub, pdfBytes, c.fileName(sub)); err != nil {
		// The record is already saved; the caller reports the
		// failure and keeps the persisted side effect.
		return nil, nil, &Error{Stage: StageEmail, Err: err}
	}

	return sub, pdfBytes, nil
}
