package submission

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("submission not found")

// Repository is the data-access contract for persisted submissions.
// The dashboard and the export path depend only on this interface.
type Repository interface {
	Save(ctx context.Context, sub *Submission) (string, error)
	List(ctx context.Context) ([]*Submission, error)
	Search(ctx context.Context, term string) ([]*Submission, error)
	FilterByEventDate(ctx context.Context, start, end time.Time) ([]*Submission, error)
	SetReviewed(ctx context.Context, id string, reviewed bool) error
}
