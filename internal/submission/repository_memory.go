package submission

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository keeps submissions in a newest-first slice. Used by
// tests and local runs without a database.
type InMemoryRepository struct {
	mu          sync.Mutex
	submissions []*Submission
	now         func() time.Time
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		now: time.Now,
	}
}

func (r *InMemoryRepository) Save(_ context.Context, sub *Submission) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	r.submissions = append([]*Submission{sub}, r.submissions...)
	return sub.ID, nil
}

func (r *InMemoryRepository) List(_ context.Context) ([]*Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Submission, len(r.submissions))
	copy(out, r.submissions)
	return out, nil
}

func (r *InMemoryRepository) Search(ctx context.Context, term string) ([]*Submission, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(term))
	var out []*Submission
	for _, sub := range all {
		name := strings.ToLower(sub.Details.FullName)
		email := strings.ToLower(sub.Details.Email)
		if strings.Contains(name, search) || strings.Contains(email, search) {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) FilterByEventDate(ctx context.Context, start, end time.Time) ([]*Submission, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []*Submission
	for _, sub := range all {
		d := sub.Details.EventDate
		if !d.Before(start) && !d.After(end) {
			out = append(out, sub)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) SetReviewed(_ context.Context, id string, reviewed bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, sub := range r.submissions {
		if sub.ID != id {
			continue
		}
		sub.Reviewed = reviewed
		if reviewed {
			at := r.now()
			sub.ReviewedAt = &at
		} else {
			sub.ReviewedAt = nil
		}
		return nil
	}
	return ErrNotFound
}
