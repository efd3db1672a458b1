package dashboard

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/submission"
)

var ErrBadDateRange = errors.New("start date must not be after end date")

// Service is the caterer-side query layer over persisted submissions.
type Service struct {
	repo submission.Repository
}

func NewService(repo submission.Repository) *Service {
	return &Service{repo: repo}
}

// List returns every submission, newest first.
func (s *Service) List(ctx context.Context) ([]*submission.Submission, error) {
	return s.repo.List(ctx)
}

// Search matches the term against customer name and email,
// case-insensitive. A blank term falls back to the full list.
func (s *Service) Search(ctx context.Context, term string) ([]*submission.Submission, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.repo.List(ctx)
	}
	return s.repo.Search(ctx, term)
}

// FilterByEventDate returns submissions whose event date falls within
// [start, end], both inclusive.
func (s *Service) FilterByEventDate(ctx context.Context, start, end time.Time) ([]*submission.Submission, error) {
	if end.Before(start) {
		return nil, ErrBadDateRange
	}
	return s.repo.FilterByEventDate(ctx, start, end)
}

// SetReviewed toggles the staff reviewed flag on one submission.
func (s *Service) SetReviewed(ctx context.Context, id string, reviewed bool) error {
	return s.repo.SetReviewed(ctx, id, reviewed)
}

// Stats summarises the submission list for the dashboard header.
type Stats struct {
	Total    int `json:"total"`
	Reviewed int `json:"reviewed"`
	Pending  int `json:"pending"`
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &Stats{Total: len(all)}
	for _, sub := range all {
		if sub.Reviewed {
			stats.Reviewed++
		}
	}
	stats.Pending = stats.Total - stats.Reviewed
	return stats, nil
}
