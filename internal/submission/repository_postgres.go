package submission

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/empirecontractoragency-cpu/master-cookery-menu-selector/internal/catalog"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const submissionColumns = `
	id, full_name, phone, email, event_type, event_date, event_location,
	guest_count, selections, notes, pdf_url, created_at, reviewed, reviewed_at
`

func (r *PostgresRepository) Save(ctx context.Context, sub *Submission) (string, error) {
	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}

	selections, err := json.Marshal(sub.Selections)
	if err != nil {
		return "", fmt.Errorf("encode selections: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO submissions (
			id, full_name, phone, email, event_type, event_date,
			event_location, guest_count, selections, notes, pdf_url,
			created_at, reviewed
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
	`,
		sub.ID,
		sub.Details.FullName,
		sub.Details.Phone,
		sub.Details.Email,
		sub.Details.EventType,
		sub.Details.EventDate,
		sub.Details.EventLocation,
		sub.Details.GuestCount,
		selections,
		sub.Notes,
		sub.PDFURL,
		sub.CreatedAt,
		sub.Reviewed,
	)
	if err != nil {
		return "", fmt.Errorf("save submission: %w", err)
	}
	return sub.ID, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*Submission, error) {
	return r.query(ctx, `
		SELECT `+submissionColumns+`
		FROM submissions
		ORDER BY created_at DESC
	`)
}

func (r *PostgresRepository) Search(ctx context.Context, term string) ([]*Submission, error) {
	return r.query(ctx, `
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE full_name ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		ORDER BY created_at DESC
	`, term)
}

func (r *PostgresRepository) FilterByEventDate(ctx context.Context, start, end time.Time) ([]*Submission, error) {
	return r.query(ctx, `
		SELECT `+submissionColumns+`
		FROM submissions
		WHERE event_date BETWEEN $1 AND $2
		ORDER BY created_at DESC
	`, start, end)
}

func (r *PostgresRepository) SetReviewed(ctx context.Context, id string, reviewed bool) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE submissions
		SET reviewed = $1,
		    reviewed_at = CASE WHEN $1 THEN NOW() ELSE NULL END
		WHERE id = $2
	`, reviewed, id)
	if err != nil {
		return fmt.Errorf("update reviewed flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]*Submission, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var out []*Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func scanSubmission(row pgx.Row) (*Submission, error) {
	var (
		sub        Submission
		selections []byte
	)
	err := row.Scan(
		&sub.ID,
		&sub.Details.FullName,
		&sub.Details.Phone,
		&sub.Details.Email,
		&sub.Details.EventType,
		&sub.Details.EventDate,
		&sub.Details.EventLocation,
		&sub.Details.GuestCount,
		&selections,
		&sub.Notes,
		&sub.PDFURL,
		&sub.CreatedAt,
		&sub.Reviewed,
		&sub.ReviewedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan submission: %w", err)
	}

	sub.Selections = make(map[catalog.Category][]string)
	if err := json.Unmarshal(selections, &sub.Selections); err != nil {
		return nil, fmt.Errorf("decode selections: %w", err)
	}
	return &sub, nil
}
