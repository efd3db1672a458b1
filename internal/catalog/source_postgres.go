package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Load(ctx context.Context) (Catalog, error) {
	rows, err := s.db.Query(ctx, `
		SELECT category, name
		FROM menu_items
		ORDER BY category, position
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	c := Catalog{}
	for rows.Next() {
		var category, name string
		if err := rows.Scan(&category, &name); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		c[Category(category)] = append(c[Category(category)], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(c) == 0 {
		return nil, fmt.Errorf("%w: menu_items table is empty", ErrUnavailable)
	}
	return c, nil
}
