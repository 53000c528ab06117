package repositories

import (
	"context"

	intdb "library/internal/db"
	"library/internal/domain/models"
)

type BookRepository struct {
	DB intdb.DBTX
}

// ListByCategory returns books whose category matches exactly, in insertion order.
func (r BookRepository) ListByCategory(ctx context.Context, category string) ([]models.BookSummary, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT book_id, title
		FROM books
		WHERE category = ?
		ORDER BY book_id ASC
	`, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.BookSummary{}
	for rows.Next() {
		var b models.BookSummary
		if err := rows.Scan(&b.BookID, &b.Title); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
