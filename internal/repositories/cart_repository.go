package repositories

import (
	"context"

	intdb "library/internal/db"
	"library/internal/domain/models"
)

type CartRepository struct {
	DB intdb.DBTX
}

// Add always inserts a new line; repeated adds of the same book produce separate rows.
func (r CartRepository) Add(ctx context.Context, item models.CartItem) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO books_cart (user_id, book_id, quantity)
		VALUES (?, ?, ?)
	`, item.UserID, item.BookID, item.Quantity)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListByUser joins the cart with books; lines whose book is gone are skipped.
func (r CartRepository) ListByUser(ctx context.Context, userID int64) ([]models.CartLine, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT bc.cart_id, b.title, b.book_id, bc.quantity
		FROM books_cart bc
		JOIN books b ON bc.book_id = b.book_id
		WHERE bc.user_id = ?
		ORDER BY bc.cart_id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CartLine{}
	for rows.Next() {
		var l models.CartLine
		if err := rows.Scan(&l.CartID, &l.Title, &l.BookID, &l.Quantity); err != nil {
			return out, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Remove deletes every line of bookID in the user's cart and returns how many went.
func (r CartRepository) Remove(ctx context.Context, userID, bookID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM books_cart WHERE user_id = ? AND book_id = ?`, userID, bookID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r CartRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM books_cart WHERE user_id = ?`, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
