package repositories

import (
	"context"
	"time"

	intdb "library/internal/db"
	"library/internal/domain/models"
)

type BookingRepository struct {
	DB intdb.DBTX
}

// CopyFromCart snapshots the user's current cart into bookings, stamped with at.
// Run it on the same *sql.Tx as the cart clear.
func (r BookingRepository) CopyFromCart(ctx context.Context, userID int64, at time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO bookings (user_id, book_id, booking_date)
		SELECT user_id, book_id, ? FROM books_cart WHERE user_id = ?
	`, at, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r BookingRepository) ListByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT bk.user_id, bk.book_id, COALESCE(b.title, ''), bk.booking_date
		FROM bookings bk
		LEFT JOIN books b ON bk.book_id = b.book_id
		WHERE bk.user_id = ?
		ORDER BY bk.booking_date ASC, bk.book_id ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.UserID, &b.BookID, &b.Title, &b.BookingDate); err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
