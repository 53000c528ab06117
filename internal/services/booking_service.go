package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	intdb "library/internal/db"
	"library/internal/domain"
	"library/internal/domain/models"
	"library/internal/repositories"
	"library/internal/utils"
)

// BookingService turns a user's cart into bookings.
type BookingService struct {
	DB        *sql.DB
	Now       func() time.Time
	RequestID string
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Book copies every cart line of userID into bookings and empties the cart, in one
// transaction. It returns the number of bookings written; an empty cart books nothing
// and is not an error.
func (s BookingService) Book(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, domain.ValidationError{Field: "user_id", Msg: "must be greater than 0"}
	}

	at := s.now()
	var booked int64
	err := intdb.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		n, err := repositories.BookingRepository{DB: tx}.CopyFromCart(ctx, userID, at)
		if err != nil {
			return fmt.Errorf("insert bookings: %w", err)
		}
		if _, err := (repositories.CartRepository{DB: tx}).Clear(ctx, userID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
		booked = n
		return nil
	})
	if err != nil {
		utils.LogEvent(s.RequestID, "booking", "book", fmt.Sprintf("user_id=%d rolled back: %v", userID, err))
		return 0, domain.InternalError{Msg: "error booking books", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "book", fmt.Sprintf("user_id=%d booked=%d", userID, booked))
	return booked, nil
}

func (s BookingService) ListBookings(ctx context.Context, userID int64) ([]models.Booking, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "must be greater than 0"}
	}
	out, err := repositories.BookingRepository{DB: s.DB}.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.InternalError{Msg: "error fetching bookings", Err: err}
	}
	return out, nil
}
