package services

import (
	"context"
	"database/sql"
	"fmt"

	"library/internal/domain"
	"library/internal/domain/models"
	"library/internal/repositories"
	"library/internal/utils"
)

type CartService struct {
	DB        *sql.DB
	RequestID string
}

type CartInput struct {
	UserID   int64 `json:"user_id" validate:"required,gt=0"`
	BookID   int64 `json:"book_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity" validate:"gte=1"`
}

func (s CartService) carts() repositories.CartRepository {
	return repositories.CartRepository{DB: s.DB}
}

// AddToCart inserts a new line. Adding the same book twice yields two lines.
func (s CartService) AddToCart(ctx context.Context, in CartInput) error {
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if err := validateInput(in); err != nil {
		return err
	}
	cartID, err := s.carts().Add(ctx, models.CartItem{UserID: in.UserID, BookID: in.BookID, Quantity: in.Quantity})
	if err != nil {
		return domain.InternalError{Msg: "error adding to cart", Err: err}
	}
	utils.LogEvent(s.RequestID, "cart", "add", fmt.Sprintf("user_id=%d book_id=%d cart_id=%d qty=%d", in.UserID, in.BookID, cartID, in.Quantity))
	return nil
}

func (s CartService) ListCart(ctx context.Context, userID int64) ([]models.CartLine, error) {
	if userID <= 0 {
		return nil, domain.ValidationError{Field: "user_id", Msg: "must be greater than 0"}
	}
	lines, err := s.carts().ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.InternalError{Msg: "error fetching cart", Err: err}
	}
	return lines, nil
}

// RemoveFromCart deletes every line of the book; nothing deleted is a NotFoundError.
func (s CartService) RemoveFromCart(ctx context.Context, userID, bookID int64) error {
	if err := validateInput(CartInput{UserID: userID, BookID: bookID, Quantity: 1}); err != nil {
		return err
	}
	n, err := s.carts().Remove(ctx, userID, bookID)
	if err != nil {
		return domain.InternalError{Msg: "error removing from cart", Err: err}
	}
	if n == 0 {
		return domain.NotFoundError{Resource: "cart item", Msg: "book not found in cart"}
	}
	utils.LogEvent(s.RequestID, "cart", "remove", fmt.Sprintf("user_id=%d book_id=%d removed=%d", userID, bookID, n))
	return nil
}
