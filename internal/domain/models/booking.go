package models

import "time"

// CartItem is a books_cart row.
type CartItem struct {
	CartID   int64 `json:"cart_id"`
	UserID   int64 `json:"user_id"`
	BookID   int64 `json:"book_id"`
	Quantity int   `json:"quantity"`
}

// CartLine is a cart row joined with its book title.
type CartLine struct {
	CartID   int64  `json:"cart_id"`
	Title    string `json:"title"`
	BookID   int64  `json:"book_id"`
	Quantity int    `json:"quantity"`
}

// Booking is an immutable bookings row joined with its book title.
type Booking struct {
	UserID      int64     `json:"-"`
	BookID      int64     `json:"book_id"`
	Title       string    `json:"title"`
	BookingDate time.Time `json:"booking_date"`
}
