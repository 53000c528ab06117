package models

// BookSummary is the listing shape of GET /books/:category.
type BookSummary struct {
	BookID int64  `json:"book_id"`
	Title  string `json:"title"`
}
