package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"library/internal/domain"
	"library/internal/domain/models"
	"library/internal/repositories"
)

// CatalogService serves read-only profile and book lookups.
type CatalogService struct {
	DB        *sql.DB
	RequestID string
}

func (s CatalogService) GetProfile(ctx context.Context, email string) (models.Profile, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.Profile{}, domain.ValidationError{Field: "email", Msg: "is required"}
	}
	p, err := repositories.AccountRepository{DB: s.DB}.GetProfile(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, domain.NotFoundError{Resource: "user", Msg: "user not found", Err: err}
		}
		return models.Profile{}, domain.InternalError{Msg: "failed to fetch profile", Err: err}
	}
	return p, nil
}

func (s CatalogService) ListBooksByCategory(ctx context.Context, category string) ([]models.BookSummary, error) {
	books, err := repositories.BookRepository{DB: s.DB}.ListByCategory(ctx, category)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to fetch books", Err: err}
	}
	return books, nil
}
