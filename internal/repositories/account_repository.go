package repositories

import (
	"context"

	intdb "library/internal/db"
	"library/internal/domain/models"
)

type AccountRepository struct {
	DB intdb.DBTX
}

// EmailExists reports whether any account already uses email.
func (r AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts WHERE email = ?`, email).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Create inserts an account and returns its user_id. a.PasswordHash must already be hashed.
func (r AccountRepository) Create(ctx context.Context, a models.Account) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO accounts (full_name, email, contact, user_password)
		VALUES (?, ?, ?, ?)
	`, a.FullName, a.Email, a.Contact, a.PasswordHash)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByEmail returns sql.ErrNoRows when no account matches.
func (r AccountRepository) GetByEmail(ctx context.Context, email string) (models.Account, error) {
	var a models.Account
	err := r.DB.QueryRowContext(ctx, `
		SELECT user_id, full_name, email, contact, user_password
		FROM accounts
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&a.UserID, &a.FullName, &a.Email, &a.Contact, &a.PasswordHash)
	return a, err
}

func (r AccountRepository) GetProfile(ctx context.Context, email string) (models.Profile, error) {
	var p models.Profile
	err := r.DB.QueryRowContext(ctx, `
		SELECT full_name, email, contact
		FROM accounts
		WHERE email = ?
		LIMIT 1
	`, email).Scan(&p.FullName, &p.Email, &p.Contact)
	return p, err
}
