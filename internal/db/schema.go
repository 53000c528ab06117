package db

import (
	"context"
	"fmt"
	"log"
)

// email and category use a binary collation so lookups and the unique key are case-sensitive.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
	user_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	full_name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL COLLATE utf8mb4_bin,
	contact VARCHAR(100) NOT NULL,
	user_password VARCHAR(255) NOT NULL,
	UNIQUE KEY uniq_accounts_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	`CREATE TABLE IF NOT EXISTS books (
	book_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	title VARCHAR(255) NOT NULL,
	category VARCHAR(100) NOT NULL COLLATE utf8mb4_bin,
	KEY idx_books_category (category)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	`CREATE TABLE IF NOT EXISTS books_cart (
	cart_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	book_id BIGINT NOT NULL,
	quantity INT NOT NULL DEFAULT 1,
	KEY idx_books_cart_user (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	`CREATE TABLE IF NOT EXISTS bookings (
	booking_id BIGINT AUTO_INCREMENT PRIMARY KEY,
	user_id BIGINT NOT NULL,
	book_id BIGINT NOT NULL,
	booking_date DATETIME NOT NULL,
	KEY idx_bookings_user (user_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
}

// EnsureSchema creates missing tables. Existing tables are left untouched.
func EnsureSchema(ctx context.Context, q DBTX) error {
	for _, ddl := range schemaDDL {
		if _, err := q.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	ok, err := HasUniqueIndex(ctx, q, "accounts", "email")
	switch {
	case err != nil:
		log.Printf("[DB] warning: cannot inspect accounts.email indexes: %v", err)
	case !ok:
		log.Println("[DB] warning: accounts.email has no unique index; duplicate signups rely on the pre-insert check")
	}
	return nil
}
