package main

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPrepareDBClosesPoolOnSchemaFailure(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS accounts").WillReturnError(errors.New("access denied"))
	mock.ExpectClose()

	db, err := prepareDB(context.Background(), func() (*sql.DB, error) { return conn, nil })
	if err == nil || db != nil {
		t.Fatalf("expected schema error and nil pool, got %v / %v", db, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("pool was not closed: %v", err)
	}
}

func TestPrepareDBOpenFailure(t *testing.T) {
	want := errors.New("dial tcp: connection refused")
	_, err := prepareDB(context.Background(), func() (*sql.DB, error) { return nil, want })
	if !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}
