package services

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"

	"library/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"golang.org/x/crypto/bcrypt"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// bcryptArg matches any bcrypt hash of the wrapped password.
type bcryptArg struct{ password string }

func (a bcryptArg) Match(v driver.Value) bool {
	s, ok := v.(string)
	if !ok || s == a.password {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s), []byte(a.password)) == nil
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "full_name", "email", "contact", "user_password"})
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestSignupStoresHashNotPassword(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM accounts").WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs("A B", "a@x.com", "123", bcryptArg{password: "pw1"}).
		WillReturnResult(sqlmock.NewResult(1, 1))

	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}
	id, err := svc.Signup(context.Background(), SignupInput{FullName: " A B ", Email: "a@x.com", Contact: "123", Password: "pw1"})
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if id != 1 {
		t.Fatalf("user_id = %d, want 1", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSignupMissingFields(t *testing.T) {
	db, mock := newMockDB(t)
	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}

	cases := []SignupInput{
		{Email: "a@x.com", Contact: "1", Password: "p"},
		{FullName: "A", Contact: "1", Password: "p"},
		{FullName: "A", Email: "a@x.com", Password: "p"},
		{FullName: "A", Email: "a@x.com", Contact: "1"},
		{FullName: "   ", Email: "a@x.com", Contact: "1", Password: "p"},
	}
	for i, in := range cases {
		_, err := svc.Signup(context.Background(), in)
		if !domain.IsValidation(err) {
			t.Fatalf("case %d: expected ValidationError, got %v", i, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query expected on validation failure: %v", err)
	}
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM accounts").WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}
	_, err := svc.Signup(context.Background(), SignupInput{FullName: "Other", Email: "a@x.com", Contact: "999", Password: "x"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if err.Error() != "email already exists" {
		t.Fatalf("message = %q", err.Error())
	}
	// no INSERT was expected; sqlmock would have failed the call
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSignupRaceCaughtByUniqueKey(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM accounts").WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("INSERT INTO accounts").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'a@x.com' for key 'uniq_accounts_email'"})

	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}
	_, err := svc.Signup(context.Background(), SignupInput{FullName: "A", Email: "a@x.com", Contact: "1", Password: "p"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestSignupStorageFailureIsInternal(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM accounts").WillReturnError(errors.New("connection refused"))

	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}
	_, err := svc.Signup(context.Background(), SignupInput{FullName: "A", Email: "a@x.com", Contact: "1", Password: "p"})
	if !domain.IsInternal(err) {
		t.Fatalf("expected InternalError, got %v", err)
	}
}

func TestSignupPasswordTooLong(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM accounts").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}
	_, err := svc.Signup(context.Background(), SignupInput{FullName: "A", Email: "a@x.com", Contact: "1", Password: strings.Repeat("x", 80)})
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM accounts").WithArgs("a@x.com").
		WillReturnRows(accountRows().AddRow(1, "A B", "a@x.com", "123", mustHash(t, "pw1")))

	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}
	sess, err := svc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if sess.UserID != 1 || sess.Email != "a@x.com" {
		t.Fatalf("unexpected session %+v", sess)
	}
}

func TestLoginUnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM accounts").WithArgs("ghost@x.com").WillReturnRows(accountRows())
	mock.ExpectQuery("FROM accounts").WithArgs("a@x.com").
		WillReturnRows(accountRows().AddRow(1, "A B", "a@x.com", "123", mustHash(t, "pw1")))

	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}
	_, errUnknown := svc.Login(context.Background(), LoginInput{Email: "ghost@x.com", Password: "pw1"})
	_, errWrong := svc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "wrong"})

	if !domain.IsAuthentication(errUnknown) || !domain.IsAuthentication(errWrong) {
		t.Fatalf("expected AuthenticationError for both, got %v / %v", errUnknown, errWrong)
	}
	if errUnknown.Error() != errWrong.Error() {
		t.Fatalf("messages differ: %q vs %q", errUnknown.Error(), errWrong.Error())
	}
}

func TestLoginMissingFields(t *testing.T) {
	db, _ := newMockDB(t)
	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}

	if _, err := svc.Login(context.Background(), LoginInput{Email: "a@x.com"}); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for missing password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), LoginInput{Password: "pw"}); !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError for missing email, got %v", err)
	}
}

func TestLoginStorageFailureIsInternal(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery("FROM accounts").WillReturnError(errors.New("i/o timeout"))

	svc := AuthService{DB: db, BcryptCost: bcrypt.MinCost}
	_, err := svc.Login(context.Background(), LoginInput{Email: "a@x.com", Password: "pw"})
	if !domain.IsInternal(err) || domain.IsAuthentication(err) {
		t.Fatalf("expected InternalError, got %v", err)
	}
}
