package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"

	intdb "library/internal/db"
	"library/internal/domain"
	"library/internal/domain/models"
	"library/internal/repositories"
	"library/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

const defaultBcryptCost = 10

// AuthService handles signup and login against accounts.
type AuthService struct {
	DB         *sql.DB
	BcryptCost int
	RequestID  string
}

type SignupInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Contact  string `json:"contact" validate:"required"`
	Password string `json:"user_password" validate:"required"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var (
	dummyHashOnce sync.Once
	dummyHash     []byte
)

func (s AuthService) accounts() repositories.AccountRepository {
	return repositories.AccountRepository{DB: s.DB}
}

func (s AuthService) cost() int {
	if s.BcryptCost == 0 {
		return defaultBcryptCost
	}
	return s.BcryptCost
}

// Signup creates an account and returns its user_id.
func (s AuthService) Signup(ctx context.Context, in SignupInput) (int64, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Contact = strings.TrimSpace(in.Contact)
	if err := validateInput(in); err != nil {
		return 0, err
	}

	exists, err := s.accounts().EmailExists(ctx, in.Email)
	if err != nil {
		return 0, domain.InternalError{Msg: "failed to check email", Err: err}
	}
	if exists {
		return 0, domain.ConflictError{Resource: "account", Msg: "email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return 0, domain.ValidationError{Field: "user_password", Msg: "must be at most 72 bytes", Err: err}
		}
		return 0, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	id, err := s.accounts().Create(ctx, models.Account{
		FullName:     in.FullName,
		Email:        in.Email,
		Contact:      in.Contact,
		PasswordHash: string(hash),
	})
	if err != nil {
		// a concurrent signup can pass the check above; the unique key catches it
		if intdb.IsDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "account", Msg: "email already exists", Err: err}
		}
		return 0, domain.InternalError{Msg: "failed to register user", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "signup", fmt.Sprintf("user_id=%d", id))
	return id, nil
}

// Login verifies the password. Unknown email and wrong password fail identically.
func (s AuthService) Login(ctx context.Context, in LoginInput) (domain.Session, error) {
	in.Email = strings.TrimSpace(in.Email)
	if err := validateInput(in); err != nil {
		return domain.Session{}, err
	}

	acc, err := s.accounts().GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// burn one comparison so response time does not reveal the miss
			_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(in.Password))
			utils.LogEvent(s.RequestID, "auth", "login", "rejected reason=unknown_email")
			return domain.Session{}, domain.AuthenticationError{Err: err}
		}
		return domain.Session{}, domain.InternalError{Msg: "failed to look up account", Err: err}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("rejected reason=password_mismatch user_id=%d", acc.UserID))
		return domain.Session{}, domain.AuthenticationError{Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("ok user_id=%d", acc.UserID))
	return domain.Session{UserID: domain.ID(acc.UserID), Email: acc.Email}, nil
}

func (s AuthService) dummyHash() []byte {
	dummyHashOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), s.cost())
	})
	return dummyHash
}
