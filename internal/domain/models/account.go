package models

// Account is a row of accounts. PasswordHash never leaves the service layer.
type Account struct {
	UserID       int64  `json:"user_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	Contact      string `json:"contact"`
	PasswordHash string `json:"-"`
}

// Profile is the public part of an account.
type Profile struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}
