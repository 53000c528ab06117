package domain

// ID is used across domain entities.
type ID int64

// Session is what a successful login hands back. It carries no credential;
// callers pass UserID on later requests.
type Session struct {
	UserID ID     `json:"user_id"`
	Email  string `json:"userEmail"`
}
