package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Admin models an administrator account used to authenticate against the API.
// Admins are a separate uniqueness domain from the User resources they manage.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the request-scoped principal attached by the auth middleware
// after a token has been verified and the admin loaded. Never persisted.
type Identity struct {
	ID    string
	Email string
	Role  string
}
