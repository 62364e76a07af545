package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user with this email already exists")

	ErrAdminExists        = errors.New("admin already exists")
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenExpired      = errors.New("token has expired")
	ErrTokenInvalid      = errors.New("invalid token")
	ErrPrincipalNotFound = errors.New("invalid token or user no longer exists")

	ErrForbidden = errors.New("access forbidden")
)
