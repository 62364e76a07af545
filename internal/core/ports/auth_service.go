package ports

import (
	"context"

	"github.com/userhub/user-management-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration. Role defaults
// to admin when empty.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Admin, error)
	Login(ctx context.Context, email, password string) (string, *domain.Admin, error)
	Profile(ctx context.Context, adminID string) (*domain.Admin, error)
}

// TokenService issues and verifies the signed bearer tokens that carry an
// administrator identity.
type TokenService interface {
	Issue(adminID string) (string, error)
	// Verify returns the admin ID encoded in the token. It fails with
	// domain.ErrTokenExpired when past the expiry instant and with
	// domain.ErrTokenInvalid on a bad signature or malformed token.
	Verify(token string) (string, error)
}
