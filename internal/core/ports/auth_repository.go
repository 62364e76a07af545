package ports

import (
	"context"

	"github.com/userhub/user-management-api/internal/core/domain"
)

// AuthRepository defines the interface for administrator account persistence.
type AuthRepository interface {
	Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
}
