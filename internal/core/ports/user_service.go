package ports

import (
	"context"

	"github.com/userhub/user-management-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when creating a user.
// Email is expected to be normalized (trimmed, lowercased) by the caller.
type CreateUserInput struct {
	Name  string
	Email string
	Age   *int
}

// UpdateUserInput carries a partial update: nil fields are left unchanged.
type UpdateUserInput struct {
	Name  *string
	Email *string
	Age   *int
}

// ListUsersInput carries all parameters for the list endpoint, already
// validated and defaulted by the transport layer.
type ListUsersInput struct {
	AgeMin    *int
	AgeMax    *int
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Pagination describes the page window of a list result.
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalUsers  int64 `json:"totalUsers"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
	Limit       int   `json:"limit"`
}

// ListUsersResult is returned by ListUsers.
type ListUsersResult struct {
	Users      []*domain.User
	Pagination Pagination
}

// DeletedUser is the minimal summary returned after a successful delete.
type DeletedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserStats is the full statistics view: overview plus age histogram.
type UserStats struct {
	Overview        StatsOverview `json:"overview"`
	AgeDistribution []AgeBucket   `json:"ageDistribution"`
}

// UserService defines use-case operations over the user resource.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, input ListUsersInput) (*ListUsersResult, error)
	Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) (*DeletedUser, error)
	Stats(ctx context.Context) (*UserStats, error)
}
