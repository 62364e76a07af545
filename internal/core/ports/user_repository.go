package ports

import (
	"context"

	"github.com/userhub/user-management-api/internal/core/domain"
)

// ListUsersFilter carries all query parameters for listing users.
// Page is 1-based; Limit is capped at 100 by the validation layer.
type ListUsersFilter struct {
	AgeMin    *int   // optional: age >= AgeMin
	AgeMax    *int   // optional: age <= AgeMax
	Search    string // optional: case-insensitive substring match on name or email
	SortBy    string // one of name, email, age, createdAt
	SortOrder string // asc or desc
	Page      int
	Limit     int
}

// StatsOverview is the aggregate block computed over users with an age value.
// Zero values are returned for an empty collection, never nulls.
type StatsOverview struct {
	TotalUsers int64   `json:"totalUsers"`
	AvgAge     float64 `json:"avgAge"`
	MinAge     int     `json:"minAge"`
	MaxAge     int     `json:"maxAge"`
}

// AgeBucketMember is a single user inside an age distribution bucket.
type AgeBucketMember struct {
	Name string `json:"name" bson:"name"`
	Age  int    `json:"age" bson:"age"`
}

// AgeBucket is one histogram bucket of the age distribution. Bucket holds the
// lower boundary of the bucket, or the string "Other" for the catch-all.
type AgeBucket struct {
	Bucket any               `json:"_id" bson:"_id"`
	Count  int64             `json:"count" bson:"count"`
	Users  []AgeBucketMember `json:"users" bson:"users"`
}

// UserRepository defines persistence operations for the user resource.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) (*domain.User, error)
	// List returns a page of users matching filter and the total count under
	// the same filter.
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
	// Stats computes the overview aggregate and the age distribution.
	Stats(ctx context.Context) (*StatsOverview, []AgeBucket, error)
}
