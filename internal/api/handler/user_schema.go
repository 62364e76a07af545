package handler

import (
	"strings"
	"time"
)

type createUserRequest struct {
	Name  string `json:"name"  validate:"required,min=2,max=50,person_name"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age,omitempty" validate:"omitempty,min=0,max=150"`
}

func (r *createUserRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// updateUserRequest is a partial update: absent fields are left unchanged.
type updateUserRequest struct {
	Name  *string `json:"name,omitempty"  validate:"omitempty,min=2,max=50,person_name"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
	Age   *int    `json:"age,omitempty"   validate:"omitempty,min=0,max=150"`
}

func (r *updateUserRequest) normalize() {
	if r.Name != nil {
		trimmed := strings.TrimSpace(*r.Name)
		r.Name = &trimmed
	}
	if r.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*r.Email))
		r.Email = &normalized
	}
}

// userResponse is the full single-resource view, including the derived
// age category.
type userResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Age         *int      `json:"age,omitempty"`
	AgeCategory string    `json:"ageCategory"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// userSummaryResponse is the list-view item. It intentionally omits the
// age category, which is only computed for single-resource views.
type userSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       *int      `json:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// listFiltersResponse echoes the applied filters back to the client.
type listFiltersResponse struct {
	AgeMin    *int   `json:"ageMin,omitempty"`
	AgeMax    *int   `json:"ageMax,omitempty"`
	Search    string `json:"search,omitempty"`
	SortBy    string `json:"sortBy"`
	SortOrder string `json:"sortOrder"`
}

type deletedUserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
