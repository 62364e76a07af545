package handler

import (
	"strings"
	"time"

	"github.com/userhub/user-management-api/internal/core/domain"
)

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,username"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,password_strength"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin user"`
}

// normalize trims and lowercases before validation so length rules apply to
// the trimmed value and email comparisons are canonical.
func (r *registerRequest) normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *loginRequest) normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

// adminResponse is the admin view returned by register, login, and profile.
// The password hash never leaves the service layer.
type adminResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAdminResponse(a *domain.Admin) adminResponse {
	return adminResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		Role:      a.Role,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt.UTC(),
		UpdatedAt: a.UpdatedAt.UTC(),
	}
}
