package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

// AuthService implements administrator registration, login, and profile lookup.
type AuthService struct {
	repo   ports.AuthRepository
	tokens ports.TokenService
}

func NewAuthService(repo ports.AuthRepository, tokens ports.TokenService) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Admin, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleAdmin
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &domain.Admin{
		Username:     input.Username,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.repo.Create(ctx, admin)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	admin, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	// Disabled accounts never receive tokens; the middleware would reject
	// them on every request anyway.
	if !admin.IsActive {
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(admin.ID)
	if err != nil {
		return "", nil, err
	}

	return token, admin, nil
}

func (s *AuthService) Profile(ctx context.Context, adminID string) (*domain.Admin, error) {
	return s.repo.FindByID(ctx, adminID)
}
