package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/userhub/user-management-api/internal/core/domain"
)

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// secret is loaded once at startup and never changes for the process lifetime.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token encoding the admin ID and an expiry instant.
func (s *TokenService) Issue(adminID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": adminID,
		"exp":     time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates the token, returning the encoded admin ID.
// Expiry is reported distinctly from signature or structural failures.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return "", domain.ErrTokenInvalid
	}

	adminID, _ := claims["user_id"].(string)
	if adminID == "" {
		return "", domain.ErrTokenInvalid
	}
	return adminID, nil
}
