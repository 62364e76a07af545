package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management-api/internal/core/domain"
	"github.com/userhub/user-management-api/internal/core/ports"
)

type stubAuthService struct {
	admin    *domain.Admin
	token    string
	err      error
	lastReg  ports.RegisterInput
	lastAuth struct{ email, password string }
}

func (s *stubAuthService) Register(_ context.Context, input ports.RegisterInput) (*domain.Admin, error) {
	s.lastReg = input
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.Admin, error) {
	s.lastAuth.email = email
	s.lastAuth.password = password
	if s.err != nil {
		return "", nil, s.err
	}
	return s.token, s.admin, nil
}

func (s *stubAuthService) Profile(_ context.Context, _ string) (*domain.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func testAdmin() *domain.Admin {
	return &domain.Admin{
		ID:        "admin_1",
		Username:  "rootadmin",
		Email:     "admin@example.com",
		Role:      domain.RoleAdmin,
		IsActive:  true,
		CreatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a valid envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

func envelopeData(t *testing.T, env Envelope) map[string]any {
	t.Helper()

	data, ok := env.Data.(map[string]any)
	if !ok {
		t.Fatalf("envelope data is not an object: %#v", env.Data)
	}
	return data
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := &stubAuthService{admin: testAdmin()}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"rootadmin","email":"Admin@Example.com","password":"Secret1"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Status != "success" || env.Message != "Admin registered successfully" {
		t.Fatalf("unexpected envelope: %+v", env)
	}

	admin, ok := envelopeData(t, env)["admin"].(map[string]any)
	if !ok {
		t.Fatalf("missing admin in response data")
	}
	if admin["username"] != "rootadmin" || admin["role"] != "admin" {
		t.Fatalf("unexpected admin view: %+v", admin)
	}
	if _, leaked := admin["passwordHash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}

	if svc.lastReg.Email != "admin@example.com" {
		t.Fatalf("email not normalized before service call: %q", svc.lastReg.Email)
	}
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"ab","email":"bad","password":"x"}`)

	err := h.Register(c)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 violations, got %+v", verr.Fields)
	}
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrAdminExists})

	c, _ := newJSONContext(t, http.MethodPost, "/auth/register",
		`{"username":"rootadmin","email":"admin@example.com","password":"Secret1"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrAdminExists) {
		t.Fatalf("expected ErrAdminExists, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := &stubAuthService{admin: testAdmin(), token: "signed-token"}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"Admin@Example.com","password":"Secret1"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Message != "Login successful" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
	data := envelopeData(t, env)
	if data["token"] != "signed-token" {
		t.Fatalf("expected token in response, got %+v", data)
	}
	if svc.lastAuth.email != "admin@example.com" {
		t.Fatalf("email not normalized before service call: %q", svc.lastAuth.email)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newJSONContext(t, http.MethodPost, "/auth/login",
		`{"email":"admin@example.com","password":"wrong1A"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Profile_Success(t *testing.T) {
	svc := &stubAuthService{admin: testAdmin()}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(t, http.MethodGet, "/auth/profile", "")
	c.Set("identity", domain.Identity{ID: "admin_1", Email: "admin@example.com", Role: domain.RoleAdmin})

	if err := h.Profile(c); err != nil {
		t.Fatalf("Profile returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	if env.Message != "Profile retrieved successfully" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
	if _, ok := envelopeData(t, env)["admin"]; !ok {
		t.Fatalf("missing admin in response data")
	}
}

func TestAuthHandler_Profile_MissingIdentity(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{admin: testAdmin()})

	c, _ := newJSONContext(t, http.MethodGet, "/auth/profile", "")

	err := h.Profile(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
