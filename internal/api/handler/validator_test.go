package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func validationFields(t *testing.T, err error) []FieldError {
	t.Helper()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	return verr.Fields
}

func assertFieldMessage(t *testing.T, fields []FieldError, field, message string) {
	t.Helper()

	for _, fe := range fields {
		if fe.Field == field {
			if fe.Message != message {
				t.Fatalf("field %q: got message %q, want %q", field, fe.Message, message)
			}
			return
		}
	}
	t.Fatalf("no violation reported for field %q in %+v", field, fields)
}

func TestValidator_RegisterRequest_Valid(t *testing.T) {
	v := NewValidator()

	req := registerRequest{
		Username: "admin_01",
		Email:    "admin@example.com",
		Password: "Secret1",
	}
	if err := v.Validate(&req); err != nil {
		t.Fatalf("expected valid request, got %v", err)
	}
}

func TestValidator_RegisterRequest_AccumulatesAllViolations(t *testing.T) {
	v := NewValidator()

	req := registerRequest{
		Username: "a!",
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	}
	fields := validationFields(t, v.Validate(&req))
	if len(fields) != 4 {
		t.Fatalf("expected 4 violations, got %d: %+v", len(fields), fields)
	}
	assertFieldMessage(t, fields, "username", "Username must be between 3 and 30 characters")
	assertFieldMessage(t, fields, "email", "Please provide a valid email address")
	assertFieldMessage(t, fields, "password", "Password must be at least 6 characters long")
	assertFieldMessage(t, fields, "role", "Role must be either admin or user")
}

func TestValidator_RegisterRequest_UsernameCharset(t *testing.T) {
	v := NewValidator()

	req := registerRequest{
		Username: "bad name",
		Email:    "admin@example.com",
		Password: "Secret1",
	}
	fields := validationFields(t, v.Validate(&req))
	assertFieldMessage(t, fields, "username", "Username can only contain letters, numbers, and underscores")
}

func TestValidator_RegisterRequest_PasswordStrength(t *testing.T) {
	v := NewValidator()

	cases := []string{"alllower1", "ALLUPPER1", "NoDigits"}
	for _, password := range cases {
		req := registerRequest{
			Username: "admin_01",
			Email:    "admin@example.com",
			Password: password,
		}
		fields := validationFields(t, v.Validate(&req))
		assertFieldMessage(t, fields, "password",
			"Password must contain at least one lowercase letter, one uppercase letter, and one number")
	}
}

func TestValidator_CreateUserRequest(t *testing.T) {
	v := NewValidator()

	age := 200
	req := createUserRequest{
		Name:  "John4",
		Email: "john@example.com",
		Age:   &age,
	}
	fields := validationFields(t, v.Validate(&req))
	if len(fields) != 2 {
		t.Fatalf("expected 2 violations, got %d: %+v", len(fields), fields)
	}
	assertFieldMessage(t, fields, "name", "Name can only contain letters and spaces")
	assertFieldMessage(t, fields, "age", "Age must be a number between 0 and 150")
}

func TestValidator_CreateUserRequest_NameLength(t *testing.T) {
	v := NewValidator()

	req := createUserRequest{Name: "J", Email: "john@example.com"}
	fields := validationFields(t, v.Validate(&req))
	assertFieldMessage(t, fields, "name", "Name must be between 2 and 50 characters")
}

func TestValidator_UpdateUserRequest_OmittedFieldsPass(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&updateUserRequest{}); err != nil {
		t.Fatalf("empty partial update should validate, got %v", err)
	}

	age := 42
	if err := v.Validate(&updateUserRequest{Age: &age}); err != nil {
		t.Fatalf("age-only update should validate, got %v", err)
	}
}

func TestValidator_UpdateUserRequest_PresentFieldsChecked(t *testing.T) {
	v := NewValidator()

	email := "broken"
	req := updateUserRequest{Email: &email}
	fields := validationFields(t, v.Validate(&req))
	assertFieldMessage(t, fields, "email", "Please provide a valid email address")
}

func TestParseListQuery_Defaults(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	input, verr := parseListQuery(c)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if input.Page != 1 || input.Limit != 10 {
		t.Fatalf("unexpected paging defaults: %+v", input)
	}
	if input.SortBy != "createdAt" || input.SortOrder != "desc" {
		t.Fatalf("unexpected sort defaults: %+v", input)
	}
	if input.AgeMin != nil || input.AgeMax != nil || input.Search != "" {
		t.Fatalf("unexpected filter defaults: %+v", input)
	}
}

func TestParseListQuery_AllValues(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/users?page=3&limit=25&ageMin=18&ageMax=65&search=doe&sortBy=age&sortOrder=asc", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	input, verr := parseListQuery(c)
	if verr != nil {
		t.Fatalf("unexpected validation error: %v", verr)
	}
	if input.Page != 3 || input.Limit != 25 {
		t.Fatalf("unexpected paging: %+v", input)
	}
	if input.AgeMin == nil || *input.AgeMin != 18 || input.AgeMax == nil || *input.AgeMax != 65 {
		t.Fatalf("unexpected age range: %+v", input)
	}
	if input.Search != "doe" || input.SortBy != "age" || input.SortOrder != "asc" {
		t.Fatalf("unexpected filters: %+v", input)
	}
}

func TestParseListQuery_AccumulatesAllViolations(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet,
		"/users?page=0&limit=500&ageMin=-1&ageMax=999&sortBy=height&sortOrder=sideways", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, verr := parseListQuery(c)
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	if len(verr.Fields) != 6 {
		t.Fatalf("expected 6 violations, got %d: %+v", len(verr.Fields), verr.Fields)
	}
	assertFieldMessage(t, verr.Fields, "page", "Page must be a positive integer")
	assertFieldMessage(t, verr.Fields, "limit", "Limit must be between 1 and 100")
	assertFieldMessage(t, verr.Fields, "ageMin", "Minimum age must be between 0 and 150")
	assertFieldMessage(t, verr.Fields, "ageMax", "Maximum age must be between 0 and 150")
	assertFieldMessage(t, verr.Fields, "sortBy", "Sort field must be one of: name, email, age, createdAt")
	assertFieldMessage(t, verr.Fields, "sortOrder", "Sort order must be either asc or desc")
}

func TestParseListQuery_NonNumericPage(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users?page=abc", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	_, verr := parseListQuery(c)
	if verr == nil {
		t.Fatalf("expected validation error")
	}
	assertFieldMessage(t, verr.Fields, "page", "Page must be a positive integer")
}
