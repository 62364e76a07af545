package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single validation violation reported to the client.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full ordered list of violations for a request.
// All rules are evaluated before the error is built; nothing short-circuits.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

var (
	usernameRe   = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	personNameRe = regexp.MustCompile(`^[a-zA-Z\s]+$`)
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(req).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator builds the validator with the request-specific rule tags
// registered. Field names in error output come from json tags.
func NewValidator() *echoValidator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("password_strength", func(fl validator.FieldLevel) bool {
		var lower, upper, digit bool
		for _, r := range fl.Field().String() {
			switch {
			case unicode.IsLower(r):
				lower = true
			case unicode.IsUpper(r):
				upper = true
			case unicode.IsDigit(r):
				digit = true
			}
		}
		return lower && upper && digit
	})

	return &echoValidator{v: v}
}

// Validate satisfies the echo.Validator interface. It returns a
// *ValidationError holding every violation in struct field order.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			fields := make([]FieldError, 0, len(ve))
			for _, fe := range ve {
				fields = append(fields, fieldError(fe))
			}
			return &ValidationError{Fields: fields}
		}
		return err
	}
	return nil
}

// fieldError converts a single violation into the client-facing message.
// Messages are field-specific where the rules are, tag-generic otherwise.
func fieldError(fe validator.FieldError) FieldError {
	field := fe.Field()

	var msg string
	switch field {
	case "username":
		switch fe.Tag() {
		case "username":
			msg = "Username can only contain letters, numbers, and underscores"
		case "min", "max":
			msg = "Username must be between 3 and 30 characters"
		default:
			msg = "Username is required"
		}
	case "email":
		msg = "Please provide a valid email address"
	case "password":
		switch fe.Tag() {
		case "min":
			msg = "Password must be at least 6 characters long"
		case "password_strength":
			msg = "Password must contain at least one lowercase letter, one uppercase letter, and one number"
		default:
			msg = "Password is required"
		}
	case "name":
		switch fe.Tag() {
		case "person_name":
			msg = "Name can only contain letters and spaces"
		default:
			msg = "Name must be between 2 and 50 characters"
		}
	case "age":
		msg = "Age must be a number between 0 and 150"
	case "role":
		msg = "Role must be either admin or user"
	default:
		msg = fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}

	return FieldError{Field: field, Message: msg}
}
