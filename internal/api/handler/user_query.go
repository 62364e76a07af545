package handler

import (
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userhub/user-management-api/internal/core/ports"
)

const (
	defaultPage   = 1
	defaultLimit  = 10
	maxLimit      = 100
	defaultSortBy = "createdAt"
	defaultOrder  = "desc"
)

var listSortFields = map[string]bool{
	"name":      true,
	"email":     true,
	"age":       true,
	"createdAt": true,
}

// parseListQuery validates and defaults every list query parameter,
// accumulating all violations instead of stopping at the first. Parsing is
// done by hand because the query binder aborts on the first bad value, which
// would hide later violations from the client.
func parseListQuery(c echo.Context) (ports.ListUsersInput, *ValidationError) {
	var fields []FieldError

	input := ports.ListUsersInput{
		Page:      defaultPage,
		Limit:     defaultLimit,
		SortBy:    defaultSortBy,
		SortOrder: defaultOrder,
		Search:    strings.TrimSpace(c.QueryParam("search")),
	}

	if raw := c.QueryParam("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fields = append(fields, FieldError{Field: "page", Message: "Page must be a positive integer"})
		} else {
			input.Page = n
		}
	}

	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLimit {
			fields = append(fields, FieldError{Field: "limit", Message: "Limit must be between 1 and 100"})
		} else {
			input.Limit = n
		}
	}

	if raw := c.QueryParam("ageMin"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 150 {
			fields = append(fields, FieldError{Field: "ageMin", Message: "Minimum age must be between 0 and 150"})
		} else {
			input.AgeMin = &n
		}
	}

	if raw := c.QueryParam("ageMax"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > 150 {
			fields = append(fields, FieldError{Field: "ageMax", Message: "Maximum age must be between 0 and 150"})
		} else {
			input.AgeMax = &n
		}
	}

	if raw := c.QueryParam("sortBy"); raw != "" {
		if !listSortFields[raw] {
			fields = append(fields, FieldError{Field: "sortBy", Message: "Sort field must be one of: name, email, age, createdAt"})
		} else {
			input.SortBy = raw
		}
	}

	if raw := c.QueryParam("sortOrder"); raw != "" {
		if raw != "asc" && raw != "desc" {
			fields = append(fields, FieldError{Field: "sortOrder", Message: "Sort order must be either asc or desc"})
		} else {
			input.SortOrder = raw
		}
	}

	if len(fields) > 0 {
		return input, &ValidationError{Fields: fields}
	}
	return input, nil
}
