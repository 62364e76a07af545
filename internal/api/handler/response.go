package handler

import "github.com/labstack/echo/v4"

// Envelope is the canonical response shape for every endpoint:
// {status, message, data?, errors?}. Error responses are rendered by the
// central HTTP error handler using the same shape.
type Envelope struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func success(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, Envelope{Status: "success", Message: message, Data: data})
}
