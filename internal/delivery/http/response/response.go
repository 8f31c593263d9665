// Package response shapes every JSON body the API emits.
package response

import (
	"github.com/labstack/echo/v4"
)

// Body is the unified wire envelope. Success bodies carry message+data or
// message+token; error bodies carry message alone. The field set is part of
// the wire contract.
type Body struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
}

// Success writes a message+data body with the given status code.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Body{
		Message: message,
		Data:    data,
	})
}

// Token writes a message+token body, used by login.
func Token(c echo.Context, statusCode int, token string, message string) error {
	return c.JSON(statusCode, Body{
		Message: message,
		Token:   token,
	})
}

// Message writes a bare message body. Error responses go through here so
// nothing beyond the fixed message ever leaks.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Body{
		Message: message,
	})
}
