package errors

import (
	"net/http"

	"stockroom/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types. The messages are part of the wire contract and
// must not change: clients match on them.
var (
	// Auth validation errors
	ErrEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_REQUIRED",
		"Email is required",
	)

	ErrPasswordRequired = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_REQUIRED",
		"Password is required",
	)

	ErrEmailInvalid = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_INVALID",
		"Email is invalid",
	)

	ErrEmailExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_EXISTS",
		"Email already exists",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrInvalidPassword = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_PASSWORD",
		"Invalid password",
	)

	// Bearer token errors
	ErrTokenRequired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_REQUIRED",
		"Token is required",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid token",
	)

	// Product validation errors
	ErrNameRequired = NewBaseError(
		http.StatusBadRequest,
		"NAME_REQUIRED",
		"Name is required",
	)

	ErrStockRequired = NewBaseError(
		http.StatusBadRequest,
		"STOCK_REQUIRED",
		"Stock is required",
	)

	ErrStockNotNumber = NewBaseError(
		http.StatusBadRequest,
		"STOCK_NOT_NUMBER",
		"Stock must be a number",
	)

	ErrProductExists = NewBaseError(
		http.StatusConflict,
		"PRODUCT_EXISTS",
		"Product already exists",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
	)

	// General errors
	ErrInvalidBody = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BODY",
		"Invalid request body",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// The underlying cause is logged, never surfaced to the client.
type DatabaseExecuteError struct {
	err error
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error) AppError {
	return &DatabaseExecuteError{err: err}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}
