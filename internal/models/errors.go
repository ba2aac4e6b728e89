package models

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the standard single-error API response body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// FieldError is one entry of a per-field validation failure list.
type FieldError struct {
	Field string `json:"field,omitempty"`
	Msg   string `json:"msg"`
}

// ValidationErrorsResponse is the API response body for request
// validation failures. Clients fan each entry out into its own alert.
type ValidationErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}

// AppError is the application error type carried between layers.
type AppError struct {
	Code    string
	Message string
	Fields  []FieldError
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error codes used to map AppErrors to HTTP statuses.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeValidation   = "VALIDATION_ERROR"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeUpstream     = "UPSTREAM_ERROR"
	CodeInternal     = "INTERNAL_ERROR"
)

// NewNotFoundError reports a missing resource.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: CodeNotFound, Message: message}
}

// NewValidationError reports a single-message validation failure.
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// NewFieldValidationError reports a per-field validation failure list.
func NewFieldValidationError(fields []FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: "Validation failed",
		Fields:  fields,
	}
}

// NewUnauthorizedError reports a missing/invalid credential or an
// ownership mismatch.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NewUpstreamError reports a failed call to an external dependency.
func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Code: CodeUpstream, Message: message, Err: err}
}

// NewInternalError wraps an unexpected error. The wrapped cause is
// logged server-side, never leaked in the response body.
func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Server error", Err: err}
}

// RespondWithError writes a standardized error response.
// Validation failures carrying a field list render as {"errors": [...]}.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	if appErr, ok := err.(*AppError); ok {
		if len(appErr.Fields) > 0 {
			return c.Status(status).JSON(ValidationErrorsResponse{Errors: appErr.Fields})
		}
		return c.Status(status).JSON(ErrorResponse{
			Error: appErr.Message,
			Code:  appErr.Code,
		})
	}
	return c.Status(status).JSON(ErrorResponse{Error: err.Error()})
}

// StatusForError maps an AppError code to its HTTP status. Unknown
// errors are treated as internal.
func StatusForError(err error) int {
	appErr, ok := err.(*AppError)
	if !ok {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeValidation, CodeUpstream:
		return fiber.StatusBadRequest
	case CodeUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
