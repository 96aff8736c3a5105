package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes for the application's failure taxonomy.
const (
	CodeInvalidInput    = "INVALID_INPUT"
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "CONFLICT"
	CodeUpstreamFailure = "UPSTREAM_FAILURE"
)

// ErrorResponse is the single error envelope used by every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// AppError is a typed application error. Repository and auth components
// return these so the boundary can map each kind to a status code instead of
// guessing from a sentinel value.
type AppError struct {
	Code    string
	Message string
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

// NewInvalidInputError reports malformed or out-of-range request data.
func NewInvalidInputError(message string) *AppError {
	return &AppError{Code: CodeInvalidInput, Message: message}
}

// NewUnauthenticatedError reports a missing, invalid, or expired credential.
func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Code: CodeUnauthenticated, Message: message}
}

// NewForbiddenError reports a valid identity with insufficient ownership.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: CodeForbidden, Message: message}
}

// NewNotFoundError reports an absent entity.
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewConflictError reports a uniqueness violation, e.g. a duplicate login.
func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

// NewUpstreamError wraps a database or storage failure. The original error is
// kept for server-side logging and never swallowed.
func NewUpstreamError(err error) *AppError {
	return &AppError{
		Code:    CodeUpstreamFailure,
		Message: "Upstream failure",
		Err:     err,
	}
}

// StatusForError maps an error to the HTTP status code for its kind.
func StatusForError(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeInvalidInput:
		return fiber.StatusBadRequest
	case CodeUnauthenticated:
		return fiber.StatusUnauthorized
	case CodeForbidden:
		return fiber.StatusForbidden
	case CodeNotFound:
		return fiber.StatusNotFound
	case CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError writes the standardized error envelope, deriving the
// status code from the error kind. Internal detail is only attached for
// upstream failures so handler responses stay user-safe.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := StatusForError(err)

	var appErr *AppError
	if errors.As(err, &appErr) {
		resp := ErrorResponse{Error: appErr.Message, Code: appErr.Code}
		if appErr.Code == CodeUpstreamFailure {
			// Message stays generic; the full chain is logged server-side.
			resp.Error = "Internal server error"
		}
		return c.Status(status).JSON(resp)
	}

	return c.Status(status).JSON(ErrorResponse{Error: "Internal server error"})
}
