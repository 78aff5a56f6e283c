package apperr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Machine-readable error codes surfaced to clients.
const (
	CodeSessionNotFound   = "SESSION_NOT_FOUND"
	CodeInvalidSelection  = "INVALID_SELECTION"
	CodeAtRootLevel       = "AT_ROOT_LEVEL"
	CodeStateInconsistent = "STATE_INCONSISTENT"
	CodeValidation        = "VALIDATION_ERROR"
	CodeInternal          = "INTERNAL_ERROR"

	CodeAIUnavailable     = "AI_UNAVAILABLE"
	CodeAIAuthError       = "AI_AUTH_ERROR"
	CodeAIRateLimited     = "AI_RATE_LIMITED"
	CodeAIConnectionError = "AI_CONNECTION_ERROR"
	CodeAIBadResponse     = "AI_BAD_RESPONSE"
	CodeAIAPIError        = "AI_API_ERROR"
)

// Error carries a code, an HTTP status and a human-readable message across
// the service boundary; the error-handler middleware maps it once into the
// response envelope.
type Error struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func Wrap(code string, status int, message string, err error) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

func SessionNotFound(sessionID string) *Error {
	return New(CodeSessionNotFound, fiber.StatusNotFound,
		fmt.Sprintf("session '%s' not found", sessionID))
}

func InvalidSelection(selection string) *Error {
	return New(CodeInvalidSelection, fiber.StatusBadRequest,
		fmt.Sprintf("selection '%s' is not in the current menu", selection))
}

func AtRootLevel() *Error {
	return New(CodeAtRootLevel, fiber.StatusBadRequest,
		"already at the main menu, cannot go back further")
}

func StateInconsistent(message string) *Error {
	return New(CodeStateInconsistent, fiber.StatusInternalServerError, message)
}

func Validation(message string) *Error {
	return New(CodeValidation, fiber.StatusBadRequest, message)
}
