package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	// Validation errors
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeMissingField  = "MISSING_FIELD"
	ErrCodeInvalidFormat = "INVALID_FORMAT"

	// Payload errors
	ErrCodeUnsupportedPayload = "UNSUPPORTED_PAYLOAD"

	// Authentication errors
	ErrCodeUnauthorized = "UNAUTHORIZED"

	// Service errors
	ErrCodePersistenceFailed  = "PERSISTENCE_FAILED"
	ErrCodeNotificationFailed = "NOTIFICATION_FAILED"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// ValidationError is a user-correctable input error. Its message is safe to
// show to the end user and is returned with a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// PersistenceError wraps a storage-layer failure. Returned as a generic 500;
// the wrapped cause goes to the log, never to the user.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NewPersistenceError creates a PersistenceError
func NewPersistenceError(err error) *PersistenceError {
	return &PersistenceError{Err: err}
}

// NotificationError wraps a chat-API failure. The task may already be
// persisted when this is raised; it is never grounds for a rollback.
type NotificationError struct {
	Err error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notification failed: %v", e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a NotificationError
func NewNotificationError(err error) *NotificationError {
	return &NotificationError{Err: err}
}

// ErrUnsupportedPayloadType is returned when an interaction payload's type is
// not one this service handles.
var ErrUnsupportedPayloadType = errors.New("unsupported payload type")

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotification reports whether err is (or wraps) a NotificationError.
func IsNotification(err error) bool {
	var ne *NotificationError
	return errors.As(err, &ne)
}

// APIError represents a standardized JSON error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends a JSON error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// BadRequest sends a 400 JSON response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}

// UnsupportedPayload sends a 400 JSON response for unrecognized payload types
func UnsupportedPayload(c *gin.Context) {
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeUnsupportedPayload, "Unsupported payload type"))
}

// Unauthorized sends a 401 JSON response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, message))
}

// InternalError sends a 500 JSON response without internal detail
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}
