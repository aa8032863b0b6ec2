package apperrors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies a machine-readable error class.
type ErrorCode string

// AppError is the application-wide error type. HTTPCode and the wrapped
// cause are never serialized to clients.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Domain   string      `json:"domain"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s:%s] %s (%v)", e.Domain, e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Domain, e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError without an underlying cause.
func New(code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying cause to a new AppError.
func Wrap(err error, code ErrorCode, domain, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Domain:   domain,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	e.Details = details
	return e
}

// MarshalJSON keeps the wire shape free of the cause and HTTP code.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type alias struct {
		Code    ErrorCode   `json:"code"`
		Domain  string      `json:"domain"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}
	return json.Marshal(&alias{
		Code:    e.Code,
		Domain:  e.Domain,
		Message: e.Message,
		Details: e.Details,
	})
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// --- Generic helpers ---

// InternalError wraps an unexpected system error.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)
}

// StorageError wraps a blob read/write/delete failure. The underlying error
// (which may contain physical paths) stays server-side.
func StorageError(err error) *AppError {
	return Wrap(err, CodeStorageError, "storage", "File storage operation failed", http.StatusInternalServerError)
}

// ValidationError creates a validation failure with field details.
func ValidationError(details interface{}) *AppError {
	return New(CodeValidationFailed, "validation", "Validation failed", http.StatusBadRequest).WithDetails(details)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, "auth", message, http.StatusUnauthorized)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, "request", message, http.StatusBadRequest)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeNotFound, "resource", message, http.StatusNotFound)
}

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a uniform 404. Used for both "missing" and "owned by someone else"
// so the two cases are indistinguishable to the caller.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a unique-constraint violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// --- Predefined errors ---

var (
	// Authentication
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid username or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)

	// Users
	ErrUsernameTaken = New(CodeAlreadyExists, "user", "Username already taken", http.StatusBadRequest)
	ErrEmailTaken    = New(CodeAlreadyExists, "user", "Email already registered", http.StatusBadRequest)

	// Files
	ErrFileEmpty = New(CodeValidationFailed, "file", "File is empty", http.StatusBadRequest)
	ErrFileTooLarge = New(
		CodeLimitExceeded,
		"file",
		"File size exceeds the allowed limit",
		http.StatusRequestEntityTooLarge,
	)
	ErrInvalidFileName = New(
		CodeValidationFailed,
		"file",
		"File name contains an invalid path sequence",
		http.StatusBadRequest,
	)
	ErrInvalidFileType = New(
		CodeValidationFailed,
		"file",
		"The provided file type is not allowed",
		http.StatusUnsupportedMediaType,
	)

	// Note links
	ErrLinkExists = New(CodeAlreadyExists, "note_link", "Link already exists", http.StatusConflict)
)
