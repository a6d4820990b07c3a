package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrAuthenticationFailed is returned for any login failure. The message never
	// reveals whether the email exists.
	ErrAuthenticationFailed = errors.New("invalid email or password")
	// ErrUnauthenticated is returned when a protected operation is called without a session.
	ErrUnauthenticated = errors.New("Please login to access this page")
	// ErrSessionExpired is returned when the session references a user that no longer exists.
	ErrSessionExpired = errors.New("Session expired. Please login again.")
	// ErrForbidden is returned when the caller's role or ownership does not permit the operation.
	ErrForbidden = errors.New("You do not have permission to access this page")
	// ErrPersistence wraps any failure of the data store.
	ErrPersistence = errors.New("persistence failure")
)

// Redirect targets attached to access failures.
const (
	RedirectLogin     = "/login"
	RedirectDashboard = "/dashboard"
)

// ValidationError reports missing or malformed input fields.
type ValidationError struct {
	Fields  map[string]string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// NotFoundError is returned when a referenced record does not exist.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	if e.ID == 0 {
		return e.Resource + " not found"
	}
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// NewNotFound creates a NotFoundError.
func NewNotFound(resource string, id uint) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// Persistence wraps a store failure so callers can match ErrPersistence
// while the cause stays available for logging.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrPersistence, err)
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error    string            `json:"error"`
	Code     string            `json:"code"`
	Redirect string            `json:"redirect,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Redirect   string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

func (e *HTTPError) withRedirect(to string) *HTTPError {
	e.Redirect = to
	return e
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:    e.Message,
		Code:     e.Code,
		Redirect: e.Redirect,
		Fields:   e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var validationErr *ValidationError
	var notFoundErr *NotFoundError

	switch {
	case errors.As(err, &validationErr):
		httpErr := NewHTTPError(http.StatusBadRequest, validationErr.Error(), "VALIDATION_ERROR")
		httpErr.Fields = validationErr.Fields
		return httpErr
	case errors.As(err, &notFoundErr):
		return NewHTTPError(http.StatusNotFound, notFoundErr.Error(), "NOT_FOUND")
	case errors.Is(err, ErrDuplicateEmail):
		return NewHTTPError(http.StatusConflict, ErrDuplicateEmail.Error(), "DUPLICATE_EMAIL")
	case errors.Is(err, ErrAuthenticationFailed):
		return NewHTTPError(http.StatusUnauthorized, ErrAuthenticationFailed.Error(), "INVALID_CREDENTIALS")
	case errors.Is(err, ErrUnauthenticated):
		return NewHTTPError(http.StatusUnauthorized, ErrUnauthenticated.Error(), "UNAUTHENTICATED").
			withRedirect(RedirectLogin)
	case errors.Is(err, ErrSessionExpired):
		return NewHTTPError(http.StatusUnauthorized, ErrSessionExpired.Error(), "SESSION_EXPIRED").
			withRedirect(RedirectLogin)
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, ErrForbidden.Error(), "FORBIDDEN").
			withRedirect(RedirectDashboard)
	case errors.Is(err, ErrPersistence):
		return NewHTTPError(http.StatusInternalServerError, "An error occurred. Please try again.", "PERSISTENCE_ERROR")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
