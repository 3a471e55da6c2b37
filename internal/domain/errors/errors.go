package errors

import (
	"fmt"
	"net/http"

	"gsync/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
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

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Google account connection errors
	ErrNoValidToken = NewBaseError(
		http.StatusPreconditionFailed,
		"NO_VALID_TOKEN",
		"Google account is not connected or its authorization has lapsed",
		"",
	)

	ErrNoRefreshToken = NewBaseError(
		http.StatusPreconditionFailed,
		"NO_REFRESH_TOKEN",
		"Google account must be reconnected to grant offline access",
		"",
	)

	ErrOAuthExchange = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_EXCHANGE_FAILED",
		"Authorization code could not be exchanged",
		"",
	)

	ErrOAuthStateInvalid = NewBaseError(
		http.StatusBadRequest,
		"OAUTH_STATE_INVALID",
		"Invalid or expired OAuth state",
		"",
	)

	// Sync-related errors
	ErrSyncAlreadyRunning = NewBaseError(
		http.StatusConflict,
		"SYNC_ALREADY_RUNNING",
		"A sync of this type is already running for the user",
		"",
	)

	ErrInvalidSyncType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SYNC_TYPE",
		"Sync type must be email or calendar",
		"",
	)

	ErrInvalidPeriodHint = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PERIOD_HINT",
		"Period hint does not identify a sync period",
		"",
	)

	ErrInvalidPeriodTransition = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_PERIOD_TRANSITION",
		"Sync period status cannot move backwards",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// TokenEndpointError is returned when the OAuth token endpoint cannot be reached
// or answers with a non-2xx status. Status is zero for transport failures.
type TokenEndpointError struct {
	Status      int
	Code        string
	Description string
	Err         error
}

func (e *TokenEndpointError) Error() string {
	switch {
	case e.Status == 0:
		return fmt.Sprintf("token endpoint unreachable: %v", e.Err)
	case e.Code != "":
		return fmt.Sprintf("token endpoint returned %d (%s)", e.Status, e.Code)
	default:
		return fmt.Sprintf("token endpoint returned %d", e.Status)
	}
}

func (e *TokenEndpointError) Unwrap() error {
	return e.Err
}

func (e *TokenEndpointError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *TokenEndpointError) ErrorCode() string {
	return "TOKEN_ENDPOINT_FAILED"
}

func (e *TokenEndpointError) Message() string {
	return "Google token endpoint rejected the request"
}

func (e *TokenEndpointError) Details() string {
	return e.Description
}

// HTTPError is a non-recoverable response from a provider data API.
type HTTPError struct {
	Status int
	URL    string
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("provider request %s failed with status %d", e.URL, e.Status)
}

func (e *HTTPError) HTTPCode() int {
	return http.StatusBadGateway
}

func (e *HTTPError) ErrorCode() string {
	return "UPSTREAM_HTTP_ERROR"
}

func (e *HTTPError) Message() string {
	return "Google API request failed"
}

func (e *HTTPError) Details() string {
	return e.Body
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
