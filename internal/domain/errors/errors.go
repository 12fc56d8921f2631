package errors

import (
	"fmt"
	"net/http"

	"adoptions/internal/errors"
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

// WithMessagef replaces the user-facing message, keeping code and status.
// Used where the message must carry request data, e.g. the rejected status
// value of a PATCH.
func (e *BaseError) WithMessagef(format string, args ...any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   fmt.Sprintf(format, args...),
		details:   e.details,
	}
}

// Predefined error types
var (
	// Adoption-related errors
	ErrAdoptionNotFound = NewBaseError(
		http.StatusNotFound,
		"ADOPTION_NOT_FOUND",
		"Unknown adoptionId provided",
		"",
	)

	ErrInvalidAdoptionID = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_ADOPTION_ID",
		"Invalid adoptionId provided",
		"",
	)

	ErrInvalidFilterID = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_FILTER_ID",
		"Invalid identifier filter provided",
		"",
	)

	ErrUnsupportedAdoptionStatus = NewBaseError(
		http.StatusUnprocessableEntity,
		"UNSUPPORTED_ADOPTION_STATUS",
		"Unsupported adoption status",
		"",
	)

	ErrInvalidAdoptionStatus = NewBaseError(
		http.StatusUnprocessableEntity,
		"INVALID_ADOPTION_STATUS",
		"Invalid adoption status",
		"",
	)

	ErrCompletedAdoptionDeletion = NewBaseError(
		http.StatusUnprocessableEntity,
		"COMPLETED_ADOPTION_DELETION",
		"Cannot delete a completed adoption. Please cancel or return it first.",
		"",
	)

	ErrAdoptionLimitExceeded = NewBaseError(
		http.StatusForbidden,
		"ADOPTION_LIMIT_EXCEEDED",
		"Customer has reached the maximum number of completed adoptions",
		"",
	)

	// Dependent-service lookup errors
	ErrCustomerNotFound = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_FOUND",
		"Unknown customerId provided",
		"",
	)

	ErrCreatureNotFound = NewBaseError(
		http.StatusNotFound,
		"CREATURE_NOT_FOUND",
		"Unknown creatureId provided",
		"",
	)

	ErrCreatureNotAdoptable = NewBaseError(
		http.StatusUnprocessableEntity,
		"CREATURE_NOT_ADOPTABLE",
		"Creature is not available for adoption",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// RemoteNotFound builds the NotFound failure for a remote 404, carrying the
// message parsed from the dependent service's error body.
func RemoteNotFound(message string) *BaseError {
	return NewBaseError(http.StatusNotFound, "RESOURCE_NOT_FOUND", message, "")
}

// RemoteInvalidInput builds the InvalidInput failure for a remote 422,
// carrying the message parsed from the dependent service's error body.
func RemoteInvalidInput(message string) *BaseError {
	return NewBaseError(http.StatusUnprocessableEntity, "INVALID_INPUT", message, "")
}

// RemoteCallError represents an untranslated dependency failure: any HTTP
// status not covered by the 404/422 mapping, or a transport error. The
// original status and body are preserved verbatim so operators can tell a
// business failure from an infrastructure problem.
type RemoteCallError struct {
	service string
	status  int
	body    string
	err     error
}

// NewRemoteCallError creates an error for an unexpected dependency response.
func NewRemoteCallError(service string, status int, body string, err error) *RemoteCallError {
	return &RemoteCallError{
		service: service,
		status:  status,
		body:    body,
		err:     err,
	}
}

// Error implements the error interface
func (e *RemoteCallError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s service call failed: %v", e.service, e.err)
	}

	return fmt.Sprintf("%s service returned unexpected HTTP %d", e.service, e.status)
}

// Unwrap returns the underlying transport error, if any.
func (e *RemoteCallError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code surfaced at this service's boundary
func (e *RemoteCallError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *RemoteCallError) ErrorCode() string {
	return "REMOTE_SERVICE_ERROR"
}

// Message returns the user-friendly error message
func (e *RemoteCallError) Message() string {
	return e.Error()
}

// Details returns the verbatim remote response body
func (e *RemoteCallError) Details() string {
	return e.body
}

// RemoteStatus returns the original HTTP status of the dependency response,
// zero for transport failures.
func (e *RemoteCallError) RemoteStatus() int {
	return e.status
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
