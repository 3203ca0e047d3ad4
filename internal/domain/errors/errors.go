package errors

import (
	"net/http"

	"github.com/pkg/errors"
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
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
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

// Is matches any BaseError carrying the same error code, so errors.Is works on WithDetails copies
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Routing errors
	ErrRouteNotHandled = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_HANDLED",
		"No route could be computed between these points",
		"",
	)

	ErrExternalRouterUnavailable = NewBaseError(
		http.StatusBadGateway,
		"EXTERNAL_ROUTER_UNAVAILABLE",
		"Street routing service is unavailable",
		"",
	)

	ErrRouteCanceled = NewBaseError(
		http.StatusGatewayTimeout,
		"ROUTE_CANCELED",
		"Route computation was canceled or timed out",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Coordinates must be a valid longitude and latitude",
		"",
	)

	ErrInvalidTravelMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRAVEL_MODE",
		"Travel mode must be walk or bike",
		"",
	)

	// Graph errors
	ErrNodeNotFound = NewBaseError(
		http.StatusNotFound,
		"NODE_NOT_FOUND",
		"No campus node within the search radius",
		"",
	)

	// General errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Request validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// ExternalRouterError represents a failed call to the street routing service, implementing the AppError interface
type ExternalRouterError struct {
	err     error
	details string
}

// NewExternalRouterError wraps a router failure for the API surface
func NewExternalRouterError(err error, details string) AppError {
	return &ExternalRouterError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *ExternalRouterError) Error() string {
	return errors.Wrap(e.err, "external routing failed").Error()
}

// Unwrap exposes the router failure
func (e *ExternalRouterError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *ExternalRouterError) HTTPCode() int {
	return ErrExternalRouterUnavailable.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ExternalRouterError) ErrorCode() string {
	return ErrExternalRouterUnavailable.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ExternalRouterError) Message() string {
	return ErrExternalRouterUnavailable.Message()
}

// Details returns detailed error information
func (e *ExternalRouterError) Details() string {
	return e.details
}
