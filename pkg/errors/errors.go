// Package errors provides the error taxonomy for the rmbrowse data layer.
// Every failure that crosses a package boundary is one of a small set of
// typed errors so callers can branch on the origin of a failure with
// errors.Is / errors.As instead of matching strings.
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Sentinel errors matched by the typed errors below.
var (
	// ErrTransport indicates that no HTTP response was received.
	ErrTransport = errors.New("transport failure")

	// ErrHTTPStatus indicates a response with a status outside 2xx.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrDecode indicates a response body that does not match the expected schema.
	ErrDecode = errors.New("decode failure")

	// ErrNotFound indicates that the API has nothing at the requested path.
	ErrNotFound = errors.New("not found")

	// ErrRateLimited indicates that the API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")

	// ErrUnavailable indicates a server side failure (5xx).
	ErrUnavailable = errors.New("service unavailable")

	// ErrTimeout indicates that an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled
	ErrCanceled = errors.New("operation canceled")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")
)

// ErrorKind tags the origin of a failure.
type ErrorKind string

// Error kinds returned by Kind.
const (
	KindTransport  ErrorKind = "transport"
	KindHTTPStatus ErrorKind = "http_status"
	KindDecode     ErrorKind = "decode"
	KindValidation ErrorKind = "validation"
	KindUnknown    ErrorKind = "unknown"
)

// TransportError means the request never produced a response:
// connection refused, DNS failure, timeout or cancellation.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TransportError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return true
	case ErrTimeout:
		return errors.Is(e.Err, context.DeadlineExceeded) || isNetTimeout(e.Err)
	case ErrCanceled:
		return errors.Is(e.Err, context.Canceled)
	}
	return false
}

// NewTransportError creates a new TransportError
func NewTransportError(method, url string, err error) *TransportError {
	return &TransportError{Method: method, URL: url, Err: err}
}

// HTTPStatusError means a response arrived with a non-2xx status.
// Message carries the API's own error text when the body had one.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *HTTPStatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d from %s: %s", e.StatusCode, e.URL, e.Message)
	}
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Is implements errors.Is support
func (e *HTTPStatusError) Is(target error) bool {
	switch target {
	case ErrHTTPStatus:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrRateLimited:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrUnavailable:
		return e.StatusCode >= 500
	}
	return false
}

// NewHTTPStatusError creates a new HTTPStatusError
func NewHTTPStatusError(url string, statusCode int, message string) *HTTPStatusError {
	return &HTTPStatusError{URL: url, StatusCode: statusCode, Message: message}
}

// DecodeError means the body could not be mapped onto the expected type,
// including closed enums receiving an unknown value.
type DecodeError struct {
	Resource string
	Err      error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("decoding %s: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("decoding response: %v", e.Err)
}

// Unwrap implements errors.Unwrap
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewDecodeError creates a new DecodeError
func NewDecodeError(resource string, err error) *DecodeError {
	return &DecodeError{Resource: resource, Err: err}
}

// ValidationError represents caller input rejected before any request is made.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Kind classifies err by origin. Wrapped errors are inspected.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTransport):
		return KindTransport
	case errors.Is(err, ErrHTTPStatus):
		return KindHTTPStatus
	case errors.Is(err, ErrDecode):
		return KindDecode
	case errors.Is(err, ErrInvalidInput):
		return KindValidation
	default:
		return KindUnknown
	}
}

// Helper functions for error checking

// IsTransport checks if an error is a transport error
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsHTTPStatus checks if an error is a non-2xx response
func IsHTTPStatus(err error) bool {
	return errors.Is(err, ErrHTTPStatus)
}

// IsDecode checks if an error is a decode error
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsRateLimited checks if an error is a rate limit error
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsTimeout checks if an error is a timeout error
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsCanceled checks if an error is a cancellation error
func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}

// Helper wrapping functions for common patterns

// WrapTransport wraps an error as a TransportError
func WrapTransport(method, url string, err error) error {
	if err == nil {
		return nil
	}
	return NewTransportError(method, url, err)
}

// WrapDecode wraps an error as a DecodeError
func WrapDecode(resource string, err error) error {
	if err == nil {
		return nil
	}
	return NewDecodeError(resource, err)
}

func isNetTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
