package gmaps

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic checks with errors.Is. The typed errors
// below carry the details; these exist so callers can branch on the kind of
// failure without digging into the concrete types.
var (
	// ErrCredentialRequired indicates that an API key is required but not provided.
	ErrCredentialRequired = errors.New("API key required")

	// ErrInvalidRequest indicates that request parameters failed validation
	// before any network call was made.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRequestFailed indicates that the API returned a non-success response.
	ErrRequestFailed = errors.New("request failed")

	// ErrWriteFailed indicates that writing a response to a destination path failed.
	ErrWriteFailed = errors.New("write failed")
)

// ConfigurationError is returned at construction time when no API key is
// available, either as an explicit argument or from the environment.
type ConfigurationError struct {
	// EnvVar is the environment variable that was consulted for the key.
	EnvVar string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not found: set it in the environment or local/.env", e.EnvVar)
}

// Is implements errors.Is support.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrCredentialRequired
}

// ValidationError is returned when request parameters are malformed. It is
// always surfaced before any network call happens.
type ValidationError struct {
	// Err is the underlying validation failure, usually a
	// validation.Errors map keyed by parameter name.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request parameters: %s", e.Err)
}

// Unwrap implements errors.Unwrap support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

// APIError is returned when the API responds with a non-2xx status. It
// carries the status code and the raw response body; there is no automatic
// retry, the caller decides what to do with it.
type APIError struct {
	// Endpoint is the path of the endpoint that failed.
	Endpoint string

	// StatusCode is the HTTP status code of the response.
	StatusCode int

	// Body is the raw response body, typically a short error document.
	Body []byte
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: unexpected status code: %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Is implements errors.Is support.
func (e *APIError) Is(target error) bool {
	return target == ErrRequestFailed
}

// WriteError is returned when persisting a response body to a destination
// path fails. The network call has already succeeded at that point, so the
// fetched bytes are still returned to the caller alongside this error.
type WriteError struct {
	// Path is the destination path that could not be written.
	Path string

	// Err is the underlying filesystem error.
	Err error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %s", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap support.
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *WriteError) Is(target error) bool {
	return target == ErrWriteFailed
}
