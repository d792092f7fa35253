package errors

import (
	stdErrors "errors"
	"fmt"
)

// NetworkError represents a failed request: the transport rejected it or the
// server answered with a non-success status.
type NetworkError struct {
	URL        string
	StatusCode int
	Err        error
}

// NewNetworkError constructs a NetworkError for a transport failure.
func NewNetworkError(url string, err error) error {
	return &NetworkError{URL: url, Err: err}
}

// NewStatusError constructs a NetworkError for a non-success HTTP status.
func NewStatusError(url string, status int) error {
	return &NetworkError{URL: url, StatusCode: status}
}

func (e *NetworkError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("network error: %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("network error: %s: %v", e.URL, e.Err)
}

// Unwrap exposes the underlying error.
func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a response body that could not be decoded.
type ParseError struct {
	URL     string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(url string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{URL: url, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %s", e.URL, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsNetwork reports whether err wraps a NetworkError.
func IsNetwork(err error) bool {
	var target *NetworkError
	return stdErrors.As(err, &target)
}

// IsParse reports whether err wraps a ParseError.
func IsParse(err error) bool {
	var target *ParseError
	return stdErrors.As(err, &target)
}
