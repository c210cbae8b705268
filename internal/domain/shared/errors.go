package shared

import "errors"

// DomainError represents a domain-level error with a machine-readable code
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches any DomainError carrying the same code
func (e *DomainError) Is(target error) bool {
	var de *DomainError
	if !errors.As(target, &de) {
		return false
	}
	return e.Code == de.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Wrap returns a copy of e with the given message and cause. The code is kept,
// so errors.Is(result, e) still holds.
func (e *DomainError) Wrap(message string, cause error) *DomainError {
	return &DomainError{Code: e.Code, Message: message, Err: cause}
}

// Common domain errors
var (
	ErrInvalidInput     = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrValidationFormat = NewDomainError("VALIDATION_FORMAT", "Invalid value format")
	ErrNotFound         = NewDomainError("NOT_FOUND", "Resource not found")
)

// IsClientError reports whether err was caused by the caller's input
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrValidationFormat) ||
		errors.Is(err, ErrNotFound)
}
