// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeContractViolation indicates a provider was registered against a
	// capability without implementing every required operation
	TypeContractViolation Type = "CONTRACT_VIOLATION"

	// TypeDuplicateProvider indicates a provider name is already taken
	// for a capability
	TypeDuplicateProvider Type = "DUPLICATE_PROVIDER"

	// TypeUnrecognizedVariant indicates a by-name lookup received an
	// unknown provider name
	TypeUnrecognizedVariant Type = "UNRECOGNIZED_VARIANT"

	// TypeUnsupportedOperation indicates a provider was asked for an
	// operation outside its declared capability
	TypeUnsupportedOperation Type = "UNSUPPORTED_OPERATION"

	// TypeNotFound indicates a capability or resource not found error
	TypeNotFound Type = "NOT_FOUND"

	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// ContractViolation creates a contract violation error
func ContractViolation(message string) *Error {
	return New(TypeContractViolation, message)
}

// UnrecognizedVariant creates an unknown-provider-name error
func UnrecognizedVariant(message string) *Error {
	return New(TypeUnrecognizedVariant, message)
}

// UnsupportedOperation creates an unsupported-operation error
func UnsupportedOperation(message string) *Error {
	return New(TypeUnsupportedOperation, message)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(TypeNotFound, message)
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}
