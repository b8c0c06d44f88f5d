// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types and error handling utilities for hioload-poll.

package api

import "fmt"

// Common errors surfaced by registries. Adapters define no error kinds of
// their own; every failure they return originates in the registry call and
// is propagated unmodified.
var (
	ErrAlreadyRegistered = fmt.Errorf("handle already registered")
	ErrNotRegistered     = fmt.Errorf("handle not registered")
	ErrInvalidHandle     = fmt.Errorf("invalid handle")
	ErrInvalidInterest   = fmt.Errorf("empty interest set")
	ErrNotSupported      = fmt.Errorf("operation not supported")
)

// ErrorCode represents specific registration failure conditions.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeAlreadyRegistered
	ErrCodeNotRegistered
	ErrCodeInvalidHandle
	ErrCodeInvalidInterest
	ErrCodeInternal
)

// Error represents a structured registration error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code back to its sentinel so callers can use errors.Is.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeAlreadyRegistered:
		return ErrAlreadyRegistered
	case ErrCodeNotRegistered:
		return ErrNotRegistered
	case ErrCodeInvalidHandle:
		return ErrInvalidHandle
	case ErrCodeInvalidInterest:
		return ErrInvalidInterest
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}
