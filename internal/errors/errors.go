// Package errors provides centralized error definitions for the Concierge
// client. It defines the three failure categories that can come out of a
// planning request — transport failures, service-reported failures, and
// locally-detected precondition failures — plus helpers for turning any of
// them into a single user-visible notification line.
//
// Creating errors:
//
//	// Service rejected the request with a detail payload
//	err := errors.NewServiceError(422, "budget too low")
//
//	// The request never produced a usable response
//	err := errors.NewTransportError("plan request failed", cause)
//
//	// Refine attempted before any plan exists
//	err := errors.NewPreconditionError("no plan to refine", errors.ErrNoPlanToRefine)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrNoPlanToRefine) { ... }
//
//	var svcErr *errors.ServiceError
//	if errors.As(err, &svcErr) { ... }
//
// Displaying errors:
//
//	notify(errors.UserMessage(err))
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for locally-detected failures. These never reach the
// network; the controller raises them before issuing a request.
var (
	// ErrNoPlanToRefine indicates a refinement was requested with no plan present.
	ErrNoPlanToRefine = New("no plan to refine")
	// ErrRequestInFlight indicates another create/refine request is outstanding.
	ErrRequestInFlight = New("a request is already in flight")
	// ErrEmptyRefinement indicates the refinement text was blank.
	ErrEmptyRefinement = New("refinement text is empty")
)

// GenericFailureMessage is shown when an error carries no user-facing detail.
const GenericFailureMessage = "request failed, please try again"

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsUserFacing returns whether the error is safe to show users as-is.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// TransportError represents a network failure or a non-2xx response without
// a usable body. Its message is never shown verbatim to the user; UserMessage
// substitutes the generic fallback.
//
// Example:
//
//	err := errors.NewTransportError("plan request failed", io.ErrUnexpectedEOF)
type TransportError struct {
	baseError
	// StatusCode is the HTTP status when a response was received, 0 otherwise.
	StatusCode int
}

// NewTransportError creates a new TransportError.
func NewTransportError(message string, cause error) *TransportError {
	return &TransportError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: false,
		},
	}
}

// WithStatusCode records the HTTP status that accompanied the failure.
func (e *TransportError) WithStatusCode(code int) *TransportError {
	e.StatusCode = code
	return e
}

// Error returns the formatted error message.
func (e *TransportError) Error() string {
	prefix := "transport error"
	if e.StatusCode > 0 {
		prefix = fmt.Sprintf("transport error [status=%d]", e.StatusCode)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *TransportError) Is(target error) bool {
	if _, ok := target.(*TransportError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ServiceError represents a non-2xx response whose body carried a detail
// string from the planning service. The detail is surfaced to the user
// verbatim.
//
// Example:
//
//	err := errors.NewServiceError(422, "budget too low")
type ServiceError struct {
	baseError
	StatusCode int
	Detail     string
}

// NewServiceError creates a new ServiceError.
func NewServiceError(statusCode int, detail string) *ServiceError {
	return &ServiceError{
		baseError: baseError{
			message:    detail,
			userFacing: true,
		},
		StatusCode: statusCode,
		Detail:     detail,
	}
}

// WithCause adds a cause to the error.
func (e *ServiceError) WithCause(cause error) *ServiceError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("service error [status=%d]: %s", e.StatusCode, e.Detail)
}

// Is checks if this error matches the target.
func (e *ServiceError) Is(target error) bool {
	if _, ok := target.(*ServiceError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// PreconditionError represents an operation rejected before any network
// activity, such as refining when no plan exists.
//
// Example:
//
//	err := errors.NewPreconditionError("no plan to refine", errors.ErrNoPlanToRefine)
type PreconditionError struct {
	baseError
}

// NewPreconditionError creates a new PreconditionError.
func NewPreconditionError(message string, cause error) *PreconditionError {
	return &PreconditionError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: true,
		},
	}
}

// Error returns the formatted error message.
func (e *PreconditionError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("precondition error: %s: %v", e.message, e.cause)
	}
	return fmt.Sprintf("precondition error: %s", e.message)
}

// Is checks if this error matches the target.
func (e *PreconditionError) Is(target error) bool {
	if _, ok := target.(*PreconditionError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// IsUserFacing returns true if the error message is safe to display to end
// users. ServiceError details and precondition messages are user-facing;
// transport internals are not.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var svcErr *ServiceError
	if As(err, &svcErr) {
		return true
	}
	var preErr *PreconditionError
	if As(err, &preErr) {
		return true
	}
	var transErr *TransportError
	if As(err, &transErr) {
		return transErr.IsUserFacing()
	}
	return false
}

// UserMessage converts any error into the single notification line shown to
// the user. ServiceError details pass through verbatim; precondition messages
// describe what the user must do first; everything else collapses into the
// generic fallback.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var svcErr *ServiceError
	if As(err, &svcErr) && svcErr.Detail != "" {
		return svcErr.Detail
	}

	var preErr *PreconditionError
	if As(err, &preErr) {
		if cause := preErr.Unwrap(); cause != nil {
			return cause.Error()
		}
		return preErr.message
	}

	switch {
	case Is(err, ErrNoPlanToRefine), Is(err, ErrRequestInFlight), Is(err, ErrEmptyRefinement):
		return err.Error()
	}

	return GenericFailureMessage
}

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to decode plan")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
