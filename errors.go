package aubatch

import (
	"errors"
	"fmt"
)

// Error represents a structured aubatch error with operation and job context.
type Error struct {
	Op    string    // Operation that failed (e.g., "Submit", "Admit", "Dispatch")
	JobID string    // Job or process identifier (empty if not applicable)
	Code  ErrorCode // High-level error category
	Msg   string    // Human-readable message
	Inner error     // Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Op))
	}

	if e.JobID != "" {
		parts = append(parts, fmt.Sprintf("job=%s", e.JobID))
	}

	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}

	if len(parts) > 0 {
		return fmt.Sprintf("aubatch: %s (%s)", msg, parts[0])
	}

	return fmt.Sprintf("aubatch: %s", msg)
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Inner
}

// Is provides errors.Is support by comparing error codes.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if te, ok := target.(*Error); ok {
		return e.Code == te.Code
	}

	return false
}

// ErrorCode represents high-level error categories.
type ErrorCode string

const (
	// ErrCodeUserInput marks malformed or out-of-range REPL/CLI input.
	ErrCodeUserInput ErrorCode = "invalid user input"

	// ErrCodeResourceBusy marks transient resource pressure: the job ring
	// is full or a memory manager could not admit a process right now.
	ErrCodeResourceBusy ErrorCode = "resource busy"

	// ErrCodeInvariantViolation marks a fatal internal invariant break
	// (lost pages, corrupt free list). Callers at the top level should
	// report and exit rather than continue running against corrupt state.
	ErrCodeInvariantViolation ErrorCode = "invariant violation"

	// ErrCodeStartup marks failures bringing up a scheduler or manager.
	ErrCodeStartup ErrorCode = "startup failure"
)

// NewError creates a new structured error.
func NewError(op string, code ErrorCode, msg string) *Error {
	return &Error{
		Op:   op,
		Code: code,
		Msg:  msg,
	}
}

// NewJobError creates a new job-specific error.
func NewJobError(op string, jobID string, code ErrorCode, msg string) *Error {
	return &Error{
		Op:    op,
		JobID: jobID,
		Code:  code,
		Msg:   msg,
	}
}

// WrapError wraps an existing error with aubatch context.
func WrapError(op string, inner error) *Error {
	if inner == nil {
		return nil
	}

	if ae, ok := inner.(*Error); ok {
		return &Error{
			Op:    op,
			JobID: ae.JobID,
			Code:  ae.Code,
			Msg:   ae.Msg,
			Inner: ae.Inner,
		}
	}

	return &Error{
		Op:    op,
		Code:  ErrCodeUserInput,
		Msg:   inner.Error(),
		Inner: inner,
	}
}

// IsCode checks if an error matches a specific error code.
func IsCode(err error, code ErrorCode) bool {
	var aErr *Error
	if errors.As(err, &aErr) {
		return aErr.Code == code
	}
	return false
}
