// Package dperr provides the error taxonomy shared by the search engine and
// its CLI drivers.
//
// Errors carry a machine-readable Code alongside a human message and an
// optional wrapped cause, so a driver can distinguish "the instance file is
// malformed" (fatal) from "the time budget expired" (not fatal, surface the
// incumbent) without string-matching messages.
package dperr

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

const (
	// InstanceParse marks malformed problem-instance input. Raised by a
	// parser, never by the engine. Fatal to the run.
	InstanceParse Code = "INSTANCE_PARSE"

	// CapabilityInfeasible marks a problem that admits no base case
	// reachable from the target. Not an error condition for the driver:
	// the search surfaces is_infeasible=true, cost=None, and exits 0.
	CapabilityInfeasible Code = "CAPABILITY_INFEASIBLE"

	// BudgetExpired marks a wall-clock budget expiry. The current
	// incumbent (possibly none) is returned with is_optimal=false.
	BudgetExpired Code = "BUDGET_EXPIRED"

	// InvariantViolation marks a programming error in the supplied
	// capability (non-monotone combinator, a dominance compare that
	// returns Equal for states with different g, a negative edge weight
	// fed to A*). Fail fast with a diagnostic; never retried.
	InvariantViolation Code = "INVARIANT_VIOLATION"

	// HistoryIO marks a failure writing the solution history sink. The
	// driver aborts with a non-zero exit after flushing what it can.
	HistoryIO Code = "HISTORY_IO"
)

// Error is the concrete error type used across the engine and its drivers.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// New builds an *Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that carries cause as its wrapped error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether err is an *Error (at any wrapping depth) with the
// given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}
