package ecc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error conditions reported by the field and curve packages.
// Every error returned by those packages unwraps to exactly one of these.
var (
	// ErrOutOfRange is returned when a field value is not in [0, p).
	ErrOutOfRange = errors.New("ecc: value out of field range")

	// ErrNotPrime is returned when a field modulus fails the primality check.
	ErrNotPrime = errors.New("ecc: modulus is not prime")

	// ErrFieldMismatch is returned when operands belong to different fields.
	ErrFieldMismatch = errors.New("ecc: operands from different fields")

	// ErrDivisionByZero is returned when dividing by (or inverting) zero.
	ErrDivisionByZero = errors.New("ecc: division by zero")

	// ErrNotOnCurve is returned when coordinates fail the curve equation.
	ErrNotOnCurve = errors.New("ecc: point is not on the curve")

	// ErrCurveMismatch is returned when points belong to different curves.
	ErrCurveMismatch = errors.New("ecc: points on different curves")

	// ErrInvariantViolation means the group law reached a state that no
	// valid pair of points can produce.
	ErrInvariantViolation = errors.New("ecc: internal invariant violated")

	// ErrInvalidParameters is returned for nil or malformed inputs.
	ErrInvalidParameters = errors.New("ecc: invalid parameters")
)

// OpError records the operation that failed together with the cause.
type OpError struct {
	Op     string // e.g. "field.Add", "curves.NewPoint"
	Detail string
	Err    error
}

func (e *OpError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// NewOpError creates a new OpError. The detail is built from format and args
// when format is non-empty.
func NewOpError(op string, err error, format string, args ...interface{}) *OpError {
	var detail string
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}
	return &OpError{
		Op:     op,
		Detail: detail,
		Err:    err,
	}
}

// Is reports whether err is, or wraps, target. It is a shorthand for
// errors.Is kept here so callers need a single import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
