package calculation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks structurally invalid input (negative hours, missing dates, bad sizes).
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidTaxClass marks a tax class outside 1..6.
	ErrInvalidTaxClass = errors.New("invalid tax class")
	// ErrUnknownSelector marks an unknown or missing categorical value.
	ErrUnknownSelector = errors.New("unknown selector value")
	// ErrIndeterminate marks inputs for which no finite result exists (division by zero hours).
	ErrIndeterminate = errors.New("indeterminate result")
	// ErrDateOrder marks a reference date before the start date.
	ErrDateOrder = errors.New("reference date before start date")
)

// InputError names the offending field and wraps one of the sentinel errors.
type InputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return e.Err }

func inputError(sentinel error, field, format string, args ...any) error {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...), Err: sentinel}
}
