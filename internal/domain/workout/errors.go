package workout

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownActivity  = errors.New("unknown activity type")
	ErrArityMismatch    = errors.New("wrong number of parameters")
	ErrInvalidParameter = errors.New("invalid parameter")

	ErrNonPositiveDuration = errors.New("duration must be positive")
	ErrNonPositiveHeight   = errors.New("height must be positive")

	// ErrAbstractMethod is the panic value used when a base Training is asked
	// for a calorie estimate.
	ErrAbstractMethod = errors.New("method must be implemented by a concrete workout")
)

// ActivityError reports a package that could not be turned into a workout.
type ActivityError struct {
	Code  string // offending activity code
	Param string // parameter name, set for ErrInvalidParameter
	Want  int    // expected parameter count, set for ErrArityMismatch
	Got   int    // received parameter count, set for ErrArityMismatch
	Err   error
}

func (e *ActivityError) Error() string {
	switch {
	case errors.Is(e.Err, ErrArityMismatch):
		return fmt.Sprintf("activity %q: %v: want %d, got %d", e.Code, e.Err, e.Want, e.Got)
	case e.Param != "":
		return fmt.Sprintf("activity %q: %s: %v", e.Code, e.Param, e.Err)
	default:
		return fmt.Sprintf("activity %q: %v", e.Code, e.Err)
	}
}

func (e *ActivityError) Unwrap() error { return e.Err }
