package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrorKind categorizes simulation failures.
type ErrorKind string

const (
	// KindInvalidParameters indicates bad input, rejected before any
	// computation begins.
	KindInvalidParameters ErrorKind = "invalid_parameters"

	// KindNumericalInstability indicates NaN or Inf produced mid-calculation.
	KindNumericalInstability ErrorKind = "numerical_instability"

	// KindUnstableSystem indicates a physically implausible configuration;
	// logged as a warning, never fatal.
	KindUnstableSystem ErrorKind = "unstable_system"

	// KindInsufficientMass indicates the cloud cannot collapse into any star.
	KindInsufficientMass ErrorKind = "insufficient_mass"

	// KindExtremeValues indicates out-of-typical-range values worth a
	// warning but not a failure.
	KindExtremeValues ErrorKind = "extreme_values"
)

// Error is the typed failure surfaced by the simulation. Details carries a
// machine-readable payload for the presentation layer.
type Error struct {
	Kind    ErrorKind
	Message string
	Details map[string]float64
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds a typed error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithDetails attaches a numeric payload and returns the same error.
func (e *Error) WithDetails(details map[string]float64) *Error {
	e.Details = details
	return e
}

// IsKind reports whether err is a simulation error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}

// CheckFinite returns a numerical-instability error when any value is NaN or
// infinite. The label names the computation for diagnostics.
func CheckFinite(label string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Errorf(KindNumericalInstability, "%s produced non-finite value (operand %d)", label, i)
		}
	}
	return nil
}
