package spring

import (
	"errors"
	"fmt"
)

// Domain errors for spring computations.
var (
	// ErrWireDiameter indicates a non-positive wire diameter.
	ErrWireDiameter = errors.New("spring: wire diameter must be positive")

	// ErrInnerDiameter indicates a negative inner diameter.
	ErrInnerDiameter = errors.New("spring: inner diameter must be non-negative")

	// ErrActiveCoils indicates a non-positive coil count.
	ErrActiveCoils = errors.New("spring: active coils must be positive")

	// ErrShearModulus indicates a non-positive shear modulus.
	ErrShearModulus = errors.New("spring: shear modulus must be positive")

	// ErrMeanDiameter indicates a non-positive mean coil diameter.
	ErrMeanDiameter = errors.New("spring: mean coil diameter must be positive")

	// ErrWireBound indicates the wire diameter failed the legacy
	// inner-diameter bound check.
	ErrWireBound = errors.New("spring: wire diameter must be less than or equal to the inner diameter")
)

// InputError wraps a domain error with the offending field and value.
type InputError struct {
	Field   string
	Value   float64
	Wrapped error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v (%s = %g)", e.Wrapped, e.Field, e.Value)
}

func (e *InputError) Unwrap() error {
	return e.Wrapped
}
