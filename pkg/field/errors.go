package field

import "errors"

var (
	// ErrDivisionByZero is returned when inverting or dividing by the
	// additive identity of the field.
	ErrDivisionByZero = errors.New("division by zero field element")

	// ErrNotPrimitive is returned when a supplied generator does not have
	// multiplicative order 2^m - 1 and therefore cannot index the
	// log/antilog tables.
	ErrNotPrimitive = errors.New("generator is not a primitive element")

	// ErrInvalidSize is returned for field sizes outside the supported
	// 1..16 range or a modulus whose degree does not match the size.
	ErrInvalidSize = errors.New("invalid field size")

	// ErrInterpolation is returned when interpolation points are malformed
	// (mismatched lengths or duplicate x coordinates).
	ErrInterpolation = errors.New("invalid interpolation points")
)
