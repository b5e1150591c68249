package polynomial

import "errors"

var (
	// ErrInvalidArgument is returned when a polynomial cannot be built from
	// the provided degree and coefficients, or when an input is malformed.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNullArgument is returned when a nil operand is passed to a binary operation.
	ErrNullArgument = errors.New("null argument")
)
