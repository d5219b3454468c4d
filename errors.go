package parslet

import "errors"

// Common errors used throughout the parslet package
var (
	// ErrTypeMismatch is returned by Concat when the right-hand operand
	// cannot be treated as a slice.
	ErrTypeMismatch = errors.New("cannot concat something other than a slice to a slice")
	// ErrInvalidSliceOperation is returned by Concat when the operands do
	// not cover adjacent spans of the buffer.
	ErrInvalidSliceOperation = errors.New("invalid slice operation")
	// ErrInvalidNumber is returned by Int when the payload is not an
	// integer literal.
	ErrInvalidNumber = errors.New("invalid number format")
	// ErrInvalidDecimalString is returned by Decimal when the payload
	// cannot be parsed as a decimal number.
	ErrInvalidDecimalString = errors.New("invalid decimal string")
)
