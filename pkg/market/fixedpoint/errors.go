package fixedpoint

import "errors"

// ErrDivideByZero is returned when a scaled/unscaled conversion is
// attempted against a zero index.
var ErrDivideByZero = errors.New("fixedpoint: divide by zero")

// ErrMathOverflow is returned by NarrowToU128 when a value exceeds the
// representable range of an unsigned 128-bit integer.
var ErrMathOverflow = errors.New("fixedpoint: math overflow")
