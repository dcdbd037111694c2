// Package core provides the scalar, matrix and timing primitives shared by
// the Lambda engine subsystems.
//
// All simulation state is built on finite 64-bit floats. The Real type is
// the strict carrier: construction and arithmetic detect any step that
// would produce NaN or an infinity and report it as ErrInvalidReal instead
// of letting the poison value propagate.
package core

import (
	"errors"
	"math"
)

// ErrInvalidReal reports a scalar operation that would produce a
// non-finite value, or a division by zero.
var ErrInvalidReal = errors.New("core: invalid real (NaN or Inf)")

// Real is a 64-bit float whose stored value is always finite.
//
// Comparisons use the ordinary Go operators; equality is bit equality of
// the stored value and the ordering is total over finite values.
type Real float64

// NewReal constructs a Real from v. It fails with ErrInvalidReal when v is
// NaN or infinite.
func NewReal(v float64) (Real, error) {
	if !Finite(v) {
		return 0, ErrInvalidReal
	}
	return Real(v), nil
}

// MustReal constructs a Real from v and panics when v is not finite.
// Intended for literals and constants known to be valid.
func MustReal(v float64) Real {
	r, err := NewReal(v)
	if err != nil {
		panic(err)
	}
	return r
}

// Value returns the underlying float64.
func (r Real) Value() float64 {
	return float64(r)
}

// Neg returns -r.
func (r Real) Neg() Real {
	return -r
}

// Add returns r + o, failing with ErrInvalidReal on overflow to a
// non-finite value.
func (r Real) Add(o Real) (Real, error) {
	return NewReal(float64(r) + float64(o))
}

// Sub returns r - o, failing with ErrInvalidReal on overflow to a
// non-finite value.
func (r Real) Sub(o Real) (Real, error) {
	return NewReal(float64(r) - float64(o))
}

// Mul returns r * o, failing with ErrInvalidReal on overflow to a
// non-finite value.
func (r Real) Mul(o Real) (Real, error) {
	return NewReal(float64(r) * float64(o))
}

// Div returns r / o. It fails with ErrInvalidReal when o is exactly zero
// or when the quotient is not finite.
func (r Real) Div(o Real) (Real, error) {
	if o == 0 {
		return 0, ErrInvalidReal
	}
	return NewReal(float64(r) / float64(o))
}

// Finite reports whether v is neither NaN nor infinite.
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
