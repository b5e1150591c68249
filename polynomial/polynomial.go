// Package polynomial implements immutable univariate polynomials with
// float64 coefficients.
//
// A Polynomial of degree d holds exactly d+1 coefficients indexed by
// exponent, the constant term first. Every arithmetic operation returns a
// new Polynomial and never modifies its operands. Results of Add, Subtract
// and Multiply are normalized: their leading coefficient is nonzero unless
// their degree is zero.
package polynomial

import (
	"fmt"

	"github.com/polywork/realpoly/utils"
)

// Polynomial is the structure that contains the coefficients of a
// univariate polynomial over the reals.
// The zero value is not a valid polynomial: instances are obtained from
// NewPolynomial, NewZero, an arithmetic operation or a decoder.
type Polynomial struct {
	coeffs []float64
}

// NewPolynomial creates a new polynomial of the given degree from a copy of coeffs,
// where coeffs[i] is the coefficient of x^i.
// The coefficients are not normalized: a zero leading coefficient is kept.
// It returns an error wrapping ErrInvalidArgument if degree is negative, if
// coeffs is empty or if len(coeffs) != degree+1.
func NewPolynomial(degree int, coeffs []float64) (*Polynomial, error) {

	if degree < 0 {
		return nil, fmt.Errorf("cannot NewPolynomial: degree=%d must be non-negative: %w", degree, ErrInvalidArgument)
	}

	if len(coeffs) == 0 {
		return nil, fmt.Errorf("cannot NewPolynomial: coefficients must not be empty: %w", ErrInvalidArgument)
	}

	if len(coeffs) != degree+1 {
		return nil, fmt.Errorf("cannot NewPolynomial: len(coeffs)=%d must be equal to degree+1=%d: %w", len(coeffs), degree+1, ErrInvalidArgument)
	}

	return &Polynomial{coeffs: utils.CopyNewSlice(coeffs)}, nil
}

// NewZero returns the zero polynomial, of degree 0 and coefficient [0].
func NewZero() *Polynomial {
	return &Polynomial{coeffs: []float64{0}}
}

// newNormalized takes ownership of coeffs and trims its zero high-order
// coefficients.
func newNormalized(coeffs []float64) *Polynomial {
	return &Polynomial{coeffs: utils.TrimTrailingZeros(coeffs)}
}

// Degree returns the degree of the polynomial.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients of the polynomial,
// the coefficient of x^i at index i.
func (p *Polynomial) Coefficients() []float64 {
	return utils.CopyNewSlice(p.coeffs)
}

// Coefficient returns the coefficient of x^i, which is zero for i > p.Degree().
// It panics if i is negative.
func (p *Polynomial) Coefficient(i int) float64 {
	if i < 0 {
		panic(fmt.Sprintf("cannot Coefficient: i=%d must be non-negative", i))
	}
	if i > p.Degree() {
		return 0
	}
	return p.coeffs[i]
}

// IsZero returns true if p is the zero polynomial.
func (p *Polynomial) IsZero() bool {
	return len(p.coeffs) == 1 && p.coeffs[0] == 0
}

// CopyNew creates a deep copy of the target polynomial.
func (p *Polynomial) CopyNew() *Polynomial {
	return &Polynomial{coeffs: utils.CopyNewSlice(p.coeffs)}
}

// Equal returns true if other has the same degree as p and all their
// coefficients compare equal. A nil other is never equal.
func (p *Polynomial) Equal(other *Polynomial) bool {
	if other == nil {
		return false
	}

	return utils.EqualSlice(p.coeffs, other.coeffs)
}
