package polynomial

import (
	"fmt"

	"github.com/polywork/realpoly/utils"
)

// Add returns p + other, normalized.
// It returns an error wrapping ErrNullArgument if other is nil.
func (p *Polynomial) Add(other *Polynomial) (*Polynomial, error) {

	if other == nil {
		return nil, fmt.Errorf("cannot Add: other is nil: %w", ErrNullArgument)
	}

	return p.termwise(other, func(a, b float64) float64 { return a + b }), nil
}

// Subtract returns p - other, normalized.
// It returns an error wrapping ErrNullArgument if other is nil.
func (p *Polynomial) Subtract(other *Polynomial) (*Polynomial, error) {

	if other == nil {
		return nil, fmt.Errorf("cannot Subtract: other is nil: %w", ErrNullArgument)
	}

	return p.termwise(other, func(a, b float64) float64 { return a - b }), nil
}

// termwise applies op on the coefficients of p and other, the shorter of
// the two being padded with zeros.
func (p *Polynomial) termwise(other *Polynomial, op func(a, b float64) float64) *Polynomial {

	n := utils.Max(len(p.coeffs), len(other.coeffs))

	a := utils.PadSlice(p.coeffs, n)
	b := other.coeffs

	for i := range a {
		var bi float64
		if i < len(b) {
			bi = b[i]
		}
		a[i] = op(a[i], bi)
	}

	return newNormalized(a)
}

// AddConstant returns p + constant.
// Only the constant term changes, hence the degree is preserved.
func (p *Polynomial) AddConstant(constant float64) *Polynomial {
	coeffs := utils.CopyNewSlice(p.coeffs)
	coeffs[0] += constant
	return &Polynomial{coeffs: coeffs}
}

// MultiplyByConstant returns constant * p.
// Multiplying by zero returns the zero polynomial of degree 0, whatever the
// degree of p. Any other constant preserves the degree of p.
func (p *Polynomial) MultiplyByConstant(constant float64) *Polynomial {

	if constant == 0 {
		return NewZero()
	}

	coeffs := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		coeffs[i] = c * constant
	}

	return &Polynomial{coeffs: coeffs}
}

// Multiply returns p * other, normalized.
// It returns an error wrapping ErrNullArgument if other is nil.
func (p *Polynomial) Multiply(other *Polynomial) (*Polynomial, error) {

	if other == nil {
		return nil, fmt.Errorf("cannot Multiply: other is nil: %w", ErrNullArgument)
	}

	coeffs := make([]float64, p.Degree()+other.Degree()+1)

	for i, a := range p.coeffs {
		for j, b := range other.coeffs {
			coeffs[i+j] += a * b
		}
	}

	return newNormalized(coeffs), nil
}
