package polynomial

import (
	"fmt"

	"github.com/polywork/realpoly/utils/sampling"
)

// UniformSampler wraps a sampling.PRNG and samples polynomials whose
// coefficients are uniformly distributed in [min, max).
// A UniformSampler must not be used concurrently.
type UniformSampler struct {
	source   *sampling.Float64Source
	min, max float64
}

// NewUniformSampler creates a new UniformSampler reading from prng.
func NewUniformSampler(prng sampling.PRNG, min, max float64) *UniformSampler {
	return &UniformSampler{
		source: sampling.NewFloat64Source(prng),
		min:    min,
		max:    max,
	}
}

// ReadNew samples a new polynomial of the given degree.
// The coefficients are not normalized, hence the leading coefficient may
// be zero when min <= 0 < max, with negligible probability.
func (s *UniformSampler) ReadNew(degree int) (p *Polynomial, err error) {

	if degree < 0 {
		return nil, fmt.Errorf("cannot ReadNew: degree=%d must be non-negative: %w", degree, ErrInvalidArgument)
	}

	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		if coeffs[i], err = s.source.Float64Range(s.min, s.max); err != nil {
			return nil, fmt.Errorf("cannot ReadNew: %w", err)
		}
	}

	return &Polynomial{coeffs: coeffs}, nil
}
