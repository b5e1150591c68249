package polynomial

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

// Evaluate returns p(x), computed with Horner's method.
func (p *Polynomial) Evaluate(x float64) (y float64) {
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		y = y*x + p.coeffs[i]
	}
	return
}

// EvaluateAll returns [p(x) for x in xs].
func (p *Polynomial) EvaluateAll(xs []float64) (ys []float64) {
	ys = make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = p.Evaluate(x)
	}
	return
}

// Profile summarizes the values taken by a polynomial over a set of points.
type Profile struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64
}

func (pf Profile) String() string {
	return fmt.Sprintf("min=%g max=%g mean=%g median=%g stddev=%g", pf.Min, pf.Max, pf.Mean, pf.Median, pf.StdDev)
}

// Profile evaluates p on each of the points and returns statistics on the
// obtained values. StdDev is the population standard deviation.
// It returns an error wrapping ErrInvalidArgument if points is empty.
func (p *Polynomial) Profile(points []float64) (pf Profile, err error) {

	if len(points) == 0 {
		return pf, fmt.Errorf("cannot Profile: points must not be empty: %w", ErrInvalidArgument)
	}

	values := stats.Float64Data(p.EvaluateAll(points))

	if pf.Min, err = stats.Min(values); err != nil {
		return pf, fmt.Errorf("cannot Profile: stats.Min: %w", err)
	}

	if pf.Max, err = stats.Max(values); err != nil {
		return pf, fmt.Errorf("cannot Profile: stats.Max: %w", err)
	}

	if pf.Mean, err = stats.Mean(values); err != nil {
		return pf, fmt.Errorf("cannot Profile: stats.Mean: %w", err)
	}

	if pf.Median, err = stats.Median(values); err != nil {
		return pf, fmt.Errorf("cannot Profile: stats.Median: %w", err)
	}

	if pf.StdDev, err = stats.StandardDeviationPopulation(values); err != nil {
		return pf, fmt.Errorf("cannot Profile: stats.StandardDeviationPopulation: %w", err)
	}

	return pf, nil
}
