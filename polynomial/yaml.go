package polynomial

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// document is the YAML layout of a Polynomial.
type document struct {
	Degree       int       `yaml:"degree"`
	Coefficients []float64 `yaml:"coefficients,flow"`
}

// MarshalYAML implements yaml.Marshaler.
func (p *Polynomial) MarshalYAML() (interface{}, error) {
	return document{
		Degree:       p.Degree(),
		Coefficients: p.Coefficients(),
	}, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The document is validated
// with the same rules as NewPolynomial.
// UnmarshalYAML must only be called on a newly allocated object.
func (p *Polynomial) UnmarshalYAML(value *yaml.Node) error {

	var doc document
	if err := value.Decode(&doc); err != nil {
		return fmt.Errorf("cannot UnmarshalYAML: %w", err)
	}

	q, err := NewPolynomial(doc.Degree, doc.Coefficients)
	if err != nil {
		return fmt.Errorf("cannot UnmarshalYAML: %w", err)
	}

	p.coeffs = q.coeffs

	return nil
}
