package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// String returns the canonical representation of p, highest degree first,
// e.g. "-2x^3 + x - 1.5". Terms with a zero coefficient are omitted,
// unit coefficients are omitted for non-constant terms and the zero
// polynomial is written "0".
// Coefficients use the shortest decimal form that round-trips to the same float64.
func (p *Polynomial) String() string {

	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder

	for i := p.Degree(); i >= 0; i-- {

		c := p.coeffs[i]

		if c == 0 {
			continue
		}

		switch {
		case sb.Len() > 0:
			if c > 0 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
			}
			c = math.Abs(c)
		case c < 0:
			sb.WriteByte('-')
			c = math.Abs(c)
		}

		if c != 1 || i == 0 {
			sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		}

		if i > 0 {
			sb.WriteByte('x')
			if i > 1 {
				sb.WriteByte('^')
				sb.WriteString(strconv.Itoa(i))
			}
		}
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}
