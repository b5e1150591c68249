package polynomial

import (
	"bufio"
	"encoding/binary"

	"github.com/polywork/realpoly/utils/buffer"
	"github.com/zeebo/blake3"
)

// Hash returns a 64-bit digest of the degree and coefficients of p.
// Polynomials that are Equal have the same Hash: negative zero
// coefficients are hashed as positive zero.
func (p *Polynomial) Hash() uint64 {

	hasher := blake3.New()
	w := bufio.NewWriter(hasher)

	coeffs := make([]float64, len(p.coeffs))
	for i, c := range p.coeffs {
		if c != 0 {
			coeffs[i] = c
		}
	}

	// Writes on a hash.Hash never fail.
	_, _ = buffer.WriteInt(w, p.Degree())
	_, _ = buffer.WriteFloat64Slice(w, coeffs)
	_ = w.Flush()

	return binary.LittleEndian.Uint64(hasher.Sum(nil))
}
