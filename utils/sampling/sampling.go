// Package sampling implements sampling of bytes and floating point values
// from a source of randomness.
package sampling

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Float64Source samples float64 values uniformly from a PRNG.
type Float64Source struct {
	prng PRNG
	buf  [8]byte
}

// NewFloat64Source returns a new Float64Source reading from prng.
func NewFloat64Source(prng PRNG) *Float64Source {
	return &Float64Source{prng: prng}
}

// Float64 returns a value uniformly distributed in [0, 1).
func (s *Float64Source) Float64() (f float64, err error) {
	if _, err = io.ReadFull(s.prng, s.buf[:]); err != nil {
		return 0, fmt.Errorf("cannot Float64: %w", err)
	}
	// 53 random bits map exactly onto the mantissa of a float64.
	return float64(binary.LittleEndian.Uint64(s.buf[:])>>11) / (1 << 53), nil
}

// Float64Range returns a value uniformly distributed in [min, max).
func (s *Float64Source) Float64Range(min, max float64) (f float64, err error) {
	if f, err = s.Float64(); err != nil {
		return
	}
	return min + f*(max-min), nil
}
