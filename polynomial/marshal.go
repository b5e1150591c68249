package polynomial

import (
	"bufio"
	"fmt"
	"io"

	"github.com/polywork/realpoly/utils"
	"github.com/polywork/realpoly/utils/buffer"
)

// BinarySize returns the serialized size of the object in bytes.
func (p *Polynomial) BinarySize() int {
	return 8 + len(p.coeffs)<<3
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// The layout is the number of coefficients followed by the IEEE-754 bits of
// each coefficient, constant term first, all as little-endian uint64.
//
// Unless w implements the buffer.Writer interface (see realpoly/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer.
func (p *Polynomial) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteInt(w, len(p.coeffs)); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteInt: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteFloat64Slice(w, p.coeffs); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteFloat64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The decoded coefficients must describe a valid
// polynomial, otherwise an error wrapping ErrInvalidArgument is returned.
// ReadFrom must only be called on a newly allocated object.
//
// Unless r implements the buffer.Reader interface (see realpoly/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (p *Polynomial) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int
		if inc, err = buffer.ReadInt(r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadInt: %w", err)
		}

		n += inc

		if size < 1 {
			return n, fmt.Errorf("cannot ReadFrom: invalid number of coefficients %d: %w", size, ErrInvalidArgument)
		}

		// Grown as words arrive so that a corrupted size cannot
		// trigger a huge allocation.
		coeffs := make([]float64, 0, utils.Min(size, 1<<12))

		var chunk [512]float64
		for len(coeffs) < size {

			m := utils.Min(size-len(coeffs), len(chunk))

			if inc, err = buffer.ReadFloat64Slice(r, chunk[:m]); err != nil {
				return n + inc, fmt.Errorf("buffer.ReadFloat64Slice: %w", err)
			}

			n += inc

			coeffs = append(coeffs, chunk[:m]...)
		}

		p.coeffs = coeffs

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Polynomial) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary or
// WriteTo on the object.
func (p *Polynomial) UnmarshalBinary(data []byte) (err error) {

	buf := buffer.NewBuffer(data)

	q := new(Polynomial)
	if _, err = q.ReadFrom(buf); err != nil {
		return
	}

	if buf.Size() != 0 {
		return fmt.Errorf("cannot UnmarshalBinary: %d trailing bytes: %w", buf.Size(), ErrInvalidArgument)
	}

	p.coeffs = q.coeffs

	return nil
}
