package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint64 writes c into w as 8 little-endian bytes.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteInt writes c into w as a uint64.
func WriteInt(w Writer, c int) (n int64, err error) {
	return WriteUint64(w, uint64(c))
}

// WriteUint64Slice writes a slice of uint64 into w.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {
	return writeWords(w, len(c), func(i int) uint64 { return c[i] })
}

// WriteFloat64Slice writes the IEEE-754 bits of each element of c into w.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {
	return writeWords(w, len(c), func(i int) uint64 { return math.Float64bits(c[i]) })
}

// writeWords writes size 8-byte words into w, filling the internal
// buffer of w and flushing it as many times as needed.
func writeWords(w Writer, size int, word func(i int) uint64) (n int64, err error) {

	for i := 0; i < size; {

		available := w.Available() >> 3

		if available == 0 {

			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot writeWords: available buffer/8 is zero even after flush")
			}
		}

		chunk := size - i
		if chunk > available {
			chunk = available
		}

		buf := w.AvailableBuffer()[:chunk<<3]
		for j := 0; j < chunk; j++ {
			binary.LittleEndian.PutUint64(buf[j<<3:], word(i+j))
		}

		var inc int
		inc, err = w.Write(buf)
		n += int64(inc)

		if err != nil {
			return
		}

		i += chunk
	}

	return
}
