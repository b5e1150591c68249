package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint64 reads 8 little-endian bytes from r into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadInt reads a uint64 from r into c.
func ReadInt(r Reader, c *int) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadInt: c is nil")
	}

	var u uint64
	if n, err = ReadUint64(r, &u); err != nil {
		return
	}

	*c = int(u)

	return
}

// ReadUint64Slice reads len(c) uint64 from r into c.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {
	return readWords(r, len(c), func(i int, word uint64) { c[i] = word })
}

// ReadFloat64Slice reads len(c) IEEE-754 encoded float64 from r into c.
func ReadFloat64Slice(r Reader, c []float64) (n int64, err error) {
	return readWords(r, len(c), func(i int, word uint64) { c[i] = math.Float64frombits(word) })
}

// readWords reads size 8-byte words from r, decoding directly from
// the internal buffer of r.
func readWords(r Reader, size int, set func(i int, word uint64)) (n int64, err error) {

	for i := 0; i < size; {

		peek := (size - i) << 3
		if s := r.Size() &^ 7; s < peek {
			peek = s
		}

		if peek == 0 {
			return n, io.ErrUnexpectedEOF
		}

		var slice []byte
		if slice, err = r.Peek(peek); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return
		}

		buffered := len(slice) >> 3
		for j := 0; j < buffered; j++ {
			set(i+j, binary.LittleEndian.Uint64(slice[j<<3:]))
		}

		var inc int
		inc, err = r.Discard(buffered << 3)
		n += int64(inc)

		if err != nil {
			return
		}

		i += buffered
	}

	return
}
