package polynomial

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"testing"

	"github.com/polywork/realpoly/utils/buffer"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSerialization(t *testing.T) {

	p := mustNew(t, 3, 1.5, math.Copysign(0, -1), -2, math.Inf(1))

	t.Run("MarshalBinary", func(t *testing.T) {
		data, err := p.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, p.BinarySize())
		require.Equal(t, uint64(4), binary.LittleEndian.Uint64(data))

		q := new(Polynomial)
		require.NoError(t, q.UnmarshalBinary(data))
		require.Equal(t, p.Degree(), q.Degree())

		// Bitwise identical, negative zero included.
		for i, c := range p.Coefficients() {
			require.Equal(t, math.Float64bits(c), math.Float64bits(q.Coefficient(i)))
		}
	})

	t.Run("WriteTo&ReadFrom/io.Writer", func(t *testing.T) {
		var bb bytes.Buffer
		n, err := p.WriteTo(&bb)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)

		q := new(Polynomial)
		n, err = q.ReadFrom(&bb)
		require.NoError(t, err)
		require.Equal(t, int64(p.BinarySize()), n)
		require.Equal(t, p.String(), q.String())
	})

	t.Run("WriteTo&ReadFrom/LargeDegree", func(t *testing.T) {
		s := newTestSampler(t)
		p, err := s.ReadNew(2047)
		require.NoError(t, err)

		var bb bytes.Buffer
		_, err = p.WriteTo(&bb)
		require.NoError(t, err)

		q := new(Polynomial)
		_, err = q.ReadFrom(&bb)
		require.NoError(t, err)
		require.True(t, p.Equal(q))
	})

	t.Run("UnmarshalBinary/Invalid", func(t *testing.T) {

		data, err := p.MarshalBinary()
		require.NoError(t, err)

		q := new(Polynomial)
		require.ErrorIs(t, q.UnmarshalBinary(data[:len(data)-1]), io.ErrUnexpectedEOF)
		require.ErrorIs(t, q.UnmarshalBinary(append(data, 0)), ErrInvalidArgument)
		require.Error(t, q.UnmarshalBinary(nil))

		empty := buffer.NewBufferSize(8)
		_, err = buffer.WriteInt(empty, 0)
		require.NoError(t, err)
		require.ErrorIs(t, q.UnmarshalBinary(empty.Bytes()), ErrInvalidArgument)
	})
}

func TestYAML(t *testing.T) {

	t.Run("RoundTrip", func(t *testing.T) {
		p := mustNew(t, 2, 1, -2.5, 3)

		data, err := yaml.Marshal(p)
		require.NoError(t, err)
		require.Equal(t, "degree: 2\ncoefficients: [1, -2.5, 3]\n", string(data))

		q := new(Polynomial)
		require.NoError(t, yaml.Unmarshal(data, q))
		require.True(t, p.Equal(q))
	})

	t.Run("Field", func(t *testing.T) {
		var doc struct {
			Poly *Polynomial `yaml:"poly"`
		}
		require.NoError(t, yaml.Unmarshal([]byte("poly:\n  degree: 1\n  coefficients: [2, 3]\n"), &doc))
		require.Equal(t, "3x + 2", doc.Poly.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		for _, in := range []string{
			"degree: 2\ncoefficients: [1, 2]\n",
			"degree: -1\ncoefficients: [1]\n",
			"degree: 0\n",
		} {
			q := new(Polynomial)
			require.ErrorIs(t, yaml.Unmarshal([]byte(in), q), ErrInvalidArgument, in)
		}

		q := new(Polynomial)
		err := yaml.Unmarshal([]byte("degree: one\n"), q)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidArgument)
	})
}
