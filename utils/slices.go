package utils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Number is the set of numeric types the slice helpers operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Alias1D returns true if x and y share the same base array.
// Taken from http://golang.org/src/pkg/math/big/nat.go#L340 .
func Alias1D[V any](x, y []V) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// Max returns the maximum of a and b.
func Max[V constraints.Ordered](a, b V) V {
	if a >= b {
		return a
	}
	return b
}

// Min returns the minimum of a and b.
func Min[V constraints.Ordered](a, b V) V {
	if a <= b {
		return a
	}
	return b
}

// CopyNewSlice returns a copy of s backed by a newly allocated array.
func CopyNewSlice[V any](s []V) (scpy []V) {
	scpy = make([]V, len(s))
	copy(scpy, s)
	return
}

// EqualSlice checks the equality between two slices using ==.
// Slices of different lengths are never equal.
func EqualSlice[V comparable](a, b []V) bool {
	return slices.Equal(a, b)
}

// TrimTrailingZeros returns s resliced so that its last element is nonzero,
// keeping at least one element. The backing array is shared with s.
func TrimTrailingZeros[V Number](s []V) []V {
	n := len(s)
	for n > 1 && s[n-1] == 0 {
		n--
	}
	return s[:n]
}

// PadSlice returns a newly allocated slice of length n holding s followed by zeros.
// It panics if n < len(s).
func PadSlice[V Number](s []V, n int) (sout []V) {
	if n < len(s) {
		panic("cannot PadSlice: n < len(s)")
	}
	sout = make([]V, n)
	copy(sout, s)
	return
}
