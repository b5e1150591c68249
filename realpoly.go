/*
Package realpoly provides immutable univariate polynomials with real
coefficients, in pure Go.

The polynomial package implements the value type and its arithmetic. The
utils packages hold the supporting serialization buffers, sampling
primitives and generic slice helpers.
*/
package realpoly
