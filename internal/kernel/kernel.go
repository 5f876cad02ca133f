package kernel

import "golang.org/x/exp/constraints"

// Number is the set of element types the kernels operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Dot calculates the dot product of two slices.
//
// SAFETY: assumes len(a) == len(b).
func Dot[T Number](a, b []T) T {
	var ret T
	for i := range a {
		ret += a[i] * b[i]
	}

	return ret
}

// SquaredL2 calculates the squared L2 distance.
//
// SAFETY: assumes len(a) == len(b).
func SquaredL2[T Number](a, b []T) T {
	var distance T
	for i := range a {
		d := a[i] - b[i]
		distance += d * d
	}

	return distance
}

// AddInto writes a[i]+b[i] into dst[i].
// dst may alias a or b.
func AddInto[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// SubInto writes a[i]-b[i] into dst[i].
// dst may alias a or b.
func SubInto[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// ScaleInto writes a[i]*scalar into dst[i].
func ScaleInto[T Number](dst, a []T, scalar T) {
	for i := range dst {
		dst[i] = a[i] * scalar
	}
}

// OffsetInto writes a[i]+offset into dst[i].
func OffsetInto[T Number](dst, a []T, offset T) {
	for i := range dst {
		dst[i] = a[i] + offset
	}
}

// Axpy accumulates alpha*x into dst.
// A zero alpha is not skipped: 0*Inf and 0*NaN must still yield NaN.
func Axpy[T Number](dst []T, alpha T, x []T) {
	for i := range dst {
		dst[i] += alpha * x[i]
	}
}
