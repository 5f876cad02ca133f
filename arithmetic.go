package dynvec

import "github.com/hupe1980/dynvec/internal/kernel"

// AddScalar returns a new vector with x added to every element.
func (v *Vector[T]) AddScalar(x T) *Vector[T] {
	res := v.like()
	kernel.OffsetInto(res.data, v.data, x)

	return res
}

// SubScalar returns a new vector with x subtracted from every element.
func (v *Vector[T]) SubScalar(x T) *Vector[T] {
	res := v.like()
	kernel.OffsetInto(res.data, v.data, -x)

	return res
}

// MulScalar returns a new vector with every element multiplied by x.
func (v *Vector[T]) MulScalar(x T) *Vector[T] {
	res := v.like()
	kernel.ScaleInto(res.data, v.data, x)

	return res
}

// Add returns the elementwise sum of v and o.
// Add, Sub and Dot report a nil operand as *ErrSizeMismatch.
func (v *Vector[T]) Add(o *Vector[T]) (*Vector[T], error) {
	if err := v.checkSameLen(o); err != nil {
		return nil, err
	}
	res := v.like()
	kernel.AddInto(res.data, v.data, o.data)

	return res, nil
}

// Sub returns the elementwise difference v - o.
func (v *Vector[T]) Sub(o *Vector[T]) (*Vector[T], error) {
	if err := v.checkSameLen(o); err != nil {
		return nil, err
	}
	res := v.like()
	kernel.SubInto(res.data, v.data, o.data)

	return res, nil
}

// Dot returns the dot product of v and o.
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if err := v.checkSameLen(o); err != nil {
		var zero T
		return zero, err
	}

	return kernel.Dot(v.data, o.data), nil
}

// like allocates a zeroed vector with v's length.
func (v *Vector[T]) like() *Vector[T] {
	return &Vector[T]{data: make([]T, len(v.data))}
}

// checkSameLen rejects operands of different lengths. A nil operand never
// matches, not even another nil.
func (v *Vector[T]) checkSameLen(o *Vector[T]) error {
	if v == nil || o == nil || len(v.data) != len(o.data) {
		return &ErrSizeMismatch{Expected: v.Len(), Actual: o.Len()}
	}
	return nil
}
