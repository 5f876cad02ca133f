package matrix

import (
	"github.com/hupe1980/dynvec"
	"github.com/hupe1980/dynvec/internal/kernel"
)

// MulScalar returns a new matrix with every element multiplied by x.
func (m *Matrix[T]) MulScalar(x T) *Matrix[T] {
	rows := make([]*dynvec.Vector[T], len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.MulScalar(x)
	}

	return &Matrix[T]{rows: rows}
}

// Add returns the elementwise sum of m and o.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	return m.zip(o, (*dynvec.Vector[T]).Add)
}

// Sub returns the elementwise difference m - o.
func (m *Matrix[T]) Sub(o *Matrix[T]) (*Matrix[T], error) {
	return m.zip(o, (*dynvec.Vector[T]).Sub)
}

// MulVec returns the matrix-vector product m * v.
func (m *Matrix[T]) MulVec(v *dynvec.Vector[T]) (*dynvec.Vector[T], error) {
	if v == nil || v.Len() != len(m.rows) {
		return nil, &dynvec.ErrSizeMismatch{Expected: len(m.rows), Actual: v.Len()}
	}

	out := make([]T, len(m.rows))
	for i, r := range m.rows {
		d, err := r.Dot(v)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}

	return dynvec.FromSlice(out)
}

// Mul returns the matrix product m * o.
func (m *Matrix[T]) Mul(o *Matrix[T]) (*Matrix[T], error) {
	if err := m.checkSameSize(o); err != nil {
		return nil, err
	}

	n := len(m.rows)
	rhs := make([][]T, n)
	for k, r := range o.rows {
		rhs[k] = r.Values()
	}

	res := &Matrix[T]{rows: make([]*dynvec.Vector[T], n)}
	acc := make([]T, n)
	for i, r := range m.rows {
		clear(acc)
		for k, a := range r.Values() {
			kernel.Axpy(acc, a, rhs[k])
		}
		row, err := dynvec.FromSlice(acc)
		if err != nil {
			return nil, err
		}
		res.rows[i] = row
	}

	return res, nil
}

func (m *Matrix[T]) zip(o *Matrix[T], op func(a, b *dynvec.Vector[T]) (*dynvec.Vector[T], error)) (*Matrix[T], error) {
	if err := m.checkSameSize(o); err != nil {
		return nil, err
	}

	rows := make([]*dynvec.Vector[T], len(m.rows))
	for i := range m.rows {
		r, err := op(m.rows[i], o.rows[i])
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	return &Matrix[T]{rows: rows}, nil
}
