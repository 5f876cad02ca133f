package matrix

import (
	"strings"

	"github.com/hupe1980/dynvec"
)

// MaxMatrixSize is the largest admissible matrix dimension.
const MaxMatrixSize = 10000

// Matrix is a square matrix that exclusively owns its rows.
type Matrix[T dynvec.Element] struct {
	rows []*dynvec.Vector[T]
}

// New creates a zero-initialized n x n matrix.
func New[T dynvec.Element](n int) (*Matrix[T], error) {
	if n <= 0 || n > MaxMatrixSize {
		return nil, &dynvec.ErrInvalidSize{Size: n, Max: MaxMatrixSize}
	}

	rows := make([]*dynvec.Vector[T], n)
	for i := range rows {
		r, err := dynvec.New[T](n)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}

	return &Matrix[T]{rows: rows}, nil
}

// FromRows creates a matrix holding a copy of rows. rows must be square.
func FromRows[T dynvec.Element](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	if n <= 0 || n > MaxMatrixSize {
		return nil, &dynvec.ErrInvalidSize{Size: n, Max: MaxMatrixSize}
	}
	for _, r := range rows {
		if len(r) != n {
			return nil, &dynvec.ErrSizeMismatch{Expected: n, Actual: len(r)}
		}
	}

	m := &Matrix[T]{rows: make([]*dynvec.Vector[T], n)}
	for i, r := range rows {
		v, err := dynvec.FromSlice(r)
		if err != nil {
			return nil, err
		}
		m.rows[i] = v
	}

	return m, nil
}

// Size returns the matrix dimension.
func (m *Matrix[T]) Size() int {
	return len(m.rows)
}

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) (T, error) {
	if err := m.checkRow(i); err != nil {
		var zero T
		return zero, err
	}

	return m.rows[i].At(j)
}

// Set stores x at row i, column j.
func (m *Matrix[T]) Set(i, j int, x T) error {
	if err := m.checkRow(i); err != nil {
		return err
	}

	return m.rows[i].Set(j, x)
}

// Row returns a copy of row i.
func (m *Matrix[T]) Row(i int) (*dynvec.Vector[T], error) {
	if err := m.checkRow(i); err != nil {
		return nil, err
	}

	return m.rows[i].Clone(), nil
}

// SetRow replaces row i with a copy of v.
// A nil v is reported as *dynvec.ErrSizeMismatch.
func (m *Matrix[T]) SetRow(i int, v *dynvec.Vector[T]) error {
	if err := m.checkRow(i); err != nil {
		return err
	}
	if v == nil || v.Len() != len(m.rows) {
		return &dynvec.ErrSizeMismatch{Expected: len(m.rows), Actual: v.Len()}
	}
	m.rows[i].Assign(v)

	return nil
}

// Clone returns a deep copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	rows := make([]*dynvec.Vector[T], len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}

	return &Matrix[T]{rows: rows}
}

// Move transfers m's rows to a new matrix. m is left empty.
func (m *Matrix[T]) Move() *Matrix[T] {
	dst := &Matrix[T]{rows: m.rows}
	m.rows = nil

	return dst
}

// Assign replaces m's contents with a copy of src, adopting src's size.
// Assigning a matrix to itself is a no-op.
func (m *Matrix[T]) Assign(src *Matrix[T]) {
	if m == src {
		return
	}
	m.rows = src.Clone().rows
}

// MoveFrom takes over src's rows. src is left empty.
func (m *Matrix[T]) MoveFrom(src *Matrix[T]) {
	if m == src {
		return
	}
	m.rows = src.rows
	src.rows = nil
}

// Equal reports whether m and o have the same size and elements.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil || len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool {
	return !m.Equal(o)
}

// String formats the matrix one row per line.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for i, r := range m.rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(r.String())
	}

	return sb.String()
}

func (m *Matrix[T]) checkRow(i int) error {
	if i < 0 || i >= len(m.rows) {
		return &dynvec.ErrIndexOutOfRange{Index: i, Len: len(m.rows)}
	}
	return nil
}

func (m *Matrix[T]) checkSameSize(o *Matrix[T]) error {
	if len(m.rows) != len(o.rows) {
		return &dynvec.ErrSizeMismatch{Expected: len(m.rows), Actual: len(o.rows)}
	}
	return nil
}
