package dynvec

import (
	"fmt"
	"slices"

	"github.com/hupe1980/dynvec/internal/kernel"
)

// MaxVectorSize is the largest admissible vector length.
const MaxVectorSize = 100000000

// Element is the set of numeric types a Vector can hold.
type Element = kernel.Number

// Vector is a fixed-length numeric vector that exclusively owns its storage.
//
// The zero value is an empty vector, equivalent to a moved-from one.
type Vector[T Element] struct {
	data []T
}

// New creates a zero-initialized vector of the given size.
func New[T Element](size int) (*Vector[T], error) {
	if err := checkSize(size, MaxVectorSize); err != nil {
		return nil, err
	}

	return &Vector[T]{data: make([]T, size)}, nil
}

// FromSlice creates a vector holding a copy of values.
func FromSlice[T Element](values []T) (*Vector[T], error) {
	if err := checkSize(len(values), MaxVectorSize); err != nil {
		return nil, err
	}

	return &Vector[T]{data: slices.Clone(values)}, nil
}

// Len returns the number of elements. A nil vector has length zero.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return len(v.data)
}

// Clone returns a deep copy of v.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{data: slices.Clone(v.data)}
}

// Move transfers v's storage to a new vector. v is left empty.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{data: v.data}
	v.data = nil

	return dst
}

// Assign replaces v's contents with a copy of src, adopting src's length.
// Assigning a vector to itself is a no-op.
func (v *Vector[T]) Assign(src *Vector[T]) {
	if v == src {
		return
	}
	// Build the new buffer before dropping the old one.
	buf := slices.Clone(src.data)
	v.data = buf
}

// MoveFrom takes over src's storage. src is left empty.
// Moving a vector into itself is a no-op.
func (v *Vector[T]) MoveFrom(src *Vector[T]) {
	if v == src {
		return
	}
	v.data = src.data
	src.data = nil
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}

	return v.data[i], nil
}

// Set stores x at index i.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.data[i] = x

	return nil
}

// Ref returns a pointer to the element at index i for in-place updates.
//
// The pointer is only valid while v owns its current buffer; it must not be
// used after v is the source of Move or MoveFrom, or the target of Assign.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}

	return &v.data[i], nil
}

// Fill sets every element to x.
func (v *Vector[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.data)
}

// Equal reports whether v and o have the same length and the same elements
// in order.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == o {
		return true
	}
	if v == nil || o == nil {
		return false
	}

	return slices.Equal(v.data, o.data)
}

// NotEqual is the negation of Equal.
func (v *Vector[T]) NotEqual(o *Vector[T]) bool {
	return !v.Equal(o)
}

func (v *Vector[T]) String() string {
	return fmt.Sprint(v.data)
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= len(v.data) {
		return &ErrIndexOutOfRange{Index: i, Len: len(v.data)}
	}
	return nil
}
