package dynvec

import (
	"errors"
	"fmt"
)

var (
	// ErrSize is matched by every *ErrInvalidSize.
	ErrSize = errors.New("invalid size")
	// ErrIndex is matched by every *ErrIndexOutOfRange.
	ErrIndex = errors.New("index out of range")
	// ErrMismatch is matched by every *ErrSizeMismatch.
	ErrMismatch = errors.New("size mismatch")
)

// ErrInvalidSize indicates a requested length outside (0, Max].
type ErrInvalidSize struct {
	Size int
	Max  int
}

func (e *ErrInvalidSize) Error() string {
	return fmt.Sprintf("invalid size: %d (must be in 1..%d)", e.Size, e.Max)
}

func (e *ErrInvalidSize) Is(target error) bool { return target == ErrSize }

// ErrIndexOutOfRange indicates an element access outside [0, Len).
type ErrIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (length %d)", e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Is(target error) bool { return target == ErrIndex }

// ErrSizeMismatch indicates a binary operation between operands of
// different lengths.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrSizeMismatch) Is(target error) bool { return target == ErrMismatch }

func checkSize(size, limit int) error {
	if size <= 0 || size > limit {
		return &ErrInvalidSize{Size: size, Max: limit}
	}
	return nil
}
