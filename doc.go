// Package dynvec provides a bounds-checked, fixed-length numeric vector with
// value semantics.
//
// A Vector owns a contiguous buffer whose length is fixed at construction and
// bounded by MaxVectorSize. Every element access is checked, every binary
// operation checks operand lengths, and no operation mutates state before its
// preconditions are validated.
//
// # Quick Start
//
//	v, _ := dynvec.New[int](3)
//	v.Fill(3)
//	w := v.AddScalar(3)  // [6 6 6], v unchanged
//	d, _ := v.Dot(w)     // 54
//
// # Ownership
//
// Vectors are handled through pointers, so plain Go assignment aliases.
// Use the explicit operations instead:
//
//	c := v.Clone()   // deep copy, independent buffer
//	m := v.Move()    // m takes the buffer, v is left empty
//	c.Assign(w)      // copy assignment, c takes w's length
//	c.MoveFrom(m)    // move assignment, m is left empty
//
// A moved-from vector has length zero. It stays usable: accessing it reports
// ErrIndexOutOfRange and it compares equal only to other empty vectors.
//
// # Errors
//
// Failures are typed (ErrInvalidSize, ErrIndexOutOfRange, ErrSizeMismatch) and
// are matched either with errors.As or, by kind, with errors.Is against
// ErrSize, ErrIndex and ErrMismatch.
//
// # Concurrency
//
// Vectors are not safe for concurrent mutation. Callers sharing a vector
// across goroutines must synchronize externally.
package dynvec
