// Package matrix provides a square numeric matrix composed of dynvec rows.
//
// A Matrix of size n owns n row vectors of length n and follows the same
// contracts as dynvec.Vector: checked construction bounded by MaxMatrixSize,
// checked element access, deep Clone, ownership-transferring Move, and
// *dynvec.ErrSizeMismatch for binary operations between different sizes.
//
//	m, _ := matrix.New[float64](3)
//	_ = m.Set(0, 0, 1)
//	y, _ := m.MulVec(x)
package matrix
