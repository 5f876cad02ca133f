// Package kernel provides the elementwise loops behind dynvec vectors and
// matrices.
//
// # Operations
//
//   - Reductions: Dot, SquaredL2
//   - Elementwise: AddInto, SubInto
//   - Scalar: ScaleInto, OffsetInto, Axpy
//
// None of the kernels check lengths. Callers MUST validate that operands
// have matching lengths before calling in.
package kernel
