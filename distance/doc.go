// Package distance provides metrics over dynvec vectors.
//
// Unlike the raw kernels, every function here checks operand lengths and
// reports *dynvec.ErrSizeMismatch on disagreement.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//   - MetricDot: Dot product (inner product)
//
// # Usage
//
//	dist, err := distance.SquaredL2(a, b)
//	sim, err := distance.Dot(a, b)
//	fn, err := distance.Provider[float32](distance.MetricL2)
package distance
