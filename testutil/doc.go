// Package testutil provides testing utilities for dynvec.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := testutil.RandomVector[int](rng, 16, -100, 100)
//	n := rng.Size(1, 64) // random valid length
package testutil
