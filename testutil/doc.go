// Package testutil provides testing utilities for quantity.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating cell
// values with a controlled distribution and density.
//
// # Random Cell Generation
//
//	rng := testutil.NewRNG(seed)
//	dense := rng.Uniform(1024, -10, 10)     // every cell in [-10, 10)
//	sparse := rng.Sparse(1024, 0.05, 1, 2)  // ~5% of cells in [1, 2), rest zero
package testutil
