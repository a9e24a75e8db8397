package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0,1).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniform fills dst with values in range [minVal, maxVal).
func (r *RNG) FillUniform(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Uniform returns n values in range [minVal, maxVal).
func (r *RNG) Uniform(n int, minVal, maxVal float64) []float64 {
	dst := make([]float64, n)
	r.FillUniform(dst, minVal, maxVal)
	return dst
}

// Gaussian returns n values from a standard normal distribution.
func (r *RNG) Gaussian(n int) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	dst := make([]float64, n)
	for i := range dst {
		dst[i] = r.rand.NormFloat64()
	}
	return dst
}

// Sparse returns n values of which roughly density*n are drawn from
// [minVal, maxVal) and the rest are zero. minVal should be positive (or
// maxVal negative) so that drawn values are never zero themselves.
func (r *RNG) Sparse(n int, density, minVal, maxVal float64) []float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	dst := make([]float64, n)
	span := maxVal - minVal
	for i := range dst {
		if r.rand.Float64() < density {
			dst[i] = minVal + r.rand.Float64()*span
		}
	}
	return dst
}

// Indices returns k distinct indices in [0,n) in random order.
func (r *RNG) Indices(n, k int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	perm := r.rand.Perm(n)
	if k > n {
		k = n
	}
	return perm[:k]
}
