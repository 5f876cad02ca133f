package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/dynvec"
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

// Size returns a pseudo-random length in [minVal, maxVal].
func (r *RNG) Size(minVal, maxVal int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return minVal + r.rand.Intn(maxVal-minVal+1)
}

// FillRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call.
func FillRange[T dynvec.Element](r *RNG, dst []T, minVal, maxVal T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	lo := float64(minVal)
	span := float64(maxVal) - lo
	for i := range dst {
		dst[i] = T(lo + r.rand.Float64()*span)
	}
}

// RandomVector returns a vector of the given size with elements drawn from
// [minVal, maxVal). It panics if size is not a valid vector length.
func RandomVector[T dynvec.Element](r *RNG, size int, minVal, maxVal T) *dynvec.Vector[T] {
	vals := make([]T, size)
	FillRange(r, vals, minVal, maxVal)

	v, err := dynvec.FromSlice(vals)
	if err != nil {
		panic(err)
	}
	return v
}

// RandomVectors returns num vectors of the same size.
func RandomVectors[T dynvec.Element](r *RNG, num, size int, minVal, maxVal T) []*dynvec.Vector[T] {
	vectors := make([]*dynvec.Vector[T], num)
	for i := range vectors {
		vectors[i] = RandomVector(r, size, minVal, maxVal)
	}
	return vectors
}
