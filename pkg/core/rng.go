package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillThreshold sets each cell to 1 when a uniform draw in [0, 1) is strictly
// greater than threshold, and to 0 otherwise.
func FillThreshold(r *rand.Rand, buf []uint8, threshold float64) {
	for i := range buf {
		if r.Float64() > threshold {
			buf[i] = 1
		} else {
			buf[i] = 0
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
