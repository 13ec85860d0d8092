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

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.r.Float64() < p
}

// Intn returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// FillSpecies writes -1 (empty) or a species id in [0, species) into every
// slot of buf. Each slot is occupied with probability density.
func FillSpecies(r *RNG, buf []int, density float64, species int) {
	for i := range buf {
		if species <= 0 || !r.Chance(density) {
			buf[i] = -1
			continue
		}
		buf[i] = r.Intn(species)
	}
}
