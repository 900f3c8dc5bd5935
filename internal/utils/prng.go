// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so that a whole session can be replayed
// from one seed.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a service with the given seed. A zero seed uses the
// current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a random int in [0, n). n <= 0 yields 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Int63n returns a random int64 in [0, n). n <= 0 yields 0.
func (s *PRNGService) Int63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return s.rng.Int63n(n)
}

// Chance reports true with probability p.
func (s *PRNGService) Chance(p float64) bool {
	return s.rng.Float64() < p
}
