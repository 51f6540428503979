// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"go-core-defense/internal/defs"
)

// PRNGService wraps Go's random generator so the whole game draws from one
// seedable stream. Tests pass a fixed seed for reproducible crit rolls and
// spawn sequences.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed.
// A zero seed falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}

// ChooseWeighted performs a weighted random pick over spawn entries,
// restricted to the given eligibility predicate. It sums the weights of the
// eligible rows, draws inside that range and walks to the matching row.
// Returns false when nothing is eligible.
func (s *PRNGService) ChooseWeighted(entries []defs.SpawnEntry, eligible func(defs.EnemyKind) bool) (defs.EnemyKind, bool) {
	totalWeight := 0
	for _, entry := range entries {
		if eligible(entry.Kind) {
			totalWeight += entry.Weight
		}
	}
	if totalWeight <= 0 {
		return 0, false
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if !eligible(entry.Kind) {
			continue
		}
		if upto+entry.Weight > r {
			return entry.Kind, true
		}
		upto += entry.Weight
	}

	// Unreachable with consistent weights, but keep a sane fallback.
	return entries[len(entries)-1].Kind, true
}
