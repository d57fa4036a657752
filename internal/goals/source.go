package goals

import "math/rand/v2"

// Source is the randomness the draw functions consume. *rand.Rand
// satisfies it for reproducible draws in tests, but is not safe for
// concurrent use; anything shared between requests should be a
// LockedSource instead.
type Source interface {
	IntN(n int) int
}

// LockedSource draws from the process-wide math/rand/v2 generator,
// which serializes access internally.
type LockedSource struct{}

func (LockedSource) IntN(n int) int { return rand.IntN(n) }
