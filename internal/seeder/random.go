package seeder

import "github.com/brianvoe/gofakeit/v6"

// Random is the source of every random choice made during a seeding run.
type Random interface {
	// IntBetween returns a uniformly distributed int in [low, high).
	IntBetween(low, high int) int
}

// fakerRandom draws from gofakeit's process-wide generator. It is never
// seeded explicitly, so two runs produce different data.
type fakerRandom struct{}

// DefaultRandom returns the production randomness provider.
func DefaultRandom() Random {
	return fakerRandom{}
}

func (fakerRandom) IntBetween(low, high int) int {
	if high-low <= 1 {
		return low
	}
	return gofakeit.Number(low, high-1)
}

func pick[T any](rnd Random, items []T) T {
	return items[rnd.IntBetween(0, len(items))]
}
