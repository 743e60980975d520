package application

import (
	"math/rand"

	"github.com/grafnet-dev/hotel-management-extension/internal/domain"
)

// maxGenerateAttempts bounds the collision retry loop of RandomGenerator
const maxGenerateAttempts = 1000

// SequenceGenerator hands out store-scoped monotonically increasing ids.
// Collisions are structurally impossible once the sequence is seeded above
// every id already in use, which removes the retry failure mode of the
// random generator entirely.
type SequenceGenerator struct {
	next int
}

// NewSequenceGenerator creates a generator starting at 1
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{next: 1}
}

// Seed raises the sequence above every id in existing. Ids already below the
// current position are ignored.
func (g *SequenceGenerator) Seed(existing []int) {
	for _, id := range existing {
		if id >= g.next {
			g.next = id + 1
		}
	}
}

// Next returns the next free id
func (g *SequenceGenerator) Next() int {
	id := g.next
	g.next++
	return id
}

// RandomGenerator draws ids from a wide numeric space and retries on
// collision against the supplied id set. Kept for callers that need ids
// without a shared sequence; after maxGenerateAttempts collisions it gives
// up with domain.ErrGenerationExhausted.
type RandomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a generator backed by the given source
func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns an id not present in existing
func (g *RandomGenerator) Generate(existing []int) (int, error) {
	taken := make(map[int]struct{}, len(existing))
	for _, id := range existing {
		taken[id] = struct{}{}
	}

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		id := 100_000 + g.rng.Intn(900_000)
		if _, ok := taken[id]; !ok {
			return id, nil
		}
	}
	return 0, domain.ErrGenerationExhausted
}
