package engine

import (
	"math/rand"
	"time"
)

// Rand is the randomness source used for target selection
// *rand.Rand satisfies it; tests inject fixed sequences
type Rand interface {
	// Intn returns a value in [0, n)
	Intn(n int) int
}

// NewRand creates a seeded source, seed 0 uses the current time
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
