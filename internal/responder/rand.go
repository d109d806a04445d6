package responder

import (
	"math/rand/v2"
	"sync"
)

// Rand picks phrase variants. IntN returns a value in [0, n).
type Rand interface {
	IntN(n int) int
}

// lockedRand makes a *rand.Rand safe for concurrent use.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRand returns a goroutine-safe source seeded from the runtime.
func NewRand() Rand {
	return NewSeededRand(rand.Uint64(), rand.Uint64())
}

// NewSeededRand returns a goroutine-safe source with a fixed PCG seed, so
// the same seed yields the same sequence of picks.
func NewSeededRand(seed1, seed2 uint64) Rand {
	return &lockedRand{r: rand.New(rand.NewPCG(seed1, seed2))}
}

func (l *lockedRand) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}
