package feed

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Generator picks canned messages uniformly at random.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator returns a generator seeded with seed. A zero seed draws the
// seed from the wall clock.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Next returns a new entry stamped with now.
func (g *Generator) Next(now time.Time) Entry {
	g.mu.Lock()
	idx := g.rng.IntN(len(messages))
	g.mu.Unlock()
	return NewEntry(messages[idx], now)
}
