package quiz

import (
	"math/rand"
	"sync"
	"time"
)

// Chooser returns an index in [0, n). n is always positive.
type Chooser func(n int) int

// RandomChooser picks uniformly using r. Safe for concurrent use.
func RandomChooser(r *rand.Rand) Chooser {
	var mu sync.Mutex
	return func(n int) int {
		mu.Lock()
		defer mu.Unlock()
		return r.Intn(n)
	}
}

// NewRandomChooser returns a chooser seeded from the clock
func NewRandomChooser() Chooser {
	return RandomChooser(rand.New(rand.NewSource(time.Now().UnixNano())))
}
