package source

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ghalamif/PacketFlow/internal/ports"
)

const charset = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Rand is the synthetic data source: each Read fills the buffer with a random
// run of alphanumeric bytes whose length is uniform over [0, len(buf)). A
// zero-length read means "no data this cycle" and is expected behavior, not
// an error. Safe for use from many producers at once.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (s *Rand) Read(buf []byte) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	n := s.rng.Intn(len(buf))
	for i := 0; i < n; i++ {
		buf[i] = charset[s.rng.Intn(len(charset))]
	}
	s.mu.Unlock()

	return n, nil
}

var _ ports.Source = (*Rand)(nil)
