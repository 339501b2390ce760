package dist

import (
	"math/rand"
	"sync"
	"time"

	"github.com/teranos/cpdgen/errors"
)

// Shared randomness source for all distributions.
//
// math/rand.Rand is not safe for concurrent use, and the parallel generator
// backend samples segments from multiple goroutines, so every draw goes
// through the mutex. Reseed gives reproducible datasets: the same seed and
// the same serial generation order produce the same samples.
var (
	sourceMu sync.Mutex
	source   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// Reseed resets the shared randomness source. Pass a fixed seed before
// generation to make a run reproducible.
func Reseed(seed int64) {
	sourceMu.Lock()
	defer sourceMu.Unlock()
	source = rand.New(rand.NewSource(seed))
}

// draw fills a slice of length n using one locked batch, keeping a single
// segment's values contiguous in the random stream even under the parallel
// backend.
func draw(n int, one func(r *rand.Rand) float64) ([]float64, error) {
	if n < 0 {
		return nil, errors.AssertionFailedf("negative sample count: %d", n)
	}
	values := make([]float64, n)
	sourceMu.Lock()
	defer sourceMu.Unlock()
	for i := range values {
		values[i] = one(source)
	}
	return values, nil
}
