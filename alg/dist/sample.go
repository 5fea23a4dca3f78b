package dist

import (
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"
)

// Sampler is a mutex-guarded random source, safe to share between
// goroutines. A fixed seed gives a reproducible sequence of draws as long as
// draws are made in a fixed order.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler seeds a sampler; seed 0 seeds from the clock.
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0,1).
func (s *Sampler) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// Sample draws one key from cdf.
func Sample[K comparable](s *Sampler, cdf CDF[K]) (K, error) {
	return Pick(cdf, s.Float64())
}

// Pick maps a uniform value u in [0,1) onto cdf: it scales u by the total
// mass and returns the first key whose bound strictly exceeds it.
func Pick[K comparable](cdf CDF[K], u float64) (K, error) {
	var zero K
	total := cdf.Total()
	if len(cdf) == 0 || !(total > 0) {
		return zero, fmt.Errorf("%w: nothing to sample from", ErrInvalidDistribution)
	}
	r := u * total
	i := sort.Search(len(cdf), func(i int) bool { return cdf[i].Cum > r })
	if i == len(cdf) {
		return zero, fmt.Errorf("%w: no bound exceeds %v", ErrInvalidDistribution, r)
	}
	return cdf[i].Key, nil
}
