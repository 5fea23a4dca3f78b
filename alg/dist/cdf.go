package dist

import (
	"fmt"
	"math"
	"sort"
)

// Bound is one entry of a CDF: the key and the cumulative mass up to and
// including it.
type Bound[K comparable] struct {
	Key K
	Cum float64
}

type CDF[K comparable] []Bound[K]

// Total is the final cumulative bound, 0 for an empty CDF.
func (c CDF[K]) Total() float64 {
	if len(c) == 0 {
		return 0
	}
	return c[len(c)-1].Cum
}

func (c CDF[K]) Keys() []K {
	keys := make([]K, len(c))
	for i, b := range c {
		keys[i] = b.Key
	}
	return keys
}

// Prob returns the probability mass of the i-th entry.
func (c CDF[K]) Prob(i int) float64 {
	if i == 0 {
		return c[0].Cum / c.Total()
	}
	return (c[i].Cum - c[i-1].Cum) / c.Total()
}

// Validate checks that bounds are non-decreasing and end in a positive
// total.
func (c CDF[K]) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("%w: no entries", ErrInvalidDistribution)
	}
	prev := 0.0
	for i, b := range c {
		if math.IsNaN(b.Cum) || b.Cum < prev {
			return fmt.Errorf("%w: bound %d (%v) below previous (%v)", ErrInvalidDistribution, i, b.Cum, prev)
		}
		prev = b.Cum
	}
	if !(prev > 0) {
		return fmt.Errorf("%w: non-positive total %v", ErrInvalidDistribution, prev)
	}
	return nil
}

// FromCounts builds a normalized CDF. Keys are accumulated by descending
// count, ties ordered by compare.
func FromCounts[K comparable](counts Counts[K], compare func(a, b K) int) (CDF[K], error) {
	if len(counts) == 0 {
		return nil, ErrEmptyDistribution
	}
	keys := make([]K, 0, len(counts))
	for k, v := range counts {
		if v <= 0 {
			return nil, fmt.Errorf("%w: non-positive count %d for %v", ErrInvalidDistribution, v, k)
		}
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ci, cj := counts[keys[i]], counts[keys[j]]
		if ci != cj {
			return ci > cj
		}
		return compare(keys[i], keys[j]) < 0
	})
	var tot int
	cdf := make(CDF[K], len(keys))
	for i, k := range keys {
		tot += counts[k]
		cdf[i] = Bound[K]{k, float64(tot)}
	}
	// normalize
	for i := range cdf {
		cdf[i].Cum /= float64(tot)
	}
	return cdf, nil
}

// BuildCDFs applies FromCounts to every sub-table of a nested count table.
func BuildCDFs[G, K comparable](counts map[G]Counts[K], compare func(a, b K) int) (map[G]CDF[K], error) {
	cdfs := make(map[G]CDF[K], len(counts))
	for key, sub := range counts {
		cdf, err := FromCounts(sub, compare)
		if err != nil {
			return nil, fmt.Errorf("building distribution for %v: %w", key, err)
		}
		cdfs[key] = cdf
	}
	return cdfs, nil
}
