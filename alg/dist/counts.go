// Package dist turns frequency counts into cumulative distributions and
// draws keys from them.
//
// Counts are plain maps from key to a positive integer. A CDF is an ordered
// slice of (key, cumulative probability) bounds whose last bound is the
// total mass (1.0 once normalized). The order of a built CDF is fixed:
// descending count, ties broken by a caller-supplied comparator, so the
// same counts always produce the same CDF.
package dist

// Counts maps keys to positive occurrence counts.
type Counts[K comparable] map[K]int

// Add increments key by n.
func (c Counts[K]) Add(key K, n int) {
	c[key] += n
}

// Merge adds other into c element-wise.
func (c Counts[K]) Merge(other Counts[K]) {
	for k, v := range other {
		c[k] += v
	}
}

func (c Counts[K]) Total() int {
	var total int
	for _, v := range c {
		total += v
	}
	return total
}

func (c Counts[K]) Copy() Counts[K] {
	retval := make(Counts[K], len(c))
	for k, v := range c {
		retval[k] = v
	}
	return retval
}
