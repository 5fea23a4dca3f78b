package dist

import "errors"

var (
	// ErrEmptyDistribution indicates a CDF build over zero total mass.
	ErrEmptyDistribution = errors.New("dist: empty distribution")
	// ErrInvalidDistribution indicates a malformed CDF or count table.
	ErrInvalidDistribution = errors.New("dist: invalid distribution")
)
