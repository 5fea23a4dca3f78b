// Package randgen is a random tree generator following training data
// distributions. Training collects, for every dialogue act item, counts of
// the (formeme, lemma, direction) children observed under each parent
// formeme, together with a histogram of the number of children per
// formeme. Generation merges the counts of the items of one dialogue act
// into per-formeme distributions, then either samples trees from them or
// enumerates every one-node expansion of a candidate tree.
package randgen

import (
	"cmp"

	"github.com/johndpope/tgen/alg/dist"
	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
)

// AttachmentCounts maps item -> parent formeme -> child entry -> count.
type AttachmentCounts map[types.DAI]map[types.Formeme]dist.Counts[types.ChildEntry]

func (a AttachmentCounts) Add(dai types.DAI, parent types.Formeme, entry types.ChildEntry, n int) {
	byParent, exists := a[dai]
	if !exists {
		byParent = make(map[types.Formeme]dist.Counts[types.ChildEntry])
		a[dai] = byParent
	}
	counts, exists := byParent[parent]
	if !exists {
		counts = make(dist.Counts[types.ChildEntry])
		byParent[parent] = counts
	}
	counts.Add(entry, n)
}

// Merge adds other into a element-wise.
func (a AttachmentCounts) Merge(other AttachmentCounts) {
	for dai, byParent := range other {
		for parent, counts := range byParent {
			for entry, n := range counts {
				a.Add(dai, parent, entry, n)
			}
		}
	}
}

// ChildCounts maps formeme -> number of children -> count.
type ChildCounts map[types.Formeme]dist.Counts[int]

func (c ChildCounts) Add(formeme types.Formeme, numChildren, n int) {
	counts, exists := c[formeme]
	if !exists {
		counts = make(dist.Counts[int])
		c[formeme] = counts
	}
	counts.Add(numChildren, n)
}

func (c ChildCounts) Merge(other ChildCounts) {
	for formeme, counts := range other {
		for numChildren, n := range counts {
			c.Add(formeme, numChildren, n)
		}
	}
}

// MaxChildren caps the number of children a node of each formeme may have.
type MaxChildren map[types.Formeme]int

func (c ChildCounts) MaxChildren() MaxChildren {
	retval := make(MaxChildren, len(c))
	for formeme, counts := range c {
		keys := make([]int, 0, len(counts))
		for numChildren := range counts {
			keys = append(keys, numChildren)
		}
		retval[formeme] = util.MaxInt(keys)
	}
	return retval
}

// Model holds the three learned tables. A model is never modified after it
// is built; training always produces a new one.
type Model struct {
	FormCounts  AttachmentCounts
	ChildCDFs   map[types.Formeme]dist.CDF[int]
	MaxChildren MaxChildren
}

// NewModel derives the child-count distributions and caps from the raw
// histogram.
func NewModel(formCounts AttachmentCounts, childCounts ChildCounts) (*Model, error) {
	childCDFs, err := dist.BuildCDFs(childCounts, cmp.Compare[int])
	if err != nil {
		return nil, err
	}
	return &Model{
		FormCounts:  formCounts,
		ChildCDFs:   childCDFs,
		MaxChildren: childCounts.MaxChildren(),
	}, nil
}

// MergedCounts sums the attachment counts of every item of da.
func (m *Model) MergedCounts(da types.DA) (map[types.Formeme]dist.Counts[types.ChildEntry], error) {
	merged := make(map[types.Formeme]dist.Counts[types.ChildEntry])
	for _, dai := range da {
		byParent, exists := m.FormCounts[dai]
		if !exists {
			return nil, &UnknownItemError{dai}
		}
		for parent, counts := range byParent {
			target, exists := merged[parent]
			if !exists {
				target = make(dist.Counts[types.ChildEntry], len(counts))
				merged[parent] = target
			}
			target.Merge(counts)
		}
	}
	return merged, nil
}

// MergedCDFs returns, per parent formeme, the distribution over child
// entries given all items of da. The result does not depend on item order.
func (m *Model) MergedCDFs(da types.DA) (map[types.Formeme]dist.CDF[types.ChildEntry], error) {
	merged, err := m.MergedCounts(da)
	if err != nil {
		return nil, err
	}
	return dist.BuildCDFs(merged, types.ChildEntry.Compare)
}

// Items returns the number of distinct items seen in training.
func (m *Model) Items() int {
	return len(m.FormCounts)
}
