package randgen

import (
	"context"

	"go.uber.org/zap"

	"github.com/johndpope/tgen/nlp/types"
)

// Generate grows a copy of root top-down: each node, in breadth-first
// order, draws its number of children and then draws each child from the
// merged distribution of its formeme. Children are placed directly before
// or after their parent. Growth stops when the tree reaches the configured
// maximum number of nodes.
func (g *Generator) Generate(ctx context.Context, da types.DA, root types.CandidateTree) (types.CandidateTree, error) {
	m, err := g.Model()
	if err != nil {
		return nil, err
	}
	cdfs, err := m.MergedCDFs(da)
	if err != nil {
		return nil, err
	}
	t := root.Clone()
	agenda := t.Ordered()
	for len(agenda) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		node := agenda[0]
		agenda = agenda[1:]
		formeme := t.Formeme(node)
		cdf, exists := cdfs[formeme]
		if !exists {
			continue
		}
		numChildren, err := g.NumberOfChildren(formeme)
		if err != nil {
			return nil, err
		}
		if free := m.MaxChildren[formeme] - t.NumChildren(node); numChildren > free {
			numChildren = free
		}
		for i := 0; i < numChildren; i++ {
			if t.NumberOfVertices() >= g.opts.maxNodes {
				g.opts.logger.Debug("tree size limit reached", zap.Int("nodes", g.opts.maxNodes))
				return t, nil
			}
			entry, err := g.BestChild(cdf)
			if err != nil {
				return nil, err
			}
			child := t.AddChild(node, entry.Formeme, entry.Lemma)
			if entry.Dir == types.After {
				t.ShiftAfter(child, node)
			} else {
				t.ShiftBefore(child, node)
			}
			agenda = append(agenda, child)
		}
	}
	return t, nil
}
