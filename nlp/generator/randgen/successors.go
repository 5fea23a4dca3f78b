package randgen

import (
	"github.com/johndpope/tgen/alg/dist"
	"github.com/johndpope/tgen/nlp/types"
)

// isOpen reports whether node can take another child; formemes without a
// cap are closed.
func isOpen(cand types.DepTree, node int, maxChildren MaxChildren) bool {
	return cand.NumChildren(node) < maxChildren[cand.Formeme(node)]
}

// Expand returns every tree obtained from cand by adding exactly one child
// to one open node. For each open node, in surface order, every child entry
// of the node's distribution yields one successor, in distribution order.
// Successors are independent copies of cand; cand is not modified.
func Expand(cand types.CandidateTree, cdfs map[types.Formeme]dist.CDF[types.ChildEntry], maxChildren MaxChildren) ([]types.CandidateTree, error) {
	nodes := cand.Ordered()
	var res []types.CandidateTree
	for nodeNum, node := range nodes {
		// skip nodes that can't have more children
		if !isOpen(cand, node, maxChildren) {
			continue
		}
		cdf, exists := cdfs[cand.Formeme(node)]
		if !exists {
			return nil, &UnknownFormemeError{cand.Formeme(node)}
		}
		for _, entry := range cdf.Keys() {
			succ := cand.Clone()
			attach := succ.Ordered()[nodeNum]
			child := succ.AddChild(attach, entry.Formeme, entry.Lemma)
			if entry.Dir == types.After {
				succ.ShiftAfter(child, attach)
			} else {
				succ.ShiftBefore(child, attach)
			}
			res = append(res, succ)
		}
	}
	return res, nil
}

// IsClosed reports whether every node of cand is closed: at its cap, or
// without any child entry in cdfs. A node left open only because its
// formeme is missing from cdfs counts as closed here, while Expand fails on
// it with *UnknownFormemeError.
func IsClosed(cand types.DepTree, cdfs map[types.Formeme]dist.CDF[types.ChildEntry], maxChildren MaxChildren) bool {
	for _, node := range cand.Ordered() {
		if isOpen(cand, node, maxChildren) && len(cdfs[cand.Formeme(node)]) > 0 {
			return false
		}
	}
	return true
}
