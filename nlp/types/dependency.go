package types

import (
	"github.com/johndpope/tgen/alg/graph"
	"github.com/johndpope/tgen/util"
)

// DepTree is a read-only view of a dependency tree. Nodes are addressed by
// integer ids; edges run from parent to child.
type DepTree interface {
	graph.DirectedGraph
	util.Equaler
	Root() int
	// Ordered returns every node, root included, in surface order
	Ordered() []int
	Formeme(int) Formeme
	Lemma(int) string
	Parent(int) int
	Children(int) []int
	NumChildren(int) int
	IsAfterParent(int) bool
}

// CandidateTree is a DepTree that can grow by one child at a time.
type CandidateTree interface {
	DepTree
	AddChild(parent int, formeme Formeme, lemma string) int
	ShiftBefore(node, anchor int)
	ShiftAfter(node, anchor int)
	Clone() CandidateTree
}

// Entry returns the ChildEntry describing how node attaches to its parent.
func Entry(t DepTree, node int) ChildEntry {
	return ChildEntry{
		Formeme: t.Formeme(node),
		Lemma:   t.Lemma(node),
		Dir:     DirectionOf(t.IsAfterParent(node)),
	}
}
