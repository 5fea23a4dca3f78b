// Package tree implements candidate dependency trees as a flat arena of
// nodes. Node ids are indexes into the arena and never change, so a copy of
// a tree addresses the same node by the same id.
package tree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/johndpope/tgen/alg/graph"
	"github.com/johndpope/tgen/nlp/types"
	"github.com/johndpope/tgen/util"
)

const ROOT_ID = 0

var (
	ErrBadHead = errors.New("tree: head out of range")
	ErrCycle   = errors.New("tree: node not reachable from root")
)

type Node struct {
	Formeme types.Formeme
	Lemma   string
	Parent  int // -1 for the root
}

// Tree is a dependency tree with surface word order. The root is node 0.
type Tree struct {
	nodes []Node
	kids  []int // number of children per node
	order []int // node ids in surface order
	pos   []int // inverse of order
}

var _ types.CandidateTree = &Tree{}

func New(formeme types.Formeme, lemma string) *Tree {
	return &Tree{
		nodes: []Node{{formeme, lemma, -1}},
		kids:  []int{0},
		order: []int{ROOT_ID},
		pos:   []int{0},
	}
}

// FromHeads builds a tree from nodes listed in surface order. heads[i] is
// the 1-based index of the parent of node i+1, 0 for the root. The
// technical root is placed first in surface order.
func FromHeads(root Node, formemes []types.Formeme, lemmas []string, heads []int) (*Tree, error) {
	if len(formemes) != len(lemmas) || len(lemmas) != len(heads) {
		return nil, fmt.Errorf("tree: mismatched column lengths %d/%d/%d", len(formemes), len(lemmas), len(heads))
	}
	t := New(root.Formeme, root.Lemma)
	for i := range heads {
		if heads[i] < 0 || heads[i] > len(heads) || heads[i] == i+1 {
			return nil, fmt.Errorf("%w: node %d has head %d", ErrBadHead, i+1, heads[i])
		}
		t.nodes = append(t.nodes, Node{formemes[i], lemmas[i], heads[i]})
		t.kids = append(t.kids, 0)
		t.order = append(t.order, i+1)
		t.pos = append(t.pos, i+1)
	}
	for i := 1; i < len(t.nodes); i++ {
		t.kids[t.nodes[i].Parent]++
	}
	if reached := len(graph.PreOrder(t, ROOT_ID)); reached != len(t.nodes) {
		return nil, fmt.Errorf("%w: %d of %d nodes reached", ErrCycle, reached, len(t.nodes))
	}
	return t, nil
}

func (t *Tree) check(id int) {
	if id < 0 || id >= len(t.nodes) {
		panic(fmt.Sprintf("tree: node %d out of range [0,%d)", id, len(t.nodes)))
	}
}

func (t *Tree) Root() int {
	return ROOT_ID
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

func (t *Tree) Node(id int) Node {
	t.check(id)
	return t.nodes[id]
}

func (t *Tree) Ordered() []int {
	retval := make([]int, len(t.order))
	copy(retval, t.order)
	return retval
}

func (t *Tree) Formeme(id int) types.Formeme {
	t.check(id)
	return t.nodes[id].Formeme
}

func (t *Tree) Lemma(id int) string {
	t.check(id)
	return t.nodes[id].Lemma
}

func (t *Tree) Parent(id int) int {
	t.check(id)
	return t.nodes[id].Parent
}

// Children returns the children of id in surface order.
func (t *Tree) Children(id int) []int {
	t.check(id)
	retval := make([]int, 0, t.kids[id])
	for _, n := range t.order {
		if t.nodes[n].Parent == id {
			retval = append(retval, n)
		}
	}
	return retval
}

func (t *Tree) NumChildren(id int) int {
	t.check(id)
	return t.kids[id]
}

// IsAfterParent reports whether id follows its parent in surface order.
// The root is never after anything.
func (t *Tree) IsAfterParent(id int) bool {
	t.check(id)
	parent := t.nodes[id].Parent
	if parent < 0 {
		return false
	}
	return t.pos[id] > t.pos[parent]
}

// AddChild appends a new leaf under parent, placed last in surface order.
func (t *Tree) AddChild(parent int, formeme types.Formeme, lemma string) int {
	t.check(parent)
	id := len(t.nodes)
	t.nodes = append(t.nodes, Node{formeme, lemma, parent})
	t.kids = append(t.kids, 0)
	t.kids[parent]++
	t.order = append(t.order, id)
	t.pos = append(t.pos, len(t.order)-1)
	return id
}

// ShiftBefore moves node (alone, not its subtree) to directly precede anchor.
func (t *Tree) ShiftBefore(node, anchor int) {
	t.shift(node, anchor, 0)
}

// ShiftAfter moves node (alone, not its subtree) to directly follow anchor.
func (t *Tree) ShiftAfter(node, anchor int) {
	t.shift(node, anchor, 1)
}

func (t *Tree) shift(node, anchor, offset int) {
	t.check(node)
	t.check(anchor)
	if node == anchor {
		return
	}
	order := make([]int, 0, len(t.order))
	for _, n := range t.order {
		if n == node {
			continue
		}
		if n == anchor && offset == 0 {
			order = append(order, node)
		}
		order = append(order, n)
		if n == anchor && offset == 1 {
			order = append(order, node)
		}
	}
	t.order = order
	for i, n := range t.order {
		t.pos[n] = i
	}
}

// Copy returns an independent copy; no slice is shared with t.
func (t *Tree) Copy() *Tree {
	c := &Tree{
		nodes: make([]Node, len(t.nodes)),
		kids:  make([]int, len(t.kids)),
		order: make([]int, len(t.order)),
		pos:   make([]int, len(t.pos)),
	}
	copy(c.nodes, t.nodes)
	copy(c.kids, t.kids)
	copy(c.order, t.order)
	copy(c.pos, t.pos)
	return c
}

func (t *Tree) Clone() types.CandidateTree {
	return t.Copy()
}

// Equal compares node labels, structure and surface order.
func (t *Tree) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(*Tree)
	if !ok || other == nil || len(t.nodes) != len(other.nodes) {
		return false
	}
	for i := range t.nodes {
		if t.nodes[i] != other.nodes[i] || t.order[i] != other.order[i] {
			return false
		}
	}
	return true
}

// String renders the tree bracketed by heads, children in surface order and
// '*' marking the head's own position among them, e.g.
// <root>/<root>(* be/v:fin(it/n:subj * dog/n:obj))
func (t *Tree) String() string {
	var b strings.Builder
	t.write(&b, ROOT_ID)
	return b.String()
}

func (t *Tree) write(b *strings.Builder, id int) {
	node := t.nodes[id]
	b.WriteString(node.Lemma)
	b.WriteByte('/')
	b.WriteString(string(node.Formeme))
	if t.kids[id] == 0 {
		return
	}
	b.WriteByte('(')
	selfWritten := false
	for i, child := range t.Children(id) {
		if i > 0 {
			b.WriteByte(' ')
		}
		if !selfWritten && t.pos[child] > t.pos[id] {
			b.WriteString("* ")
			selfWritten = true
		}
		t.write(b, child)
	}
	if !selfWritten {
		b.WriteString(" *")
	}
	b.WriteByte(')')
}
