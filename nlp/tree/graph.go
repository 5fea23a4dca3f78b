package tree

import (
	"github.com/johndpope/tgen/alg/graph"
	"github.com/johndpope/tgen/util"
)

// A tree is a directed graph whose vertices are node ids and whose edges
// run parent to child. Edge i is the incoming arc of node i+1.

var _ graph.DirectedGraph = &Tree{}

func (t *Tree) GetVertices() []int {
	return util.RangeInt(len(t.nodes))
}

func (t *Tree) GetEdges() []int {
	return util.RangeInt(len(t.nodes) - 1)
}

func (t *Tree) GetVertex(n int) graph.Vertex {
	if n < 0 || n >= len(t.nodes) {
		return nil
	}
	return graph.BasicVertex(n)
}

func (t *Tree) GetEdge(n int) graph.Edge {
	edge := t.GetDirectedEdge(n)
	if edge == nil {
		return nil
	}
	return edge
}

// GetDirectedEdge returns nil for an edge id out of range.
func (t *Tree) GetDirectedEdge(n int) graph.DirectedEdge {
	if n < 0 || n >= len(t.nodes)-1 {
		return nil
	}
	child := n + 1
	return graph.BasicDirectedEdge{n, t.nodes[child].Parent, child}
}

func (t *Tree) NumberOfVertices() int {
	return len(t.nodes)
}

func (t *Tree) NumberOfEdges() int {
	return len(t.nodes) - 1
}
