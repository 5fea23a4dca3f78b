package graph

import "github.com/johndpope/tgen/util"

type BasicVertex int

// BasicDirectedEdge is an (id, from, to) triple
type BasicDirectedEdge [3]int

var _ Vertex = *new(BasicVertex)
var _ DirectedEdge = BasicDirectedEdge{}

func (b BasicVertex) ID() int {
	return int(b)
}

func (b BasicVertex) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(BasicVertex)
	return ok && b == other
}

func (e BasicDirectedEdge) ID() int {
	return e[0]
}

func (e BasicDirectedEdge) From() int {
	return e[1]
}

func (e BasicDirectedEdge) To() int {
	return e[2]
}

func (e BasicDirectedEdge) Vertices() []int {
	return []int{e[1], e[2]}
}

func (e BasicDirectedEdge) Equal(otherEq util.Equaler) bool {
	other, ok := otherEq.(BasicDirectedEdge)
	return ok && e[1] == other[1] && e[2] == other[2]
}

// Outgoing indexes the directed edges of g by their source vertex,
// preserving edge order
func Outgoing(g DirectedGraph) map[int][]DirectedEdge {
	outgoing := make(map[int][]DirectedEdge, g.NumberOfVertices())
	for _, edgeID := range g.GetEdges() {
		edge := g.GetDirectedEdge(edgeID)
		outgoing[edge.From()] = append(outgoing[edge.From()], edge)
	}
	return outgoing
}

// PreOrder returns the vertices reachable from root in depth-first
// pre-order, visiting children in edge order
func PreOrder(g DirectedGraph, root int) []int {
	outgoing := Outgoing(g)
	retval := make([]int, 0, g.NumberOfVertices())
	agenda := []int{root}
	for len(agenda) > 0 {
		cur := agenda[len(agenda)-1]
		agenda = agenda[:len(agenda)-1]
		retval = append(retval, cur)
		out := outgoing[cur]
		for i := len(out) - 1; i >= 0; i-- {
			agenda = append(agenda, out[i].To())
		}
	}
	return retval
}
