package graph

import (
	"math"

	"gonum.org/v1/gonum/floats"
	gonum "gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
)

// negatedView hands a private, negated copy of a weighted graph to a
// minimum spanning tree routine. Edges are listed in the source graph's
// canonical order so that equal weights are always resolved the same way.
type negatedView struct {
	*simple.WeightedUndirectedGraph
	ordered []gonum.WeightedEdge
}

func (v *negatedView) WeightedEdges() gonum.WeightedEdges {
	return iterator.NewOrderedWeightedEdges(v.ordered)
}

func newNegatedView(g WeightedUndirectedGraph) *negatedView {
	n := g.NumberOfVertices()
	view := &negatedView{
		WeightedUndirectedGraph: simple.NewWeightedUndirectedGraph(0, math.Inf(1)),
	}
	for i := 0; i < n; i++ {
		view.AddNode(simple.Node(i))
	}
	pairs := g.GetEdges()
	view.ordered = make([]gonum.WeightedEdge, len(pairs))
	for i, pair := range pairs {
		edge := simple.WeightedEdge{
			F: simple.Node(pair[0]),
			T: simple.Node(pair[1]),
			W: -g.Weight(pair),
		}
		view.SetWeightedEdge(edge)
		view.ordered[i] = edge
	}
	return view
}

// MaxSpanningTree returns a spanning tree of g with maximal total weight,
// computed as the minimum spanning tree of g with negated weights. g is
// left untouched. Graphs with fewer than two vertices yield an empty tree.
func MaxSpanningTree(g WeightedUndirectedGraph) *Tree {
	n := g.NumberOfVertices()
	tree := NewTree(n)
	if n < 2 {
		return tree
	}
	view := newNegatedView(g)
	mst := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	path.Kruskal(mst, view)
	for _, pair := range g.GetEdges() {
		if mst.HasEdgeBetween(int64(pair[0]), int64(pair[1])) {
			tree.AddEdge(pair[0], pair[1])
		}
	}
	return tree
}

// TreeWeight sums the weights g assigns to the edges of t
func TreeWeight(g WeightedUndirectedGraph, t *Tree) float64 {
	edges := t.Edges()
	weights := make([]float64, len(edges))
	for i, edge := range edges {
		weights[i] = g.Weight(edge)
	}
	return floats.Sum(weights)
}
