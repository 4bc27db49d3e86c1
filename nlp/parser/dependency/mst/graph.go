package mst

import (
	"fmt"

	"github.com/irinya/cmsc723-group9-p2/alg/featurevector"
	"github.com/irinya/cmsc723-group9-p2/alg/graph"
	"github.com/irinya/cmsc723-group9-p2/alg/perceptron"
)

// Edge is a candidate arc of a complete graph
type Edge struct {
	graph.Pair
	Features featurevector.Sparse
	Weight   float64
}

// CompleteGraph connects every pair of nodes of a sentence. Each unordered
// pair is stored once, smaller index first, in lexicographic order.
type CompleteGraph struct {
	numNodes int
	edges    []*Edge
}

var (
	_ graph.WeightedUndirectedGraph = &CompleteGraph{}
	_ perceptron.FeaturedGraph      = &CompleteGraph{}
)

func NewCompleteGraph(numNodes int) *CompleteGraph {
	var numEdges int
	if numNodes > 1 {
		numEdges = numNodes * (numNodes - 1) / 2
	}
	return &CompleteGraph{
		numNodes: numNodes,
		edges:    make([]*Edge, 0, numEdges),
	}
}

// index of the canonical pair (i,j), i < j, in lexicographic order
func (g *CompleteGraph) index(p graph.Pair) int {
	c := p.Canonical()
	i, j := c[0], c[1]
	if i < 0 || j >= g.numNodes || i == j {
		panic(fmt.Sprintf("Edge %v not in complete graph of %d nodes", p, g.numNodes))
	}
	return i*(2*g.numNodes-i-1)/2 + (j - i - 1)
}

func (g *CompleteGraph) NumberOfVertices() int {
	return g.numNodes
}

func (g *CompleteGraph) NumberOfEdges() int {
	return len(g.edges)
}

func (g *CompleteGraph) Edges() []*Edge {
	return g.edges
}

func (g *CompleteGraph) GetEdges() []graph.Pair {
	pairs := make([]graph.Pair, len(g.edges))
	for i, edge := range g.edges {
		pairs[i] = edge.Pair
	}
	return pairs
}

// GetEdge looks up the edge between i and j in either orientation
func (g *CompleteGraph) GetEdge(i, j int) *Edge {
	return g.edges[g.index(graph.Pair{i, j})]
}

func (g *CompleteGraph) Weight(p graph.Pair) float64 {
	return g.GetEdge(p[0], p[1]).Weight
}

func (g *CompleteGraph) EdgeFeatures(p graph.Pair) featurevector.Sparse {
	return g.GetEdge(p[0], p[1]).Features
}

// TreeScore sums the current weights of the edges of t
func (g *CompleteGraph) TreeScore(t *graph.Tree) float64 {
	return graph.TreeWeight(g, t)
}
