package mst

import (
	"github.com/irinya/cmsc723-group9-p2/alg/graph"
	"github.com/irinya/cmsc723-group9-p2/alg/perceptron"
	nlp "github.com/irinya/cmsc723-group9-p2/nlp/types"
)

// ScoreGraph sets the weight of every edge to the model's score of its
// features. Stale weights are cleared first and never feed the score.
func ScoreGraph(g *CompleteGraph, m perceptron.Model) {
	for _, edge := range g.edges {
		edge.Weight = 0.0
		edge.Weight = m.DotProduct(edge.Features)
	}
}

// Decode returns the maximum spanning tree of a scored graph, leaving the
// graph's weights as they were. The tree is undirected: it is not checked
// to be orientable into a single-rooted arborescence.
func Decode(g *CompleteGraph) *graph.Tree {
	if g.NumberOfVertices() < 2 {
		return graph.NewTree(g.NumberOfVertices())
	}
	return graph.MaxSpanningTree(g)
}

// Parser runs featurize, score and decode for the training loop
type Parser struct{}

var _ perceptron.InstanceDecoder = &Parser{}

func (p *Parser) Decode(instance perceptron.Instance, m perceptron.Model) (perceptron.FeaturedGraph, *graph.Tree) {
	g, predicted := p.Parse(instance.(*nlp.DependencyGraph), m)
	return g, predicted
}

// Parse predicts a tree for sent under m
func (p *Parser) Parse(sent *nlp.DependencyGraph, m perceptron.Model) (*CompleteGraph, *graph.Tree) {
	g := ComputeFullGraph(sent)
	ScoreGraph(g, m)
	return g, Decode(g)
}
