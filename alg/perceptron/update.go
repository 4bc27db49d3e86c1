package perceptron

import (
	"github.com/irinya/cmsc723-group9-p2/alg/graph"
)

// StructuredUpdate penalizes the features of every predicted edge missing
// from gold and rewards the features of every gold edge missing from the
// prediction, each by exactly one unit.
func StructuredUpdate(m Model, g FeaturedGraph, gold, predicted *graph.Tree) (penalized, rewarded int) {
	for _, edge := range predicted.Edges() {
		if !gold.HasEdge(edge.From(), edge.To()) {
			m.Update(g.EdgeFeatures(edge), -1.0)
			penalized++
		}
	}
	for _, edge := range gold.Edges() {
		if !predicted.HasEdge(edge.From(), edge.To()) {
			m.Update(g.EdgeFeatures(edge), 1.0)
			rewarded++
		}
	}
	return
}
