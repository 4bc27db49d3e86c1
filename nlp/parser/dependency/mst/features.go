package mst

import (
	"strconv"

	"github.com/irinya/cmsc723-group9-p2/alg/featurevector"
	"github.com/irinya/cmsc723-group9-p2/alg/graph"
	nlp "github.com/irinya/cmsc723-group9-p2/nlp/types"
	"github.com/irinya/cmsc723-group9-p2/util"
)

// Feature template prefixes
const (
	WORD_PAIR = "w_pair="
	POS_PAIR  = "p_pair="
	DISTANCE  = "dist="
)

// EdgeFeatures is the feature template of a candidate edge between nodes
// i < j: word pair, part-of-speech pair and exact linear distance
func EdgeFeatures(from, to nlp.Node) featurevector.Sparse {
	return featurevector.NewVectorOfOnesFromFeatures([]featurevector.Feature{
		featurevector.Feature(WORD_PAIR + from.Word + "_" + to.Word),
		featurevector.Feature(POS_PAIR + from.POS + "_" + to.POS),
		featurevector.Feature(DISTANCE + strconv.Itoa(util.AbsInt(from.ID-to.ID))),
	})
}

// ComputeFullGraph builds the complete candidate graph of a sentence with
// features on every edge and all weights at 0
func ComputeFullGraph(sent *nlp.DependencyGraph) *CompleteGraph {
	n := sent.NumberOfNodes()
	g := NewCompleteGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.edges = append(g.edges, &Edge{
				Pair:     graph.NewPair(i, j),
				Features: EdgeFeatures(sent.GetNode(i), sent.GetNode(j)),
			})
		}
	}
	return g
}
