package types

import (
	"errors"
	"fmt"

	"github.com/irinya/cmsc723-group9-p2/alg/graph"
)

var ErrNotATree = errors.New("dependency arcs do not form a spanning tree")

// DependencyGraph is an annotated sentence: its nodes, root first, and the
// unlabeled head-modifier arcs between them. Arc direction is recorded but
// not modeled; arcs are compared as undirected edges.
type DependencyGraph struct {
	Nodes []Node
	Arcs  *graph.Tree
}

var _ TaggedSentence = &DependencyGraph{}

// NewDependencyGraph creates a graph with the root sentinel followed by the
// given words, renumbered 1..len(words), and no arcs
func NewDependencyGraph(words []Node) *DependencyGraph {
	nodes := make([]Node, 0, len(words)+1)
	nodes = append(nodes, NewRootNode())
	for i, word := range words {
		word.ID = i + 1
		nodes = append(nodes, word)
	}
	return &DependencyGraph{
		Nodes: nodes,
		Arcs:  graph.NewTree(len(nodes)),
	}
}

func (d *DependencyGraph) NumberOfNodes() int {
	return len(d.Nodes)
}

func (d *DependencyGraph) NumberOfArcs() int {
	return d.Arcs.NumberOfEdges()
}

func (d *DependencyGraph) GetNode(id int) Node {
	return d.Nodes[id]
}

// AddArc attaches modifier to head
func (d *DependencyGraph) AddArc(head, modifier int) error {
	if head < 0 || head >= len(d.Nodes) {
		return fmt.Errorf("head %d out of range [0,%d)", head, len(d.Nodes))
	}
	if modifier <= ROOT_ID || modifier >= len(d.Nodes) {
		return fmt.Errorf("modifier %d out of range [1,%d)", modifier, len(d.Nodes))
	}
	if head == modifier {
		return fmt.Errorf("node %d is its own head", head)
	}
	if !d.Arcs.AddEdge(head, modifier) {
		return fmt.Errorf("duplicate arc between %d and %d", head, modifier)
	}
	return nil
}

// Gold returns the annotated tree
func (d *DependencyGraph) Gold() *graph.Tree {
	return d.Arcs
}

// Validate checks that the arcs connect every node with exactly n-1 edges
func (d *DependencyGraph) Validate() error {
	if len(d.Nodes) == 1 && d.Arcs.NumberOfEdges() == 0 {
		return nil
	}
	if !d.Arcs.IsSpanningTree() {
		return fmt.Errorf("%w: %d nodes, %d arcs", ErrNotATree, len(d.Nodes), d.Arcs.NumberOfEdges())
	}
	return nil
}

func (d *DependencyGraph) Tokens() []string {
	tokens := make([]string, len(d.Nodes))
	for i, node := range d.Nodes {
		tokens[i] = node.Word
	}
	return tokens
}

func (d *DependencyGraph) TaggedTokens() []TaggedToken {
	tokens := make([]TaggedToken, len(d.Nodes))
	for i, node := range d.Nodes {
		tokens[i] = TaggedToken{node.Word, node.POS}
	}
	return tokens
}

// ArcString renders an arc with the words it connects, e.g. "( the <-> monster )"
func (d *DependencyGraph) ArcString(p graph.Pair) string {
	return fmt.Sprintf("( %s <-> %s )", d.Nodes[p.From()].Word, d.Nodes[p.To()].Word)
}
