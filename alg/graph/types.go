package graph

import (
	"fmt"
	"strings"
)

// A Pair connects two vertices. Orientation is kept for display only; all
// lookups go through the canonical (smaller index first) form.
type Pair [2]int

var _ Edge = Pair{}

func NewPair(i, j int) Pair {
	if i == j {
		panic(fmt.Sprintf("Self loop on vertex %d", i))
	}
	return Pair{i, j}
}

func (p Pair) From() int {
	return p[0]
}

func (p Pair) To() int {
	return p[1]
}

func (p Pair) Vertices() []int {
	return []int{p[0], p[1]}
}

func (p Pair) Canonical() Pair {
	if p[0] > p[1] {
		return Pair{p[1], p[0]}
	}
	return p
}

func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p[0], p[1])
}

// Tree is a set of undirected edges over vertices 0..n-1. It holds both gold
// and predicted dependency trees; nothing stops it from holding a forest
// until IsSpanningTree says otherwise.
type Tree struct {
	numVertices int
	edges       []Pair
	index       map[Pair]struct{}
}

var _ Graph = &Tree{}

func NewTree(numVertices int) *Tree {
	var capacity int
	if numVertices > 1 {
		capacity = numVertices - 1
	}
	return &Tree{
		numVertices: numVertices,
		edges:       make([]Pair, 0, capacity),
		index:       make(map[Pair]struct{}, capacity),
	}
}

// AddEdge connects i and j, returning false if they were already connected
// by an edge in either orientation.
func (t *Tree) AddEdge(i, j int) bool {
	if i < 0 || j < 0 || i >= t.numVertices || j >= t.numVertices {
		panic(fmt.Sprintf("Edge (%d,%d) out of range for %d vertices", i, j, t.numVertices))
	}
	pair := NewPair(i, j)
	key := pair.Canonical()
	if _, exists := t.index[key]; exists {
		return false
	}
	t.index[key] = struct{}{}
	t.edges = append(t.edges, pair)
	return true
}

// HasEdge is true if i and j are connected, in either orientation
func (t *Tree) HasEdge(i, j int) bool {
	_, exists := t.index[Pair{i, j}.Canonical()]
	return exists
}

// Edges returns the edges in insertion order
func (t *Tree) Edges() []Pair {
	edges := make([]Pair, len(t.edges))
	copy(edges, t.edges)
	return edges
}

func (t *Tree) NumberOfVertices() int {
	return t.numVertices
}

func (t *Tree) NumberOfEdges() int {
	return len(t.edges)
}

// IsSpanningTree checks for exactly n-1 edges connecting all n vertices
func (t *Tree) IsSpanningTree() bool {
	if t.numVertices == 0 {
		return false
	}
	if len(t.edges) != t.numVertices-1 {
		return false
	}
	set := NewDisjointSet(t.numVertices)
	for _, edge := range t.edges {
		if !set.Union(edge[0], edge[1]) {
			return false
		}
	}
	return set.Components() == 1
}

// Equal compares edge sets, ignoring orientation and insertion order
func (t *Tree) Equal(other *Tree) bool {
	if other == nil || t.numVertices != other.numVertices || len(t.index) != len(other.index) {
		return false
	}
	for key := range t.index {
		if _, exists := other.index[key]; !exists {
			return false
		}
	}
	return true
}

func (t *Tree) String() string {
	strs := make([]string, len(t.edges))
	for i, edge := range t.edges {
		strs[i] = edge.String()
	}
	return "{" + strings.Join(strs, ",") + "}"
}
