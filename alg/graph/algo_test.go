package graph

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testGraph is a complete graph with explicit weights
type testGraph struct {
	n       int
	weights map[Pair]float64
}

var _ WeightedUndirectedGraph = &testGraph{}

func newTestGraph(n int, weightFunc func(i, j int) float64) *testGraph {
	g := &testGraph{n, make(map[Pair]float64)}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.weights[Pair{i, j}] = weightFunc(i, j)
		}
	}
	return g
}

func (g *testGraph) NumberOfVertices() int { return g.n }
func (g *testGraph) NumberOfEdges() int    { return len(g.weights) }

func (g *testGraph) GetEdges() []Pair {
	edges := make([]Pair, 0, len(g.weights))
	for i := 0; i < g.n; i++ {
		for j := i + 1; j < g.n; j++ {
			edges = append(edges, Pair{i, j})
		}
	}
	return edges
}

func (g *testGraph) Weight(p Pair) float64 {
	return g.weights[p.Canonical()]
}

// bruteForceMax enumerates every (n-1)-subset of edges and returns the best
// total weight among those forming a spanning tree
func bruteForceMax(g *testGraph) float64 {
	edges := g.GetEdges()
	k := g.n - 1
	best := 0.0
	found := false
	chosen := make([]Pair, 0, k)
	var rec func(start int)
	rec = func(start int) {
		if len(chosen) == k {
			tree := NewTree(g.n)
			for _, e := range chosen {
				tree.AddEdge(e[0], e[1])
			}
			if !tree.IsSpanningTree() {
				return
			}
			w := TreeWeight(g, tree)
			if !found || w > best {
				best, found = w, true
			}
			return
		}
		for i := start; i < len(edges); i++ {
			chosen = append(chosen, edges[i])
			rec(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	rec(0)
	return best
}

func TestMaxSpanningTreeOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(723))
	for n := 2; n <= 6; n++ {
		for trial := 0; trial < 20; trial++ {
			g := newTestGraph(n, func(i, j int) float64 {
				return float64(rng.Intn(21) - 10)
			})
			tree := MaxSpanningTree(g)
			require.Equal(t, n-1, tree.NumberOfEdges())
			require.True(t, tree.IsSpanningTree(), "not a spanning tree: %v", tree)
			assert.Equal(t, bruteForceMax(g), TreeWeight(g, tree), "n=%d trial=%d", n, trial)
		}
	}
}

func TestMaxSpanningTreeDoesNotMutate(t *testing.T) {
	g := newTestGraph(5, func(i, j int) float64 {
		return float64(i*7-j*3) / 2.0
	})
	before := make(map[Pair]float64, len(g.weights))
	for k, v := range g.weights {
		before[k] = v
	}
	_ = MaxSpanningTree(g)
	assert.Equal(t, before, g.weights)
}

func TestMaxSpanningTreeKnown(t *testing.T) {
	// a chain 0-1-2-3 is the only heavy structure
	g := newTestGraph(4, func(i, j int) float64 {
		if j == i+1 {
			return 5.0
		}
		return -1.0
	})
	tree := MaxSpanningTree(g)
	expected := NewTree(4)
	expected.AddEdge(0, 1)
	expected.AddEdge(1, 2)
	expected.AddEdge(2, 3)
	assert.True(t, expected.Equal(tree), "expected %v got %v", expected, tree)
	assert.Equal(t, 15.0, TreeWeight(g, tree))
}

func TestMaxSpanningTreeTiesDeterministic(t *testing.T) {
	g := newTestGraph(7, func(i, j int) float64 { return 0.0 })
	first := MaxSpanningTree(g)
	require.True(t, first.IsSpanningTree())
	for i := 0; i < 10; i++ {
		assert.Equal(t, first.Edges(), MaxSpanningTree(g).Edges())
	}
}

func TestMaxSpanningTreeDegenerate(t *testing.T) {
	for _, n := range []int{0, 1} {
		g := newTestGraph(n, func(i, j int) float64 { return 1.0 })
		tree := MaxSpanningTree(g)
		assert.Zero(t, tree.NumberOfEdges())
	}
}

func TestTree(t *testing.T) {
	tree := NewTree(4)
	assert.True(t, tree.AddEdge(1, 0))
	assert.False(t, tree.AddEdge(0, 1), "reverse orientation is the same edge")
	assert.True(t, tree.HasEdge(0, 1))
	assert.True(t, tree.HasEdge(1, 0))
	assert.False(t, tree.IsSpanningTree())
	tree.AddEdge(2, 1)
	tree.AddEdge(3, 1)
	assert.True(t, tree.IsSpanningTree())
	assert.Equal(t, []Pair{{1, 0}, {2, 1}, {3, 1}}, tree.Edges())
	assert.Equal(t, "{(1,0),(2,1),(3,1)}", tree.String())

	cyclic := NewTree(4)
	cyclic.AddEdge(0, 1)
	cyclic.AddEdge(1, 2)
	cyclic.AddEdge(2, 0)
	assert.False(t, cyclic.IsSpanningTree())

	assert.Panics(t, func() { tree.AddEdge(2, 2) })
	assert.Panics(t, func() { tree.AddEdge(0, 4) })
}

func TestDisjointSet(t *testing.T) {
	set := NewDisjointSet(5)
	assert.Equal(t, 5, set.Components())
	assert.True(t, set.Union(0, 1))
	assert.True(t, set.Union(3, 4))
	assert.False(t, set.Union(1, 0))
	assert.Equal(t, 3, set.Components())
	assert.Equal(t, set.Find(0), set.Find(1))
	assert.NotEqual(t, set.Find(0), set.Find(3))
}
