package graph

type Edge interface {
	Vertices() []int
}

type Graph interface {
	NumberOfVertices() int
	NumberOfEdges() int
}

// WeightedUndirectedGraph is an undirected graph over vertices 0..n-1
// whose edges carry a real weight. GetEdges must list every edge exactly
// once, canonically ordered, and always in the same order. Weight accepts
// a pair in either orientation.
type WeightedUndirectedGraph interface {
	Graph
	GetEdges() []Pair
	Weight(Pair) float64
}
