package graph

// DisjointSet is a union-find over the integers 0..n-1 with path halving and
// union by rank.
type DisjointSet struct {
	parent     []int
	rank       []int
	components int
}

func NewDisjointSet(n int) *DisjointSet {
	set := &DisjointSet{
		parent:     make([]int, n),
		rank:       make([]int, n),
		components: n,
	}
	for i := range set.parent {
		set.parent[i] = i
	}
	return set
}

func (s *DisjointSet) Find(x int) int {
	for s.parent[x] != x {
		s.parent[x] = s.parent[s.parent[x]]
		x = s.parent[x]
	}
	return x
}

// Union merges the sets of x and y, returning false if they were already
// in the same set.
func (s *DisjointSet) Union(x, y int) bool {
	rx, ry := s.Find(x), s.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case s.rank[rx] < s.rank[ry]:
		s.parent[rx] = ry
	case s.rank[rx] > s.rank[ry]:
		s.parent[ry] = rx
	default:
		s.parent[ry] = rx
		s.rank[rx]++
	}
	s.components--
	return true
}

func (s *DisjointSet) Components() int {
	return s.components
}
