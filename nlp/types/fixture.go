package types

// NewFixtureSentence builds "the hairy monster ate tasty little children",
// a small annotated sentence used for demonstrations and tests
func NewFixtureSentence() *DependencyGraph {
	sent := NewDependencyGraph([]Node{
		{Word: "the", POS: "DT"},
		{Word: "hairy", POS: "JJ"},
		{Word: "monster", POS: "NN"},
		{Word: "ate", POS: "VB"},
		{Word: "tasty", POS: "JJ"},
		{Word: "little", POS: "JJ"},
		{Word: "children", POS: "NN"},
	})
	arcs := [][2]int{
		{3, 1}, // the -> monster
		{3, 2}, // hairy -> monster
		{4, 3}, // monster -> ate
		{0, 4}, // ate -> root
		{7, 5}, // tasty -> children
		{7, 6}, // little -> children
		{4, 7}, // children -> ate
	}
	for _, arc := range arcs {
		if err := sent.AddArc(arc[0], arc[1]); err != nil {
			panic(err)
		}
	}
	return sent
}
