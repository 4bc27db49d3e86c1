package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irinya/cmsc723-group9-p2/alg/graph"
)

func TestFixtureSentence(t *testing.T) {
	sent := NewFixtureSentence()
	require.NoError(t, sent.Validate())
	assert.Equal(t, 8, sent.NumberOfNodes())
	assert.Equal(t, 7, sent.NumberOfArcs())

	root := sent.GetNode(0)
	assert.True(t, root.IsRoot())
	assert.Equal(t, ROOT_TOKEN, root.Word)
	assert.Equal(t, ROOT_TOKEN, root.POS)
	for i, node := range sent.Nodes {
		assert.Equal(t, i, node.ID)
	}
	assert.Equal(t, []string{"*root*", "the", "hairy", "monster", "ate", "tasty", "little", "children"}, sent.Tokens())
	assert.Equal(t, TaggedToken{"ate", "VB"}, sent.TaggedTokens()[4])

	gold := sent.Gold()
	assert.True(t, gold.HasEdge(0, 4))
	assert.True(t, gold.HasEdge(4, 0))
	assert.False(t, gold.HasEdge(0, 1))
	assert.Equal(t, "( monster <-> ate )", sent.ArcString(graph.Pair{3, 4}))
}

func TestAddArc(t *testing.T) {
	sent := NewDependencyGraph([]Node{{Word: "a"}, {Word: "b"}})
	assert.Error(t, sent.AddArc(-1, 1))
	assert.Error(t, sent.AddArc(3, 1))
	assert.Error(t, sent.AddArc(1, 0), "root has no head")
	assert.Error(t, sent.AddArc(1, 3))
	assert.Error(t, sent.AddArc(2, 2))

	require.NoError(t, sent.AddArc(0, 1))
	assert.Error(t, sent.AddArc(0, 1), "duplicate")
	assert.Error(t, sent.AddArc(1, 0))
	assert.ErrorIs(t, sent.Validate(), ErrNotATree)

	require.NoError(t, sent.AddArc(1, 2))
	assert.NoError(t, sent.Validate())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, NewDependencyGraph(nil).Validate(), "root alone")

	words := []Node{{Word: "a"}, {Word: "b"}, {Word: "c"}}

	short := NewDependencyGraph(words)
	require.NoError(t, short.AddArc(0, 1))
	require.NoError(t, short.AddArc(1, 3))
	assert.ErrorIs(t, short.Validate(), ErrNotATree)

	// n-1 arcs on a cycle that leaves the root out
	cycle := NewDependencyGraph(words)
	require.NoError(t, cycle.AddArc(2, 1))
	require.NoError(t, cycle.AddArc(3, 2))
	require.NoError(t, cycle.AddArc(1, 3))
	assert.ErrorIs(t, cycle.Validate(), ErrNotATree)
}
