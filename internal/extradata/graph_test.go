package extradata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/voxelgridgo/internal/block"
)

func TestDisjointnessGraph(t *testing.T) {
	t.Parallel()

	b1 := block.New("b1")
	b2 := block.New("b2")
	b3 := block.New("b3")
	b4 := block.New("b4")

	fields := map[string]blockSet{
		"f1": {b1: {}, b2: {}},
		"f2": {b3: {}, b4: {}},
		"f3": {b1: {}, b3: {}},
	}

	g := disjointnessGraph(fields)

	assert.Equal(t, []string{"f1", "f2", "f3"}, g.verts, "vertices must be sorted field names")
	assert.True(t, g.hasEdge("f1", "f2"), "disjoint applicability must produce an edge")
	assert.True(t, g.hasEdge("f2", "f1"), "edges must be symmetric")
	assert.False(t, g.hasEdge("f1", "f3"), "f1 and f3 share b1")
	assert.False(t, g.hasEdge("f2", "f3"), "f2 and f3 share b3")
	for _, v := range g.verts {
		assert.False(t, g.hasEdge(v, v), "no self-loops")
	}
}

func TestGraph_AddRemoveEdge(t *testing.T) {
	t.Parallel()

	g := newGraph([]string{"a", "b", "c"})
	g.addEdge("a", "b")

	require.True(t, g.hasEdge("a", "b"))
	require.True(t, g.hasEdge("b", "a"))
	assert.Equal(t, 1, g.degree("a"))

	g.removeEdge("a", "b")
	assert.False(t, g.hasEdge("a", "b"))
	assert.False(t, g.hasEdge("b", "a"))
	assert.Equal(t, 0, g.degree("a"))
}

func TestGraph_FirstNeighborIsDeterministic(t *testing.T) {
	t.Parallel()

	g := newGraph([]string{"a", "b", "c", "d"})
	g.addEdge("b", "d")
	g.addEdge("b", "c")

	// The earliest neighbor in vertex order wins, regardless of insertion order.
	assert.Equal(t, "c", g.firstNeighbor("b"))
}

func TestGraph_Contract(t *testing.T) {
	t.Parallel()

	// a-b, a-c, b-c, b-d
	g := newGraph([]string{"a", "b", "c", "d"})
	g.addEdge("a", "b")
	g.addEdge("a", "c")
	g.addEdge("b", "c")
	g.addEdge("b", "d")

	c := g.contract("a", "b")

	// b is gone, order is preserved.
	assert.Equal(t, []string{"a", "c", "d"}, c.verts)

	// a keeps only the neighbors it shared with b: c (both had it), not d.
	assert.True(t, c.hasEdge("a", "c"))
	assert.False(t, c.hasEdge("a", "d"))
	assert.False(t, c.hasEdge("c", "d"), "edges between third vertices are unchanged")

	// The original graph must be untouched.
	assert.Equal(t, []string{"a", "b", "c", "d"}, g.verts)
	assert.True(t, g.hasEdge("a", "b"))
	assert.True(t, g.hasEdge("b", "d"))
	assert.Equal(t, 3, g.degree("b"))
}

func TestGraph_ContractKeepsUnrelatedEdges(t *testing.T) {
	t.Parallel()

	g := newGraph([]string{"a", "b", "c", "d"})
	g.addEdge("a", "b")
	g.addEdge("c", "d")

	c := g.contract("a", "b")

	assert.Equal(t, []string{"a", "c", "d"}, c.verts)
	assert.Equal(t, 0, c.degree("a"))
	assert.True(t, c.hasEdge("c", "d"))
}
