package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pathlab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEdge_AutoCreatesEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(NodeA, NodeB, Weight2))

	assert.True(t, g.HasNode(NodeA))
	assert.True(t, g.HasNode(NodeB))
	assert.Equal(t, []string{NodeA, NodeB}, g.Nodes())
	assert.Equal(t, 1, g.EdgeCount())
}

func TestAddEdge_NeighborsContainTarget(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB, Weight7)

	nbs := g.Neighbors(NodeA)
	require.Len(t, nbs, 1)
	assert.Equal(t, core.Neighbor{ID: NodeB, Weight: Weight7}, nbs[0])
}

func TestAddEdge_IsDirected(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB, Weight1)

	assert.True(t, g.HasEdge(NodeA, NodeB))
	assert.False(t, g.HasEdge(NodeB, NodeA))
	assert.Empty(t, g.Neighbors(NodeB))
}

func TestAddEdge_OverwritesWeight(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB, Weight4)
	mustAddEdge(t, g, NodeA, NodeB, Weight1)

	w, err := g.EdgeWeight(NodeA, NodeB)
	require.NoError(t, err)
	assert.Equal(t, Weight1, w)
	assert.Equal(t, 1, g.EdgeCount(), "overwrite must not add a second edge")
}

func TestAddEdge_Idempotent(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB, Weight2)
	before := g.Snapshot()
	mustAddEdge(t, g, NodeA, NodeB, Weight2)

	assert.Equal(t, before.Nodes, g.Snapshot().Nodes)
	assert.Equal(t, before.Edges, g.Snapshot().Edges)
}

func TestAddEdge_ZeroWeightAndSelfLoop(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(NodeA, NodeB, Weight0))
	require.NoError(t, g.AddEdge(NodeA, NodeA, Weight1))

	assert.Equal(t, []core.Neighbor{{ID: NodeA, Weight: Weight1}, {ID: NodeB, Weight: Weight0}}, g.Neighbors(NodeA))
}

func TestAddEdge_RejectsInvalidWeight(t *testing.T) {
	for name, w := range map[string]float64{
		"negative": -1,
		"nan":      math.NaN(),
		"+inf":     math.Inf(1),
		"-inf":     math.Inf(-1),
	} {
		t.Run(name, func(t *testing.T) {
			g := core.NewGraph()
			mustAddEdge(t, g, NodeC, NodeD, Weight1)

			err := g.AddEdge(NodeA, NodeB, w)
			require.ErrorIs(t, err, core.ErrInvalidWeight)
			assert.Equal(t, []string{NodeC, NodeD}, g.Nodes(), "graph must be unchanged")
			assert.Equal(t, 1, g.EdgeCount())
		})
	}
}

func TestAddEdge_NegativeWeightKeepsExistingEdge(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB, Weight2)

	require.ErrorIs(t, g.AddEdge(NodeA, NodeB, -3), core.ErrInvalidWeight)
	w, err := g.EdgeWeight(NodeA, NodeB)
	require.NoError(t, err)
	assert.Equal(t, Weight2, w)
}

func TestAddEdge_RejectsEmptyEndpoints(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddEdge("", NodeB, Weight1), core.ErrMissingField)
	require.ErrorIs(t, g.AddEdge(NodeA, "", Weight1), core.ErrMissingField)
	require.ErrorIs(t, g.AddEdge("", "", Weight1), core.ErrMissingField)
	assert.Zero(t, g.NodeCount())
}

func TestAddNode(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(NodeD))
	require.NoError(t, g.AddNode(NodeD))
	require.ErrorIs(t, g.AddNode(""), core.ErrMissingField)

	assert.Equal(t, []string{NodeD}, g.Nodes())
	assert.Empty(t, g.Neighbors(NodeD))
	assert.Zero(t, g.EdgeCount())
}

func TestNeighbors_UnknownNode(t *testing.T) {
	g := newTriangle(t)
	assert.Empty(t, g.Neighbors(NodeX))
	assert.Empty(t, g.Neighbors(""))
}

func TestNeighbors_SortedByKey(t *testing.T) {
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeD, Weight1)
	mustAddEdge(t, g, NodeA, NodeB, Weight2)
	mustAddEdge(t, g, NodeA, NodeC, Weight4)

	var ids []string
	for _, nb := range g.Neighbors(NodeA) {
		ids = append(ids, nb.ID)
	}
	assert.Equal(t, []string{NodeB, NodeC, NodeD}, ids)
}

func TestEdgeWeight_NotFound(t *testing.T) {
	g := newTriangle(t)
	_, err := g.EdgeWeight(NodeB, NodeA)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.EdgeWeight(NodeX, NodeA)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestEdges_Sorted(t *testing.T) {
	g := newTriangle(t)
	assert.Equal(t, []core.Edge{
		{From: NodeA, To: NodeB, Weight: Weight4},
		{From: NodeA, To: NodeC, Weight: Weight1},
		{From: NodeC, To: NodeB, Weight: Weight1},
	}, g.Edges())
}

func TestStats(t *testing.T) {
	g := newTriangle(t)
	require.NoError(t, g.AddNode(NodeD))

	assert.Equal(t, core.GraphStats{
		NodeCount:     4,
		EdgeCount:     3,
		IsolatedNodes: 1,
		TotalWeight:   Weight4 + Weight1 + Weight1,
	}, g.Stats())
}

func TestWithCapacity(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(16), core.WithCapacity(-1))
	mustAddEdge(t, g, NodeA, NodeB, Weight1)
	assert.Equal(t, 2, g.NodeCount())
}
