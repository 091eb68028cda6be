// Package core_test contains test helpers for pathlab/core.
package core_test

import (
	"testing"

	"github.com/katalvlaran/pathlab/core"
	"github.com/stretchr/testify/require"
)

// Common node keys used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
	NodeX = "X"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight4 = 4.0
	Weight7 = 7.5
)

// Concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustAddEdge adds from→to and fails the test on error.
func mustAddEdge(t *testing.T, g *core.Graph, from, to string, w float64) {
	t.Helper()
	require.NoError(t, g.AddEdge(from, to, w), "AddEdge(%s,%s,%v)", from, to, w)
}

// newTriangle builds A→B(4), A→C(1), C→B(1).
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	mustAddEdge(t, g, NodeA, NodeB, Weight4)
	mustAddEdge(t, g, NodeA, NodeC, Weight1)
	mustAddEdge(t, g, NodeC, NodeB, Weight1)

	return g
}
