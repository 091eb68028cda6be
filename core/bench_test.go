// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pathlab/core"
)

// BenchmarkAddEdge measures inserting fresh edges from one hub node.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i), float64(i))
	}
}

// BenchmarkAddEdge_Overwrite measures weight updates on a fixed edge set.
func BenchmarkAddEdge_Overwrite(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i%100), float64(i))
	}
}

// BenchmarkSnapshot measures copying a 1000-node, 5000-edge graph.
func BenchmarkSnapshot(b *testing.B) {
	g := core.NewGraph(core.WithCapacity(1000))
	for i := 0; i < 5000; i++ {
		_ = g.AddEdge(fmt.Sprintf("N%d", i%1000), fmt.Sprintf("N%d", (i*7+1)%1000), float64(i%13))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Snapshot()
	}
}
