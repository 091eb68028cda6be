// File: methods_adjacent.go
// Role: Outgoing neighborhood queries.
// Determinism:
//   - Neighbors() returns entries sorted by neighbor key (lex asc).
// Concurrency:
//   - Read lock on mu; the returned slice is a fresh copy.

package core

import "sort"

// Neighbors returns the outgoing adjacency of id as (neighbor, weight) pairs,
// sorted by neighbor key. The result is empty (never an error) when id has no
// outgoing edges or is not a node.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) Neighbors(id string) []Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedNeighbors(g.out[id])
}

// sortedNeighbors copies one adjacency bucket into a key-sorted slice.
func sortedNeighbors(inner map[string]float64) []Neighbor {
	out := make([]Neighbor, 0, len(inner))
	for to, w := range inner {
		out = append(out, Neighbor{ID: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}
