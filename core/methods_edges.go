// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/EdgeWeight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by From, then To.
// Concurrency:
//   - AddEdge validates before locking and inserts under the mu write lock,
//     so a rejected edge never touches the catalog.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge inserts the directed edge from→to with the given weight, or
// overwrites the weight if the edge already exists. Missing endpoints are
// created as nodes.
//
// Steps:
//  1. Validate keys (ErrMissingField) and weight (ErrInvalidWeight).
//  2. Lock mu.
//  3. Register both endpoints in the node catalog.
//  4. Store out[from][to] = weight, counting new pairs only.
//
// Idempotent for identical inputs. On error the graph is unchanged.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	if err := checkEndpoints(from, to); err != nil {
		return err
	}
	if err := checkWeight(weight); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.insertEdge(from, to, weight)

	return nil
}

// insertEdge performs the unchecked insertion. Caller must hold the write lock.
func (g *Graph) insertEdge(from, to string, weight float64) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	inner, ok := g.out[from]
	if !ok {
		inner = make(map[string]float64)
		g.out[from] = inner
	}
	if _, exists := inner[to]; !exists {
		g.edgeCount++
	}
	inner[to] = weight
}

// EdgeWeight returns the weight of the edge from→to, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) EdgeWeight(from, to string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.out[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %q→%q", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// HasEdge reports whether the edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.out[from][to]

	return ok
}

// Edges returns every edge sorted by From, then To.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedEdges()
}

// EdgeCount returns the number of distinct (from,to) pairs.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// sortedEdges flattens out into a sorted slice. Caller must hold at least the read lock.
func (g *Graph) sortedEdges() []Edge {
	edges := make([]Edge, 0, g.edgeCount)
	for from, inner := range g.out {
		for to, w := range inner {
			edges = append(edges, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return edges
}

// checkEndpoints rejects empty node keys.
func checkEndpoints(from, to string) error {
	switch {
	case from == "" && to == "":
		return fmt.Errorf("%w: source, target", ErrMissingField)
	case from == "":
		return fmt.Errorf("%w: source", ErrMissingField)
	case to == "":
		return fmt.Errorf("%w: target", ErrMissingField)
	}

	return nil
}

// checkWeight rejects NaN, ±Inf and negative weights.
func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return fmt.Errorf("%w: %v is not finite", ErrInvalidWeight, w)
	}
	if w < 0 {
		return fmt.Errorf("%w: %v is negative", ErrInvalidWeight, w)
	}

	return nil
}
