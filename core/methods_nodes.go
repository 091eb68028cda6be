// File: methods_nodes.go
// Role: Node catalog: AddNode/HasNode/Nodes/NodeCount.
// Determinism:
//   - Nodes() returns keys sorted lexicographically ascending.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts a node with no edges if it is missing (idempotent).
//
// Returns ErrMissingField if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return fmt.Errorf("%w: node", ErrMissingField)
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[id] = struct{}{}

	return nil
}

// HasNode reports whether id is a node of the graph (empty id ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns a sorted copy of the node set.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return sortedNodes(g.nodes)
}

// NodeCount returns |V|.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// sortedNodes copies the keys of set into a lexicographically sorted slice.
// Caller must hold at least the read lock.
func sortedNodes(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
