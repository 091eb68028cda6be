// File: snapshot.go
// Role: Immutable, read-only copies of the graph for readers that need a
//       consistent view across many lookups (shortest-path engine, exporters).
// Determinism:
//   - Nodes sorted lex asc; Edges sorted by (From, To); Neighbors sorted by key.
// Concurrency:
//   - Built under the graph read lock; afterwards a Snapshot shares nothing
//     mutable with its Graph and may be read from any goroutine.

package core

// Snapshot is a point-in-time copy of a Graph.
//
// Nodes and Edges are exported for presentation/export layers. Treat every
// slice returned by a Snapshot as read-only.
type Snapshot struct {
	Nodes []string `json:"nodes"`
	Edges []Edge   `json:"edges"`

	index map[string]struct{}   // node membership
	adj   map[string][]Neighbor // from → sorted outgoing neighbors
}

// Snapshot copies the current nodes and edges atomically with respect to
// concurrent mutations.
//
// A nil Graph yields a nil Snapshot.
//
// Complexity: O(V log V + E log E). Concurrency: read lock on mu.
func (g *Graph) Snapshot() *Snapshot {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		Nodes: sortedNodes(g.nodes),
		Edges: g.sortedEdges(),
		index: make(map[string]struct{}, len(g.nodes)),
		adj:   make(map[string][]Neighbor, len(g.out)),
	}
	for id := range g.nodes {
		s.index[id] = struct{}{}
	}
	for from, inner := range g.out {
		s.adj[from] = sortedNeighbors(inner)
	}

	return s
}

// Snapshot returns s itself, so a Snapshot can be passed wherever a graph
// source is expected.
func (s *Snapshot) Snapshot() *Snapshot { return s }

// Len returns the number of nodes. A nil Snapshot has length zero.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Nodes)
}

// HasNode reports whether id was a node when the snapshot was taken.
func (s *Snapshot) HasNode(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[id]

	return ok
}

// Neighbors returns the outgoing adjacency of id sorted by neighbor key.
// The slice is shared with the snapshot and must not be modified.
func (s *Snapshot) Neighbors(id string) []Neighbor {
	if s == nil {
		return nil
	}

	return s.adj[id]
}

// EdgeWeight returns the weight of from→to as of the snapshot.
func (s *Snapshot) EdgeWeight(from, to string) (float64, bool) {
	for _, nb := range s.Neighbors(from) {
		if nb.ID == to {
			return nb.Weight, true
		}
	}

	return 0, false
}
