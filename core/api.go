// File: api.go
// Role: Read-only diagnostics over the store.

package core

// GraphStats is a compact, read-only summary of the store.
type GraphStats struct {
	NodeCount     int     `json:"node_count"`
	EdgeCount     int     `json:"edge_count"`
	IsolatedNodes int     `json:"isolated_nodes"` // nodes with neither outgoing nor incoming edges
	TotalWeight   float64 `json:"total_weight"`
}

// Stats produces a consistent summary of node/edge counts and total weight.
//
// Complexity: O(V + E). Concurrency: read lock on mu for the whole scan.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		NodeCount: len(g.nodes),
		EdgeCount: g.edgeCount,
	}
	touched := make(map[string]struct{}, len(g.nodes))
	for from, inner := range g.out {
		for to, w := range inner {
			stats.TotalWeight += w
			touched[from] = struct{}{}
			touched[to] = struct{}{}
		}
	}
	stats.IsolatedNodes = len(g.nodes) - len(touched)

	return stats
}
