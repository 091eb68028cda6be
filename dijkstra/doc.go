// Package dijkstra computes single-source shortest paths over a snapshot of a
// core.Graph and, optionally, reconstructs one shortest route to a target.
//
// Overview:
//
//   - Every call is a fresh computation over an immutable core.Snapshot; the
//     engine never mutates the graph and keeps no state between calls.
//   - Distances and predecessors are always returned for the full node set.
//     Unreachable nodes have distance +Inf and predecessor "" (NoPredecessor).
//   - When a target is supplied the full tree is still computed; the route is
//     then rebuilt by walking predecessors backward from the target.
//   - A target that is absent from the graph, or unreachable, is not an
//     error: Result.Outcome reports which "no path" case applied.
//
// Selection strategies:
//
//   - SelectLinear (default): the dense variant. Each round scans all
//     unvisited nodes for the minimum tentative distance. O(V² + E) time,
//     O(V) space; the simplest choice for small graphs.
//   - SelectHeap: lazy-decrease-key min-heap. O((V + E) log V) time.
//
// Both strategies order candidates by (distance, node key), so ties on equal
// distance are broken by the lexicographically smallest key. Both therefore
// produce identical Distances, Predecessors and Path for the same snapshot.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:     the graph argument is nil.
//   - ErrEmptyGraph:   the graph has no nodes (checked before any option).
//   - ErrUnknownNode:  the source is not a node of the graph.
//   - ErrBadSelection: WithSelection received an unknown strategy.
//
// API reference:
//
//	func Dijkstra(g Snapshotter, opts ...Option) (*Result, error)
//
//	  - g:    *core.Graph or *core.Snapshot.
//	  - opts: Source(id) (required), Target(id), WithSelection(SelectLinear|SelectHeap).
//
// Thread safety:
//
//   - Dijkstra takes one snapshot of g under the graph read lock and works
//     on it lock-free, so concurrent AddEdge calls never tear a query.
package dijkstra
