// Package core provides the authoritative in-memory store for a directed,
// weighted graph whose nodes are identified by opaque string keys.
//
// The Graph G = (V,E) follows a small, strict contract:
//
//   - Nodes are created implicitly the first time they appear as an edge
//     endpoint (or explicitly through AddNode).
//   - Edges are directed: (A,B) never implies (B,A).
//   - At most one edge exists per ordered (from,to) pair; adding it again
//     overwrites the weight (latest value wins).
//   - Every stored weight is finite and non-negative. Invalid weights are
//     rejected at the mutation boundary and never stored.
//   - A failed mutation leaves the graph unchanged.
//
// Core Methods:
//
//	// Mutation
//	AddEdge(from, to string, weight float64) error   // O(1) amortized
//	AddEdgeRequest(req EdgeRequest) error            // boundary form, validates presence + parses weight
//	AddNode(id string) error                         // O(1), idempotent
//
//	// Query
//	Nodes() []string                                 // O(V log V), sorted
//	HasNode(id string) bool                          // O(1)
//	Neighbors(id string) []Neighbor                  // O(d log d), outgoing only, sorted by key
//	EdgeWeight(from, to string) (float64, error)     // O(1)
//	Edges() []Edge                                   // O(E log E), sorted by (From, To)
//	NodeCount(), EdgeCount() int                     // O(1)
//	Stats() GraphStats                               // O(E)
//
//	// Consistent read-only copy
//	Snapshot() *Snapshot                             // O(V + E log E)
//
// Concurrency:
//
// A single sync.RWMutex guards the node catalog and the adjacency map.
// Mutations hold the write lock for the whole check-and-insert sequence, so
// AddEdge is all-or-nothing. Snapshot copies everything under the read lock,
// which lets long-running readers (the shortest-path engine) work on a stable
// view without blocking writers.
//
// Errors:
//
//	ErrMissingField  – a required input (source, target, weight) is absent.
//	ErrInvalidWeight – weight is negative, NaN, ±Inf or not a number at all.
//	ErrEdgeNotFound  – EdgeWeight on an absent (from,to) pair.
//
// There is deliberately no deletion API; the store only grows.
package core
