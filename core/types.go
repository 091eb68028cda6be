// Package core defines the Graph, Edge and Neighbor types, the sentinel
// errors of the store, and the NewGraph constructor.
//
// Errors:
//
//	ErrMissingField  - source, target or weight absent from a mutation.
//	ErrInvalidWeight - weight negative, non-finite or not numeric.
//	ErrEdgeNotFound  - requested (from,to) edge does not exist.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrMissingField indicates that a required field (source, target or weight) is absent.
	ErrMissingField = errors.New("core: missing required field")

	// ErrInvalidWeight indicates a weight that is not a finite, non-negative number.
	ErrInvalidWeight = errors.New("core: invalid weight")

	// ErrEdgeNotFound indicates a lookup of a (from,to) pair with no stored edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source node key.
	From string `json:"from"`

	// To is the target node key.
	To string `json:"to"`

	// Weight is the non-negative cost of traversing the edge.
	Weight float64 `json:"weight"`
}

// Neighbor is one outgoing adjacency entry: the target node and the edge weight.
type Neighbor struct {
	ID     string  `json:"id"`
	Weight float64 `json:"weight"`
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node catalog and adjacency map for roughly n nodes.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.nodes = make(map[string]struct{}, n)
			g.out = make(map[string]map[string]float64, n)
		}
	}
}

// Graph is the in-memory directed weighted graph.
//
// mu guards nodes, out and edgeCount. out[from][to] holds the weight of the
// single edge from→to; a node with no outgoing edges has no entry in out.
type Graph struct {
	mu sync.RWMutex

	nodes     map[string]struct{}           // node key → presence
	out       map[string]map[string]float64 // from → to → weight
	edgeCount int                           // number of distinct (from,to) pairs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]struct{}),
		out:   make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
