// Package dijkstra defines the options, result and error types of the
// shortest-path engine.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathlab/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates that the graph has no nodes.
	ErrEmptyGraph = errors.New("dijkstra: graph is empty")

	// ErrUnknownNode indicates that the source node does not exist in the graph.
	ErrUnknownNode = errors.New("dijkstra: unknown node")

	// ErrBadSelection indicates an unknown Selection strategy.
	ErrBadSelection = errors.New("dijkstra: unknown selection strategy")
)

// NoPredecessor is the predecessor of the source and of unreachable nodes.
const NoPredecessor = ""

// Infinity is the distance of nodes unreachable from the source.
var Infinity = math.Inf(1)

// Snapshotter is any graph that can hand out a consistent read-only copy.
// *core.Graph and *core.Snapshot both implement it.
type Snapshotter interface {
	Snapshot() *core.Snapshot
}

// Selection picks how the next closest unvisited node is found.
type Selection int

const (
	// SelectLinear scans every unvisited node each round (dense variant).
	SelectLinear Selection = iota

	// SelectHeap pops the next node from a lazy min-heap.
	SelectHeap
)

// String returns the configuration name of s.
func (s Selection) String() string {
	switch s {
	case SelectLinear:
		return "linear"
	case SelectHeap:
		return "heap"
	default:
		return fmt.Sprintf("Selection(%d)", int(s))
	}
}

// ParseSelection maps "linear" or "heap" (case-insensitive) to a Selection.
func ParseSelection(name string) (Selection, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "linear":
		return SelectLinear, nil
	case "heap":
		return SelectHeap, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadSelection, name)
	}
}

// Options configures one Dijkstra run.
//
// Source    – starting node (must be a node of the graph).
// Target    – optional end node; "" means no route is requested.
// Selection – minimum-selection strategy, SelectLinear by default.
type Options struct {
	Source    string
	Target    string
	Selection Selection
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting node. Must be provided.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Target requests path reconstruction to id. The target need not exist.
func Target(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithSelection sets the minimum-selection strategy.
func WithSelection(s Selection) Option {
	return func(o *Options) {
		o.Selection = s
	}
}

// DefaultOptions returns Options for source with no target and linear selection.
func DefaultOptions(source string) Options {
	return Options{
		Source:    source,
		Selection: SelectLinear,
	}
}

// Step is one directed hop (From, To) of a reconstructed path.
type Step struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Outcome distinguishes a found route from the three "no path" cases.
type Outcome int

const (
	// OutcomeNoTarget: no target was requested; only distances are meaningful.
	OutcomeNoTarget Outcome = iota

	// OutcomePathFound: the target is reachable and Path holds the route.
	OutcomePathFound

	// OutcomeTargetMissing: the target is not a node of the graph.
	OutcomeTargetMissing

	// OutcomeUnreachable: the target exists but no path leads to it.
	OutcomeUnreachable
)

// String returns a short human-readable description.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoTarget:
		return "no target"
	case OutcomePathFound:
		return "path found"
	case OutcomeTargetMissing:
		return "target missing"
	case OutcomeUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Result is the output of one Dijkstra run. It is never modified after
// Dijkstra returns.
//
// Distances and Predecessors cover every node of the snapshot. Path and
// PathEdges are empty unless Outcome == OutcomePathFound; Distance is then
// Distances[Target], otherwise +Inf.
type Result struct {
	ID           uuid.UUID
	Source       string
	Target       string
	Distances    map[string]float64
	Predecessors map[string]string
	Path         []string
	PathEdges    []Step
	Distance     float64
	Outcome      Outcome
}

// Found reports whether a route to the target was reconstructed.
func (r *Result) Found() bool {
	return r != nil && r.Outcome == OutcomePathFound
}

// Reachable reports whether id has a finite distance from the source.
func (r *Result) Reachable(id string) bool {
	if r == nil {
		return false
	}
	d, ok := r.Distances[id]

	return ok && !math.IsInf(d, 1)
}

// PathTo rebuilds the shortest route from the source to id using the stored
// predecessors. It returns nil when id is unknown or unreachable.
func (r *Result) PathTo(id string) []string {
	if !r.Reachable(id) {
		return nil
	}

	return reconstruct(r.Predecessors, r.Source, id, len(r.Distances))
}
