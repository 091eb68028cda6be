// Package dijkstra implements Dijkstra's shortest-path algorithm on snapshots
// of non-negatively weighted directed graphs.
//
// Notes on implementation choices:
//
//   - Weights need no pre-scan: core.Graph rejects negative and non-finite
//     weights at insertion, so every snapshot already satisfies the
//     algorithm's precondition.
//   - Candidates are ordered by (distance, key) in both strategies, which
//     makes equal-distance ties resolve to the lexicographically smallest key.
//   - Relaxation uses strict "<", so the first predecessor to reach a given
//     distance keeps it.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathlab/core"
)

// Dijkstra computes shortest distances from Options.Source to every node of g
// and, when Options.Target is set, the route to it.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one node (ErrEmptyGraph), regardless of options.
//  3. Selection must be known (ErrBadSelection).
//  4. Source must be a node of g (ErrUnknownNode).
//
// Complexity:
//
//   - SelectLinear: Time O(V² + E), Space O(V).
//   - SelectHeap:   Time O((V + E) log V), Space O(V + E).
func Dijkstra(g Snapshotter, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions("")
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Take one consistent snapshot; everything below reads only from it.
	if g == nil {
		return nil, ErrNilGraph
	}
	snap := g.Snapshot()
	if snap == nil {
		return nil, ErrNilGraph
	}
	if snap.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	if cfg.Selection != SelectLinear && cfg.Selection != SelectHeap {
		return nil, fmt.Errorf("%w: %v", ErrBadSelection, cfg.Selection)
	}
	if !snap.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, cfg.Source)
	}

	// 3) Run the selected strategy.
	V := snap.Len()
	r := &runner{
		snap:    snap,
		options: cfg,
		dist:    make(map[string]float64, V),
		prev:    make(map[string]string, V),
		visited: make(map[string]bool, V),
	}
	r.init()
	if cfg.Selection == SelectHeap {
		r.processHeap()
	} else {
		r.processLinear()
	}

	return r.result(), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	snap    *core.Snapshot     // read-only input
	options Options            // Source, Target, Selection
	dist    map[string]float64 // node → best known distance from Source
	prev    map[string]string  // node → predecessor on that path
	visited map[string]bool    // node → distance finalized
	pq      nodePQ             // only used by SelectHeap
}

// init sets dist[v]=+Inf and prev[v]="" for all v, then dist[Source]=0.
func (r *runner) init() {
	for _, v := range r.snap.Nodes {
		r.dist[v] = Infinity
		r.prev[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0
}

// processLinear is the dense variant: each round selects the unvisited node
// with the smallest (distance, key) by a full scan, marks it visited and
// relaxes its outgoing edges, until every node is visited.
func (r *runner) processLinear() {
	nodes := r.snap.Nodes // sorted, so the first minimum found is the lex-smallest
	for len(r.visited) < len(nodes) {
		current, best, found := "", Infinity, false
		for _, v := range nodes {
			if r.visited[v] {
				continue
			}
			if !found || r.dist[v] < best {
				current, best, found = v, r.dist[v], true
			}
		}

		r.visited[current] = true
		r.relax(current, false)
	}
}

// processHeap runs the lazy-decrease-key variant.
func (r *runner) processHeap() {
	r.pq = make(nodePQ, 0, r.snap.Len())
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.visited[item.id] {
			continue // stale entry
		}
		r.visited[item.id] = true
		r.relax(item.id, true)
	}
}

// relax improves every outgoing neighbor of u whose distance through u is
// strictly smaller. With push set, improved neighbors are queued on the heap.
func (r *runner) relax(u string, push bool) {
	du := r.dist[u]
	for _, nb := range r.snap.Neighbors(u) {
		nd := du + nb.Weight
		if nd >= r.dist[nb.ID] {
			continue
		}
		r.dist[nb.ID] = nd
		r.prev[nb.ID] = u
		if push {
			heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: nd})
		}
	}
}

// result freezes the runner state into a Result and reconstructs the route.
func (r *runner) result() *Result {
	res := &Result{
		ID:           uuid.New(),
		Source:       r.options.Source,
		Target:       r.options.Target,
		Distances:    r.dist,
		Predecessors: r.prev,
		Distance:     Infinity,
		Outcome:      OutcomeNoTarget,
	}

	target := r.options.Target
	switch {
	case target == "":
		return res
	case !r.snap.HasNode(target):
		res.Outcome = OutcomeTargetMissing
		return res
	case !res.Reachable(target):
		res.Outcome = OutcomeUnreachable
		return res
	}

	res.Path = reconstruct(r.prev, r.options.Source, target, len(r.dist))
	res.PathEdges = stepsOf(res.Path)
	res.Distance = r.dist[target]
	res.Outcome = OutcomePathFound

	return res
}

// nodeItem is one heap entry: a node and the distance it was queued with.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, id). Outdated entries
// stay in the heap and are skipped when popped (checked via visited).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
