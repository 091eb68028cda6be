package view

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathlab/dijkstra"
)

// Highlighter retains the route of the most recent query. Every observed
// result replaces the previous route; a result without a route clears it.
// The zero value is ready to use and safe for concurrent use.
type Highlighter struct {
	mu     sync.RWMutex
	source uuid.UUID // ID of the result the route came from
	steps  []dijkstra.Step
}

// Observe replaces the retained route with res.PathEdges. A nil result clears it.
func (h *Highlighter) Observe(res *dijkstra.Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if res == nil {
		h.source, h.steps = uuid.Nil, nil
		return
	}
	h.source = res.ID
	h.steps = append([]dijkstra.Step(nil), res.PathEdges...)
}

// Clear drops the retained route.
func (h *Highlighter) Clear() { h.Observe(nil) }

// Steps returns a copy of the retained route.
func (h *Highlighter) Steps() []dijkstra.Step {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return append([]dijkstra.Step(nil), h.steps...)
}

// Source returns the ID of the result whose route is retained, or uuid.Nil.
func (h *Highlighter) Source() uuid.UUID {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.source
}

// Contains reports whether from→to is on the retained route.
func (h *Highlighter) Contains(from, to string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, s := range h.steps {
		if s.From == from && s.To == to {
			return true
		}
	}

	return false
}

// set returns the retained route as a lookup set.
func (h *Highlighter) set() map[dijkstra.Step]struct{} {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make(map[dijkstra.Step]struct{}, len(h.steps))
	for _, s := range h.steps {
		out[s] = struct{}{}
	}

	return out
}
