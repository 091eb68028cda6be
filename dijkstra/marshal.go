package dijkstra

import (
	"encoding/json"
	"math"
)

// resultJSON is the wire form of Result. +Inf distances are written as null
// because JSON has no infinity; NoPredecessor is written as null as well.
type resultJSON struct {
	ID           string              `json:"id"`
	Source       string              `json:"source"`
	Target       string              `json:"target,omitempty"`
	Outcome      string              `json:"outcome"`
	Distances    map[string]*float64 `json:"distances"`
	Predecessors map[string]*string  `json:"predecessors"`
	Path         []string            `json:"path"`
	PathEdges    []Step              `json:"path_edges"`
	Distance     *float64            `json:"distance,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r *Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{
		ID:           r.ID.String(),
		Source:       r.Source,
		Target:       r.Target,
		Outcome:      r.Outcome.String(),
		Distances:    make(map[string]*float64, len(r.Distances)),
		Predecessors: make(map[string]*string, len(r.Predecessors)),
		Path:         r.Path,
		PathEdges:    r.PathEdges,
	}
	for id, d := range r.Distances {
		out.Distances[id] = finite(d)
	}
	for id, p := range r.Predecessors {
		if p == NoPredecessor {
			out.Predecessors[id] = nil
			continue
		}
		p := p
		out.Predecessors[id] = &p
	}
	if out.Path == nil {
		out.Path = []string{}
	}
	if out.PathEdges == nil {
		out.PathEdges = []Step{}
	}
	if r.Found() {
		out.Distance = finite(r.Distance)
	}

	return json.Marshal(out)
}

// finite returns &d, or nil when d is infinite.
func finite(d float64) *float64 {
	if math.IsInf(d, 0) {
		return nil
	}

	return &d
}
