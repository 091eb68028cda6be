package view

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
)

// Scene is everything a renderer needs to draw the graph once.
type Scene struct {
	Nodes       []string         `json:"nodes"`
	Edges       []core.Edge      `json:"edges"`
	NodeLabels  []NodeLabel      `json:"node_labels"`
	EdgeLabels  []EdgeLabel      `json:"edge_labels"`
	Highlighted []dijkstra.Step  `json:"highlighted"`
	ResultID    uuid.UUID        `json:"result_id"`
	Outcome     dijkstra.Outcome `json:"-"`
}

// Build assembles a Scene from a snapshot, the latest result (nil before the
// first query) and the highlighter (nil for no highlight).
func Build(snap *core.Snapshot, res *dijkstra.Result, hl *Highlighter) Scene {
	sc := Scene{
		NodeLabels:  NodeLabels(snap, res),
		EdgeLabels:  EdgeLabels(snap, res, hl),
		Highlighted: []dijkstra.Step{},
	}
	if snap != nil {
		sc.Nodes, sc.Edges = snap.Nodes, snap.Edges
	}
	if res != nil {
		sc.ResultID, sc.Outcome = res.ID, res.Outcome
	}
	if hl != nil {
		if steps := hl.Steps(); len(steps) > 0 {
			sc.Highlighted = steps
		}
	}

	return sc
}
