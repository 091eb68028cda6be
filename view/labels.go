package view

import (
	"math"
	"strconv"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
)

const (
	// InfinityText is the distance label of unreachable nodes.
	InfinityText = "∞"

	// NoPredecessorText is the predecessor label of the source and of unreachable nodes.
	NoPredecessorText = "-"
)

// NodeLabel is the text drawn next to one node.
type NodeLabel struct {
	Node        string `json:"node"`
	Distance    string `json:"distance,omitempty"`
	Predecessor string `json:"predecessor,omitempty"`
	Text        string `json:"text"`
}

// EdgeLabel is the text drawn on one edge and whether it lies on the
// highlighted route.
type EdgeLabel struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}

// FormatDistance renders d with the shortest exact decimal, or "∞".
func FormatDistance(d float64) string {
	if math.IsInf(d, 1) {
		return InfinityText
	}

	return strconv.FormatFloat(d, 'f', -1, 64)
}

// NodeLabels returns one label per node of snap in snap order. With a nil
// res every label is just the node key.
func NodeLabels(snap *core.Snapshot, res *dijkstra.Result) []NodeLabel {
	if snap == nil {
		return nil
	}
	labels := make([]NodeLabel, 0, len(snap.Nodes))
	for _, id := range snap.Nodes {
		if res == nil {
			labels = append(labels, NodeLabel{Node: id, Text: id})
			continue
		}

		dist, ok := res.Distances[id]
		if !ok {
			// Node added after the query ran.
			dist = dijkstra.Infinity
		}
		pred := res.Predecessors[id]
		if pred == dijkstra.NoPredecessor {
			pred = NoPredecessorText
		}
		distText := FormatDistance(dist)
		labels = append(labels, NodeLabel{
			Node:        id,
			Distance:    distText,
			Predecessor: pred,
			Text:        distText + "\n" + pred,
		})
	}

	return labels
}

// EdgeLabels returns one label per edge of snap in snap order. The edge
// target's predecessor is appended when res has one; hl marks the route.
// Both res and hl may be nil.
func EdgeLabels(snap *core.Snapshot, res *dijkstra.Result, hl *Highlighter) []EdgeLabel {
	if snap == nil {
		return nil
	}
	var route map[dijkstra.Step]struct{}
	if hl != nil {
		route = hl.set()
	}

	labels := make([]EdgeLabel, 0, len(snap.Edges))
	for _, e := range snap.Edges {
		text := strconv.FormatFloat(e.Weight, 'f', -1, 64)
		if res != nil {
			if pred := res.Predecessors[e.To]; pred != dijkstra.NoPredecessor {
				text += ", Pre: " + pred
			}
		}
		_, on := route[dijkstra.Step{From: e.From, To: e.To}]
		labels = append(labels, EdgeLabel{From: e.From, To: e.To, Text: text, Highlighted: on})
	}

	return labels
}
