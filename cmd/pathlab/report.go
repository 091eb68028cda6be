package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/scenario"
	"github.com/katalvlaran/pathlab/service"
	"github.com/katalvlaran/pathlab/view"
)

type report struct {
	Graph   core.GraphStats `json:"graph"`
	Queries []queryReport   `json:"queries"`
	Scene   view.Scene      `json:"scene"`
}

type queryReport struct {
	Name   string           `json:"name"`
	Start  string           `json:"start"`
	End    string           `json:"end,omitempty"`
	Result *dijkstra.Result `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

func writeReport(w io.Writer, format string, svc *service.Service, outcomes []scenario.Outcome) error {
	rep := report{
		Graph:   svc.Graph().Stats(),
		Queries: make([]queryReport, 0, len(outcomes)),
		Scene:   svc.Scene(),
	}
	for _, o := range outcomes {
		q := queryReport{Name: o.Query, Start: o.Start, End: o.End, Result: o.Result}
		if o.Err != nil {
			q.Error = o.Err.Error()
		}
		rep.Queries = append(rep.Queries, q)
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	return writeText(w, svc, rep)
}

func writeText(w io.Writer, svc *service.Service, rep report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "graph: %d nodes, %d edges, selection %s\n",
		rep.Graph.NodeCount, rep.Graph.EdgeCount, svc.Selection())

	snap := svc.Snapshot()
	for _, q := range rep.Queries {
		fmt.Fprintf(&b, "\nquery %s: %s", q.Name, q.Start)
		if q.End != "" {
			fmt.Fprintf(&b, " → %s", q.End)
		}
		if q.Error != "" {
			fmt.Fprintf(&b, "\n  error: %s\n", q.Error)
			continue
		}
		res := q.Result
		fmt.Fprintf(&b, "\n  outcome: %s\n", res.Outcome)
		if res.Found() {
			fmt.Fprintf(&b, "  path: %s (distance %s)\n",
				strings.Join(res.Path, " → "), view.FormatDistance(res.Distance))
		}
		for _, l := range view.NodeLabels(snap, res) {
			fmt.Fprintf(&b, "  %-8s %8s  %s\n", l.Node, l.Distance, l.Predecessor)
		}
	}

	if len(rep.Scene.Highlighted) > 0 {
		steps := make([]string, 0, len(rep.Scene.Highlighted))
		for _, s := range rep.Scene.Highlighted {
			steps = append(steps, s.From+"→"+s.To)
		}
		fmt.Fprintf(&b, "\nhighlighted: %s\n", strings.Join(steps, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
