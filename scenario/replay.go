package scenario

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/internal/ctxlog"
)

// Target is what a scenario is replayed against; *service.Service satisfies it.
type Target interface {
	AddNode(ctx context.Context, id string) error
	AddEdgeRequest(ctx context.Context, req core.EdgeRequest) error
	ComputeShortestPaths(ctx context.Context, start, end string) (*dijkstra.Result, error)
}

// Outcome is the result of one replayed query. Err holds a query error such
// as dijkstra.ErrUnknownNode; Result is nil in that case.
type Outcome struct {
	Query  string
	Start  string
	End    string
	Result *dijkstra.Result
	Err    error
}

// Replay adds every node and edge of sc to t, then runs every query.
// It stops at the first node or edge t rejects; query errors are recorded in
// the returned outcomes instead.
func Replay(ctx context.Context, t Target, sc *Scenario) ([]Outcome, error) {
	logger := ctxlog.FromContext(ctx)

	for _, id := range sc.Nodes {
		if err := t.AddNode(ctx, id); err != nil {
			return nil, fmt.Errorf("scenario: node %q: %w", id, err)
		}
	}
	for _, e := range sc.Edges {
		req := core.EdgeRequest{Source: e.From, Target: e.To, Weight: e.Weight}
		if err := t.AddEdgeRequest(ctx, req); err != nil {
			return nil, fmt.Errorf("scenario: edge %q → %q at %s: %w", e.From, e.To, e.Range, err)
		}
	}
	logger.Debug("Scenario graph applied.", "nodes", len(sc.Nodes), "edges", len(sc.Edges))

	outcomes := make([]Outcome, 0, len(sc.Queries))
	for _, q := range sc.Queries {
		res, err := t.ComputeShortestPaths(ctx, q.Start, q.End)
		outcomes = append(outcomes, Outcome{Query: q.Name, Start: q.Start, End: q.End, Result: res, Err: err})
	}

	return outcomes, nil
}
