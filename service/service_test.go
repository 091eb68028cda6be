package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/service"
)

// newTestService returns a Service whose logs go to buf and whose spans are
// recorded by the returned recorder.
func newTestService(t *testing.T, opts ...service.Option) (*service.Service, *tracetest.SpanRecorder, *bytes.Buffer) {
	t.Helper()
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	base := []service.Option{service.WithLogger(logger), service.WithTracerProvider(tp)}

	return service.New(append(base, opts...)...), rec, &buf
}

func addTriangle(t *testing.T, svc *service.Service) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, svc.AddEdge(ctx, "A", "B", 4))
	require.NoError(t, svc.AddEdge(ctx, "A", "C", 1))
	require.NoError(t, svc.AddEdge(ctx, "C", "B", 1))
}

func TestAddEdge_NeighborsIncludeEdge(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.NoError(t, svc.AddEdge(context.Background(), "A", "B", 2.5))

	assert.Contains(t, svc.Graph().Neighbors("A"), core.Neighbor{ID: "B", Weight: 2.5})
}

func TestAddEdge_NegativeWeightLeavesGraphUnchanged(t *testing.T) {
	svc, rec, logs := newTestService(t)
	addTriangle(t, svc)
	before := svc.Snapshot()

	err := svc.AddEdge(context.Background(), "A", "Z", -1)
	require.ErrorIs(t, err, core.ErrInvalidWeight)

	if diff := cmp.Diff(before.Edges, svc.Snapshot().Edges); diff != "" {
		t.Errorf("edges changed (-before +after):\n%s", diff)
	}
	assert.Equal(t, before.Nodes, svc.Snapshot().Nodes)
	assert.Contains(t, logs.String(), "level=WARN")

	spans := rec.Ended()
	last := spans[len(spans)-1]
	assert.Equal(t, "AddEdge", last.Name())
	assert.Equal(t, codes.Error, last.Status().Code)
	require.NotEmpty(t, last.Events())
	assert.Equal(t, "exception", last.Events()[0].Name)
}

func TestAddEdgeRequest(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddEdgeRequest(ctx, core.EdgeRequest{Source: "A", Target: "B", Weight: "3"}))
	w, err := svc.Graph().EdgeWeight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	err = svc.AddEdgeRequest(ctx, core.EdgeRequest{Source: "A", Weight: 1})
	require.ErrorIs(t, err, core.ErrMissingField)
	err = svc.AddEdgeRequest(ctx, core.EdgeRequest{Source: "A", Target: "C", Weight: "heavy"})
	require.ErrorIs(t, err, core.ErrInvalidWeight)
	assert.False(t, svc.Graph().HasNode("C"))
}

func TestComputeShortestPaths_Triangle(t *testing.T) {
	for _, sel := range []dijkstra.Selection{dijkstra.SelectLinear, dijkstra.SelectHeap} {
		t.Run(sel.String(), func(t *testing.T) {
			svc, rec, logs := newTestService(t, service.WithSelection(sel))
			addTriangle(t, svc)

			res, err := svc.ComputeShortestPaths(context.Background(), "A", "B")
			require.NoError(t, err)
			assert.Equal(t, map[string]float64{"A": 0, "B": 2, "C": 1}, res.Distances)
			assert.Equal(t, []string{"A", "C", "B"}, res.Path)
			assert.Equal(t, []dijkstra.Step{{From: "A", To: "C"}, {From: "C", To: "B"}}, res.PathEdges)
			assert.Equal(t, sel, svc.Selection())

			// path weight sum equals the reported distance
			var sum float64
			for _, st := range res.PathEdges {
				w, err := svc.Graph().EdgeWeight(st.From, st.To)
				require.NoError(t, err)
				sum += w
			}
			assert.Equal(t, res.Distances["B"], sum)

			assert.Contains(t, logs.String(), "shortest paths computed")
			spans := rec.Ended()
			last := spans[len(spans)-1]
			assert.Equal(t, "ComputeShortestPaths", last.Name())
			assert.NotEqual(t, codes.Error, last.Status().Code)
		})
	}
}

func TestComputeShortestPaths_IsolatedNode(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.NoError(t, svc.AddNode(context.Background(), "D"))

	res, err := svc.ComputeShortestPaths(context.Background(), "D", "")
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"D": 0}, res.Distances)
	assert.Equal(t, map[string]string{"D": dijkstra.NoPredecessor}, res.Predecessors)
	assert.Equal(t, dijkstra.OutcomeNoTarget, res.Outcome)
}

func TestComputeShortestPaths_Unreachable(t *testing.T) {
	svc, _, _ := newTestService(t)
	addTriangle(t, svc)
	require.NoError(t, svc.AddEdge(context.Background(), "X", "Y", 1))

	res, err := svc.ComputeShortestPaths(context.Background(), "A", "X")
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Distances["X"], 1))
	assert.Equal(t, dijkstra.NoPredecessor, res.Predecessors["X"])
	assert.Empty(t, res.Path)
	assert.Equal(t, dijkstra.OutcomeUnreachable, res.Outcome)
}

func TestComputeShortestPaths_Errors(t *testing.T) {
	svc, rec, _ := newTestService(t)
	ctx := context.Background()

	for _, args := range [][2]string{{"A", "B"}, {"", ""}, {"nope", "A"}} {
		_, err := svc.ComputeShortestPaths(ctx, args[0], args[1])
		require.ErrorIs(t, err, dijkstra.ErrEmptyGraph)
	}

	addTriangle(t, svc)
	_, err := svc.ComputeShortestPaths(ctx, "Q", "B")
	require.ErrorIs(t, err, dijkstra.ErrUnknownNode)
	assert.Nil(t, svc.LastResult())

	errored := 0
	for _, s := range rec.Ended() {
		if s.Status().Code == codes.Error {
			errored++
		}
	}
	assert.Equal(t, 4, errored)
}

func TestComputeShortestPaths_OverwriteReflected(t *testing.T) {
	svc, _, _ := newTestService(t)
	addTriangle(t, svc)
	ctx := context.Background()

	require.NoError(t, svc.AddEdge(ctx, "A", "B", 1))
	res, err := svc.ComputeShortestPaths(ctx, "A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Distances["B"])
	assert.Equal(t, []string{"A", "B"}, res.Path)
	assert.Equal(t, 3, svc.Graph().EdgeCount())
}

func TestScene_FollowsLastQuery(t *testing.T) {
	svc, _, _ := newTestService(t)
	addTriangle(t, svc)
	ctx := context.Background()

	sc := svc.Scene()
	assert.Empty(t, sc.Highlighted)
	assert.Equal(t, []string{"A", "B", "C"}, sc.Nodes)
	for _, l := range sc.NodeLabels {
		assert.Equal(t, l.Node, l.Text)
	}

	res, err := svc.ComputeShortestPaths(ctx, "A", "B")
	require.NoError(t, err)
	sc = svc.Scene()
	assert.Equal(t, res.ID, sc.ResultID)
	assert.Equal(t, res.PathEdges, sc.Highlighted)
	assert.True(t, svc.Highlighter().Contains("C", "B"))

	// a query without a route clears the highlight
	_, err = svc.ComputeShortestPaths(ctx, "B", "A")
	require.NoError(t, err)
	assert.Empty(t, svc.Scene().Highlighted)

	// a failed query keeps the previous state
	prev := svc.LastResult()
	_, err = svc.ComputeShortestPaths(ctx, "missing", "")
	require.Error(t, err)
	assert.Same(t, prev, svc.LastResult())
}

func TestWithGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("S", "T", 1))
	svc, _, _ := newTestService(t, service.WithGraph(g))
	assert.Same(t, g, svc.Graph())

	res, err := svc.ComputeShortestPaths(context.Background(), "S", "T")
	require.NoError(t, err)
	assert.True(t, res.Found())
}

func TestConcurrentAddsAndQueries(t *testing.T) {
	svc, _, _ := newTestService(t, service.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
	ctx := context.Background()
	require.NoError(t, svc.AddNode(ctx, "hub"))

	const writers, readers = 16, 16
	var wg sync.WaitGroup
	errs := make(chan error, writers+readers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := string(rune('a' + i))
			errs <- svc.AddEdge(ctx, "hub", id, float64(i))
		}(i)
	}
	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := svc.ComputeShortestPaths(ctx, "hub", "")
			if err == nil {
				// every node in a snapshot has an entry; no torn results
				for _, n := range res.PathTo("hub") {
					if n != "hub" {
						err = errors.New("unexpected route to hub")
					}
				}
				if len(res.Distances) != len(res.Predecessors) {
					err = errors.New("distances and predecessors disagree")
				}
			}
			_ = svc.Scene()
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, writers, svc.Graph().EdgeCount())
	assert.Len(t, svc.Scene().NodeLabels, writers+1)
}
