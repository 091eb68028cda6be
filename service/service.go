package service

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/dijkstra"
	"github.com/katalvlaran/pathlab/view"
)

const traceScope = "github.com/katalvlaran/pathlab/service"

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithTracerProvider sets the provider spans are taken from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *Service) {
		if tp != nil {
			s.tracer = tp.Tracer(traceScope)
		}
	}
}

// WithSelection sets the minimum-selection strategy used by queries.
func WithSelection(sel dijkstra.Selection) Option {
	return func(s *Service) { s.selection = sel }
}

// WithGraph makes the service own g instead of a fresh graph.
func WithGraph(g *core.Graph) Option {
	return func(s *Service) {
		if g != nil {
			s.graph = g
		}
	}
}

// Service is the owned store object. Safe for concurrent use.
type Service struct {
	graph     *core.Graph
	hl        *view.Highlighter
	logger    *slog.Logger
	tracer    trace.Tracer
	selection dijkstra.Selection

	mu   sync.RWMutex
	last *dijkstra.Result
}

// New returns a Service over an empty graph.
func New(opts ...Option) *Service {
	s := &Service{
		graph:     core.NewGraph(),
		hl:        &view.Highlighter{},
		logger:    slog.Default(),
		tracer:    otel.GetTracerProvider().Tracer(traceScope),
		selection: dijkstra.SelectLinear,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Graph exposes the owned graph.
func (s *Service) Graph() *core.Graph { return s.graph }

// Highlighter exposes the retained route of the last query.
func (s *Service) Highlighter() *view.Highlighter { return s.hl }

// Selection reports the configured strategy.
func (s *Service) Selection() dijkstra.Selection { return s.selection }

// AddEdge inserts or overwrites source→target. On error the graph is unchanged.
func (s *Service) AddEdge(ctx context.Context, source, target string, weight float64) error {
	_, span := s.tracer.Start(ctx, "AddEdge", trace.WithAttributes(
		attribute.String("edge.source", source),
		attribute.String("edge.target", target),
		attribute.Float64("edge.weight", weight),
	))
	defer span.End()

	if err := s.graph.AddEdge(source, target, weight); err != nil {
		s.fail(ctx, span, "add edge rejected", err,
			slog.String("source", source), slog.String("target", target), slog.Float64("weight", weight))
		return err
	}
	s.logger.DebugContext(ctx, "edge added",
		slog.String("source", source), slog.String("target", target), slog.Float64("weight", weight))

	return nil
}

// AddEdgeRequest validates and applies an untrusted request.
func (s *Service) AddEdgeRequest(ctx context.Context, req core.EdgeRequest) error {
	_, span := s.tracer.Start(ctx, "AddEdgeRequest", trace.WithAttributes(
		attribute.String("edge.source", req.Source),
		attribute.String("edge.target", req.Target),
	))
	defer span.End()

	if err := s.graph.AddEdgeRequest(req); err != nil {
		s.fail(ctx, span, "add edge request rejected", err,
			slog.String("source", req.Source), slog.String("target", req.Target), slog.Any("weight", req.Weight))
		return err
	}
	s.logger.DebugContext(ctx, "edge added",
		slog.String("source", req.Source), slog.String("target", req.Target), slog.Any("weight", req.Weight))

	return nil
}

// AddNode creates an isolated node.
func (s *Service) AddNode(ctx context.Context, id string) error {
	_, span := s.tracer.Start(ctx, "AddNode", trace.WithAttributes(attribute.String("node.id", id)))
	defer span.End()

	if err := s.graph.AddNode(id); err != nil {
		s.fail(ctx, span, "add node rejected", err, slog.String("node", id))
		return err
	}
	s.logger.DebugContext(ctx, "node added", slog.String("node", id))

	return nil
}

// ComputeShortestPaths runs Dijkstra from start over a snapshot of the graph.
// An empty end means no target. A successful query replaces the retained
// route (clearing it when there is none) and becomes the result Scene uses.
// A failed query leaves both untouched.
func (s *Service) ComputeShortestPaths(ctx context.Context, start, end string) (*dijkstra.Result, error) {
	ctx, span := s.tracer.Start(ctx, "ComputeShortestPaths", trace.WithAttributes(
		attribute.String("query.start", start),
		attribute.String("query.end", end),
		attribute.String("query.selection", s.selection.String()),
	))
	defer span.End()

	snap := s.graph.Snapshot()
	res, err := dijkstra.Dijkstra(snap,
		dijkstra.Source(start), dijkstra.Target(end), dijkstra.WithSelection(s.selection))
	if err != nil {
		s.fail(ctx, span, "shortest path query failed", err,
			slog.String("start", start), slog.String("end", end))
		return nil, err
	}

	s.mu.Lock()
	s.last = res
	s.hl.Observe(res)
	s.mu.Unlock()

	span.SetAttributes(
		attribute.String("result.id", res.ID.String()),
		attribute.String("result.outcome", res.Outcome.String()),
		attribute.Int("graph.nodes", snap.Len()),
	)
	attrs := []any{
		slog.String("id", res.ID.String()),
		slog.String("start", start),
		slog.String("outcome", res.Outcome.String()),
		slog.Int("nodes", snap.Len()),
	}
	if res.Found() {
		attrs = append(attrs, slog.Any("path", res.Path), slog.Float64("distance", res.Distance))
	}
	if end != "" {
		attrs = append(attrs, slog.String("end", end))
	}
	s.logger.InfoContext(ctx, "shortest paths computed", attrs...)

	return res, nil
}

// Snapshot returns a consistent copy of the graph.
func (s *Service) Snapshot() *core.Snapshot { return s.graph.Snapshot() }

// LastResult returns the most recent successful query result, or nil.
func (s *Service) LastResult() *dijkstra.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.last
}

// Scene builds the presentation state from the current graph and the last
// result. Nodes added after that query are labelled unreachable.
func (s *Service) Scene() view.Scene {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return view.Build(s.graph.Snapshot(), s.last, s.hl)
}

func (s *Service) fail(ctx context.Context, span trace.Span, msg string, err error, attrs ...any) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.logger.WarnContext(ctx, msg, append(attrs, slog.Any("error", err))...)
}
