// Package service owns one graph and exposes the operations a front end calls:
// adding edges and computing shortest paths, plus the presentation state
// derived from the most recent query.
//
// A Service replaces process-wide mutable state. It serializes mutations
// through the graph's lock, computes every query over a snapshot, and keeps
// the last result and its highlighted route for Scene.
//
// Every call runs inside an OpenTelemetry span taken from the configured
// tracer (the global provider unless WithTracerProvider is given) and is
// logged through slog: mutations at debug, query summaries at info, and
// failures at warn.
//
// Errors are the sentinels of packages core and dijkstra, returned unchanged
// so callers can use errors.Is.
package service
