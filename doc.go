// Package pathlab is an in-memory weighted directed graph you grow edge by
// edge and query for single-source shortest paths, together with the
// presentation state a renderer needs to draw the answer.
//
// 🚀 What is pathlab?
//
//	A small, thread-safe toolkit that brings together:
//		• Graph store: nodes, directed non-negative edges, consistent snapshots
//		• Shortest paths: Dijkstra with full distance/predecessor trees
//		• Presentation: node and edge labels, highlighted route of the last query
//		• Scenarios: HCL files of edges and queries, replayed by cmd/pathlab
//
// ✨ Why pathlab?
//
//   - Deterministic: equal distances resolve to the lexicographically smallest node
//   - Safe: one RWMutex per graph, queries run on snapshots
//   - Observable: slog logging and OpenTelemetry spans in the service layer
//
// Packages:
//
//	core/      Graph, Edge, Snapshot, request validation
//	dijkstra/  shortest-path engine, linear or heap selection
//	view/      labels, highlighter, Scene
//	service/   owned graph with logging and tracing
//	scenario/  HCL scenario loading and replay
//	builder/   graph generators for tests and benchmarks
//
// Quick ASCII example:
//
//	    A ──4──▶ B
//	    │        ▲
//	    1        1
//	    ▼        │
//	    C ───────┘
//
//	The shortest A→B route is A→C→B with distance 2.
//
//	go install github.com/katalvlaran/pathlab/cmd/pathlab@latest
package pathlab
