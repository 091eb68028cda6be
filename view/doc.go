// Package view derives the presentation state of a graph: per-node distance
// and predecessor labels, per-edge weight labels, and the highlighted route.
//
// The package renders nothing. A Scene is the complete input for whatever
// draws or exports the graph.
//
// Label conventions:
//
//	node, no query yet:  "<key>"
//	node, after a query: "<distance>\n<predecessor>"  ("∞" when unreachable, "-" without predecessor)
//	edge:                "<weight>" or "<weight>, Pre: <predecessor of edge target>"
//
// The route highlighted by a renderer is the route of the most recent query.
// Highlighter retains it between calls so that the engine itself stays
// stateless.
package view
