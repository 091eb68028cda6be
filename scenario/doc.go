// Package scenario reads graph scenarios written in HCL and replays them
// against a service.
//
// A scenario declares nodes, weighted edges and named shortest-path queries:
//
//	node "D" {}
//
//	edge "A" "B" { weight = 4 }
//	edge "A" "C" { weight = "1" }
//
//	query "a-to-b" {
//	  start = "A"
//	  end   = "B"
//	}
//
// Weights are kept as expressions and evaluated when the file is decoded:
// numbers become float64, strings are left for core.ParseWeight, and an
// absent weight is reported as core.ErrMissingField when the edge is
// replayed. Replay applies nodes, then edges, then queries, in declaration
// order across files.
package scenario
