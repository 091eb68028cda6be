// SPDX-License-Identifier: MIT
// Package builder generates weighted directed graphs for tests, benchmarks
// and demos.
//
// Generators are Constructors applied in order by Build to a fresh
// core.Graph:
//
//	g, err := builder.Build(
//		[]builder.Option{builder.WithSeed(7), builder.WithUniformWeights(0, 5)},
//		builder.Grid(4, 4),
//		builder.RandomSparse(16, 0.1),
//	)
//
// Determinism:
//   - Node IDs come from the ID scheme (decimal indices by default).
//   - Edge trials run in a fixed (i asc, j asc) order, so a fixed seed always
//     yields the same graph.
//
// Weights come from the weight function (constant 1 by default) and must be
// finite and non-negative; anything else surfaces as core.ErrInvalidWeight.
package builder
