// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

// Constructor adds nodes and edges to g.
type Constructor func(g *core.Graph, cfg config) error

// Build applies cons in order to a new graph. The first failing constructor
// aborts the build.
func Build(opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, opts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs cons against an existing graph.
func Apply(g *core.Graph, opts []Option, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// addNodes creates nodes 0..n-1 in index order.
func addNodes(g *core.Graph, cfg config, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%q): %w", method, id, err)
		}
	}

	return nil
}

// link adds the edge i→j with the next weight.
func link(g *core.Graph, cfg config, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
