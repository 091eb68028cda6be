// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
)

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"
)

// Path chains n nodes 0→1→…→n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodPath, n, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle is Path(n) closed by n-1→0. Requires n ≥ 2.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodCycle, n, ErrTooFewNodes)
		}
		if err := Path(n)(g, cfg); err != nil {
			return err
		}

		return link(g, cfg, methodCycle, n-1, 0)
	}
}

// Star points hub 0 at leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodStar, n, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, methodStar, n); err != nil {
			return err
		}
		for j := 1; j < n; j++ {
			if err := link(g, cfg, methodStar, 0, j); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete links every ordered pair of distinct nodes.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := link(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid lays out rows×cols nodes (index r*cols+c) and links orthogonal
// neighbours in both directions, each direction with its own weight.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewNodes)
		}
		if err := addNodes(g, cfg, methodGrid, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, i, i+1); err != nil {
						return err
					}
					if err := link(g, cfg, methodGrid, i+1, i); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, i, i+cols); err != nil {
						return err
					}
					if err := link(g, cfg, methodGrid, i+cols, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// RandomSparse adds n nodes and includes each ordered pair (i,j), i≠j,
// independently with probability p. A random source is required when
// 0 < p < 1.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, n, ErrTooFewNodes)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addNodes(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				// p ∈ {0,1} needs no trial
				if p == 0 || (p < 1 && cfg.rng.Float64() >= p) {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
