// SPDX-License-Identifier: MIT

package builder

import "errors"

var (
	// ErrTooFewNodes indicates a size parameter below the generator's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic generator without WithRand/WithSeed.
	ErrNeedRandSource = errors.New("builder: random source required")

	// ErrConstructFailed indicates a nil constructor or graph.
	ErrConstructFailed = errors.New("builder: construction failed")
)
