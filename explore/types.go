// Package explore provides tunable options, statistics and error definitions
// for the wall-following exploration of a grid.Grid.
package explore

import (
	"errors"

	"github.com/katalvlaran/safemaze/grid"
)

// ErrInvariantViolation marks a state the traversal rules make impossible,
// such as a step off the grid. It is raised with panic; it signals a defect,
// never bad input.
var ErrInvariantViolation = errors.New("explore: invariant violation")

// Option configures exploration via functional arguments.
type Option func(*Options)

// Options holds callbacks observing an exploration.
type Options struct {
	// OnVisit is called each time a (cell, direction) pair is processed.
	OnVisit func(pos grid.Position, dir grid.Direction)

	// OnResolve is called when an edge moves from Unexplored to LeadsToBase.
	OnResolve func(pos grid.Position, dir grid.Direction)

	// OnPromote is called when a cell is promoted from Free to Safe.
	OnPromote func(pos grid.Position)

	// Stats, if non-nil, receives counters for the run.
	Stats *Stats
}

// DefaultOptions returns Options with no-op hooks and no stats sink.
func DefaultOptions() Options {
	return Options{
		OnVisit:   func(grid.Position, grid.Direction) {},
		OnResolve: func(grid.Position, grid.Direction) {},
		OnPromote: func(grid.Position) {},
	}
}

// WithOnVisit registers a callback run for every processed (cell, direction) pair.
func WithOnVisit(fn func(pos grid.Position, dir grid.Direction)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnResolve registers a callback run when an edge becomes LeadsToBase.
func WithOnResolve(fn func(pos grid.Position, dir grid.Direction)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnResolve = fn
		}
	}
}

// WithOnPromote registers a callback run when a cell becomes Safe.
func WithOnPromote(fn func(pos grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPromote = fn
		}
	}
}

// WithStats makes Explore fill s. s is reset at the start of the run.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// Stats summarizes one Explore call.
//   - Passes: full sweeps over every base and start direction; the last one
//     resolves nothing.
//   - Visits: (cell, direction) pairs processed.
//   - Resolved: edges moved from Unexplored to LeadsToBase.
//   - Promoted: cells moved from Free to Safe.
type Stats struct {
	Passes   int
	Visits   int
	Resolved int
	Promoted int
}
