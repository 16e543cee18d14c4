// Package explore classifies the cells of a grid.Grid as Safe by running a
// wall-following traversal from every base in every start direction.
//
// A visit of (cell, direction) applies, in order:
//  1. Corner bleed-through: when the edge ahead is already resolved, an open
//     side opposite a walled side is marked as leading back to the cell and is
//     visited moving away from it. Left and right are checked independently.
//  2. Base termination: stepping onto a base ends the walk.
//  3. Open step: the next cell's edge back toward the current one is marked
//     LeadsToBase and the walk continues straight ahead.
//  4. Dead-end turn: facing a wall in a cell with three walls, the walk turns
//     back the way it came.
//  5. Closure: otherwise the cell is promoted when it has nothing left to explore.
//
// Sweeps repeat until one resolves no new edge, so exploring an explored grid
// changes nothing.
//
// Complexity: O(P·(W×H)²) worst case for P sweeps, since a (cell, direction)
// pair is processed again only after some edge has been resolved.
// Memory: O(W×H) for the seen table and the work stack.
package explore

import (
	"fmt"

	"github.com/katalvlaran/safemaze/grid"
)

// phase records how far a visit has progressed.
type phase uint8

const (
	phaseEnter phase = iota // guard, then the left side of the bleed-through
	phaseRight              // right side of the bleed-through
	phaseAhead              // base, open step, dead end, closure
)

// frame is one pending visit on the work stack.
type frame struct {
	pos   grid.Position
	dir   grid.Direction
	phase phase
}

// walker encapsulates mutable exploration state.
type walker struct {
	g     *grid.Grid
	opts  Options
	stats *Stats
	stack []frame
	// seen[idx*4+dir] is the resolved count when the pair was last processed, -1 if never.
	seen     []int
	resolved int
}

// Explore runs the traversal over g, mutating edge states and promoting cells
// from Free to Safe. A nil grid is a no-op.
// Panics with an error wrapping ErrInvariantViolation if the grid breaks the
// invariants established by grid.New.
func Explore(g *grid.Grid, opts ...Option) {
	if g == nil {
		return
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	stats := o.Stats
	if stats == nil {
		stats = &Stats{}
	}
	*stats = Stats{}

	w := &walker{
		g:     g,
		opts:  o,
		stats: stats,
		stack: make([]frame, 0, 64),
		seen:  make([]int, 4*g.Width()*g.Height()),
	}
	for i := range w.seen {
		w.seen[i] = -1
	}

	bases := g.Bases()
	for {
		w.stats.Passes++
		before := w.resolved
		for _, b := range bases {
			for _, d := range grid.Directions {
				w.run(b, d)
			}
		}
		if w.resolved == before {
			return
		}
	}
}

// run drains the work stack seeded with a single visit.
func (w *walker) run(start grid.Position, dir grid.Direction) {
	w.stack = append(w.stack[:0], frame{pos: start, dir: dir, phase: phaseEnter})
	for len(w.stack) > 0 {
		f := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		w.step(f)
	}
}

// step advances one frame. A frame that hands work to a neighbor pushes its
// own continuation first, so the neighbor's walk completes before it resumes.
func (w *walker) step(f frame) {
	switch f.phase {
	case phaseEnter:
		if !w.enter(f.pos, f.dir) {
			return
		}
		if w.g.Cell(f.pos).Edge(f.dir) == grid.EdgeUnexplored {
			w.ahead(f.pos, f.dir)
			return
		}
		if w.bleed(f, f.dir.Left(), phaseRight) {
			return
		}
		fallthrough
	case phaseRight:
		if w.bleed(f, f.dir.Right(), phaseAhead) {
			return
		}
		fallthrough
	case phaseAhead:
		w.ahead(f.pos, f.dir)
	}
}

// enter records the visit and reports whether it can produce anything new:
// a pair already processed since the last resolved edge would repeat itself.
func (w *walker) enter(pos grid.Position, dir grid.Direction) bool {
	k := w.g.Index(pos)*4 + int(dir)
	if w.seen[k] == w.resolved {
		return false
	}
	w.seen[k] = w.resolved
	w.stats.Visits++
	w.opts.OnVisit(pos, dir)
	return true
}

// bleed handles one lateral side of the corner rule. When side is open, the
// opposite side is a wall and the neighbor's edge back toward f.pos is still
// unexplored, it resolves that edge, schedules the neighbor walking away from
// f.pos and the continuation of f at next, and returns true.
func (w *walker) bleed(f frame, side grid.Direction, next phase) bool {
	cur := w.g.Cell(f.pos)
	if cur.Edge(side) == grid.EdgeWall || cur.Edge(side.Opposite()) != grid.EdgeWall {
		return false
	}
	n := w.neighbor(f.pos, side)
	if n.Kind() == grid.Base {
		return false
	}
	if !w.resolve(n.Position(), side.Opposite()) {
		return false
	}
	w.stack = append(w.stack,
		frame{pos: f.pos, dir: f.dir, phase: next},
		frame{pos: n.Position(), dir: side, phase: phaseEnter},
	)
	return true
}

// ahead applies the base, open-step, dead-end and closure rules.
func (w *walker) ahead(pos grid.Position, dir grid.Direction) {
	cur := w.g.Cell(pos)
	if cur.Edge(dir) != grid.EdgeWall {
		next := w.neighbor(pos, dir)
		if next.Kind() == grid.Base {
			return
		}
		w.resolve(next.Position(), dir.Opposite())
		w.push(next.Position(), dir)
		return
	}

	walls := cur.WallCount()
	if walls == 3 && cur.Edge(dir.Opposite()) != grid.EdgeWall {
		w.push(pos, dir.Opposite())
		return
	}
	if walls == 4 && cur.Kind() != grid.Base {
		panic(fmt.Errorf("%w: visited %s at %v has four walls", ErrInvariantViolation, cur.Kind(), pos))
	}
	if w.g.Promote(pos) {
		w.stats.Promoted++
		w.opts.OnPromote(pos)
	}
}

// neighbor returns the open cell one step from pos. Stepping off the grid or
// into a Wall cell through a non-wall edge cannot happen on a grid built by
// grid.New.
func (w *walker) neighbor(pos grid.Position, dir grid.Direction) *grid.Cell {
	n, ok := w.g.Neighbor(pos, dir)
	if !ok {
		panic(fmt.Errorf("%w: step %s from %v leaves the grid", ErrInvariantViolation, dir, pos))
	}
	if !n.Open() {
		panic(fmt.Errorf("%w: step %s from %v enters a wall behind a %s edge",
			ErrInvariantViolation, dir, pos, w.g.Cell(pos).Edge(dir)))
	}
	return n
}

// resolve marks the edge of pos in direction dir as LeadsToBase and reports
// whether it was previously unexplored.
func (w *walker) resolve(pos grid.Position, dir grid.Direction) bool {
	changed, promoted := w.g.MarkLeadsToBase(pos, dir)
	if !changed {
		return false
	}
	w.resolved++
	w.stats.Resolved++
	w.opts.OnResolve(pos, dir)
	if promoted {
		w.stats.Promoted++
		w.opts.OnPromote(pos)
	}
	return true
}

func (w *walker) push(pos grid.Position, dir grid.Direction) {
	w.stack = append(w.stack, frame{pos: pos, dir: dir, phase: phaseEnter})
}
