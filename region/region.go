// Package region treats the open cells of a grid.Grid as a graph under
// orthogonal connectivity, enabling component analysis and a census of how
// much of the maze a set of bases can possibly classify.
//
// What:
//
//   - Components: contiguous regions of non-Wall cells.
//   - Reachable: which cells share a region with at least one Base.
//   - Summarize: counts per kind plus unreachable Free cells.
//
// Complexity:
//
//   - Components, Reachable, Summarize: O(W×H×4) time, O(W×H) memory.
package region

import "github.com/katalvlaran/safemaze/grid"

// Components finds all contiguous regions of open cells (every kind but Wall).
// Returns a slice of components; each component is a slice of row-major cell
// indices in BFS order, and components are ordered by their first cell in
// row-major scan. Use g.Position(idx) to convert an index back to a coordinate.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func Components(g *grid.Grid) [][]int {
	total := g.Width() * g.Height()
	seen := make([]bool, total)
	var comps [][]int

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] || !g.Cell(g.Position(i0)).Open() {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := g.Position(queue[qi])
			for _, d := range grid.Directions {
				n, ok := g.Neighbor(u, d)
				if !ok || !n.Open() {
					continue
				}
				vi := g.Index(n.Position())
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// Reachable reports, per row-major index, whether the cell lies in a component
// that contains a Base. A wall-following walk from a base can never classify a
// cell outside these components.
func Reachable(g *grid.Grid) []bool {
	reach := make([]bool, g.Width()*g.Height())
	for _, comp := range Components(g) {
		if !hasBase(g, comp) {
			continue
		}
		for _, idx := range comp {
			reach[idx] = true
		}
	}
	return reach
}

// Summary is a census of a grid.
type Summary struct {
	Cells       int // Width × Height
	Walls       int
	Bases       int
	Free        int // open cells not (yet) classified Safe
	Safe        int
	Unreachable int // Free cells in a component without a Base
	Components  int // regions of open cells
	Isolated    int // regions of open cells without a Base
}

// Summarize counts cells by kind and measures base connectivity.
func Summarize(g *grid.Grid) Summary {
	s := Summary{
		Cells: g.Width() * g.Height(),
		Walls: g.Count(grid.Wall),
		Bases: g.Count(grid.Base),
		Free:  g.Count(grid.Free),
		Safe:  g.Count(grid.Safe),
	}
	for _, comp := range Components(g) {
		s.Components++
		if hasBase(g, comp) {
			continue
		}
		s.Isolated++
		for _, idx := range comp {
			if g.Cell(g.Position(idx)).Kind() == grid.Free {
				s.Unreachable++
			}
		}
	}
	return s
}

func hasBase(g *grid.Grid, comp []int) bool {
	for _, idx := range comp {
		if g.Cell(g.Position(idx)).Kind() == grid.Base {
			return true
		}
	}
	return false
}
