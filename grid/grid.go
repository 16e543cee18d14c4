// Package grid holds a rectangular maze of cells together with what is known
// about leaving each cell in each direction.
//
// Cells live in one flat row-major slice owned by the Grid; a Cell stores only
// its coordinate and neighbors are found through Grid.Neighbor, so no cell
// references another.
package grid

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Grid is a fixed-size rectangular maze. Its dimensions never change after New.
type Grid struct {
	width, height int
	cells         []Cell
	bases         []Position
}

// New builds a Grid from equal-length rows over the alphabet
// '#' (Wall), ' ' (Free), 'B' (Base) and 'S' (Safe).
// Rows are validated in order, width first and characters second.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrIllegalCharacter,
// all of which match ErrMalformedInput under errors.Is.
// After population every boundary side and every side facing a Wall cell
// is set to EdgeWall.
// Complexity: O(W×H) time and memory.
func New(rows []string) (*Grid, error) {
	if len(rows) == 0 || rows[0] == "" {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), utf8.RuneCountInString(rows[0])
	g := &Grid{
		width:  w,
		height: h,
		cells:  make([]Cell, 0, w*h),
	}
	for r, line := range rows {
		if n := utf8.RuneCountInString(line); n != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrNonRectangular, r+1, n, w)
		}
		c := 0
		for _, ch := range line {
			k, ok := KindOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrIllegalCharacter, ch, r+1, c+1)
			}
			pos := Position{Row: r, Col: c}
			g.cells = append(g.cells, Cell{pos: pos, kind: k})
			if k == Base {
				g.bases = append(g.bases, pos)
			}
			c++
		}
	}
	g.markWalls()

	return g, nil
}

// markWalls closes every side that faces the boundary or a Wall cell.
func (g *Grid) markWalls() {
	for i := range g.cells {
		c := &g.cells[i]
		for _, d := range Directions {
			n, ok := g.Neighbor(c.pos, d)
			if !ok || n.kind == Wall {
				c.edges[d] = EdgeWall
			}
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.width + p.Col
}

// Position converts a row-major index back to a coordinate.
// Complexity: O(1).
func (g *Grid) Position(idx int) Position {
	return Position{Row: idx / g.width, Col: idx % g.width}
}

// Cell returns the cell at p, or nil when p is out of bounds.
func (g *Grid) Cell(p Position) *Cell {
	if !g.InBounds(p) {
		return nil
	}
	return &g.cells[g.Index(p)]
}

// Neighbor returns the cell one step from p in direction d.
// ok is false when the step leaves the grid.
func (g *Grid) Neighbor(p Position, d Direction) (*Cell, bool) {
	n := p.Step(d)
	if !g.InBounds(n) {
		return nil, false
	}
	return &g.cells[g.Index(n)], true
}

// Bases returns the positions of all Base cells in row-major order.
func (g *Grid) Bases() []Position {
	out := make([]Position, len(g.bases))
	copy(out, g.bases)
	return out
}

// Count returns the number of cells of kind k.
func (g *Grid) Count(k Kind) int {
	n := 0
	for i := range g.cells {
		if g.cells[i].kind == k {
			n++
		}
	}
	return n
}

// MarkLeadsToBase resolves the edge of the cell at p in direction d as a
// route toward a base. Only an EdgeUnexplored edge changes; changed reports
// whether it did. When the mark leaves a Free cell with no unexplored edge,
// the cell is promoted to Safe and promoted is true.
// Marking a Wall cell or an out-of-bounds position is a no-op.
func (g *Grid) MarkLeadsToBase(p Position, d Direction) (changed, promoted bool) {
	c := g.Cell(p)
	if c == nil || c.kind == Wall || c.edges[d%4] != EdgeUnexplored {
		return false, false
	}
	c.edges[d%4] = EdgeLeadsToBase
	if c.promotable() {
		c.kind = Safe
		return true, true
	}
	return true, false
}

// Promote turns the Free cell at p into Safe when all of its edges are
// resolved and at least one is not a wall. Reports whether the kind changed.
func (g *Grid) Promote(p Position) bool {
	c := g.Cell(p)
	if c == nil || !c.promotable() {
		return false
	}
	c.kind = Safe
	return true
}

// Rows renders the grid back into one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for r := 0; r < g.height; r++ {
		sb.Reset()
		for _, c := range g.cells[r*g.width : (r+1)*g.width] {
			sb.WriteRune(c.kind.Rune())
		}
		rows[r] = sb.String()
	}
	return rows
}

// String renders the grid with a newline after every row.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for _, row := range g.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Clone returns a deep copy, including edge states.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]Cell, len(g.cells)),
		bases:  make([]Position, len(g.bases)),
	}
	copy(cp.cells, g.cells)
	copy(cp.bases, g.bases)
	return cp
}
