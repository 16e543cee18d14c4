// Package grid defines cell kinds, edge states, directions and sentinel errors
// for the grid subpackage of github.com/katalvlaran/safemaze.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrMalformedInput is the root of every construction failure.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrEmptyGrid indicates the input has no rows or an empty first row.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
	// ErrIllegalCharacter indicates a character outside {'#', ' ', 'B', 'S'}.
	ErrIllegalCharacter = fmt.Errorf("%w: illegal character", ErrMalformedInput)
)

// Kind classifies a cell.
type Kind uint8

const (
	// Wall blocks movement.
	Wall Kind = iota
	// Free is an open cell not yet known to be safe.
	Free
	// Base is a traversal origin and a safe destination.
	Base
	// Safe is a Free cell whose every exit is a known wall or a known route to a base.
	Safe
)

// Rune returns the input/output character of k.
func (k Kind) Rune() rune {
	switch k {
	case Wall:
		return '#'
	case Free:
		return ' '
	case Base:
		return 'B'
	case Safe:
		return 'S'
	}
	return '?'
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Free:
		return "Free"
	case Base:
		return "Base"
	case Safe:
		return "Safe"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// KindOf maps an input character to its Kind.
func KindOf(r rune) (Kind, bool) {
	switch r {
	case '#':
		return Wall, true
	case ' ':
		return Free, true
	case 'B':
		return Base, true
	case 'S':
		return Safe, true
	}
	return 0, false
}

// Edge is what is known about leaving a cell in one direction.
// Transitions are one-way: EdgeUnexplored → EdgeWall | EdgeLeadsToBase.
type Edge uint8

const (
	// EdgeUnexplored is the initial state of every edge.
	EdgeUnexplored Edge = iota
	// EdgeWall means the neighbor is a Wall cell or the grid boundary.
	EdgeWall
	// EdgeLeadsToBase means moving this way is a safe route toward a base.
	EdgeLeadsToBase
)

// String implements fmt.Stringer.
func (e Edge) String() string {
	switch e {
	case EdgeUnexplored:
		return "Unexplored"
	case EdgeWall:
		return "Wall"
	case EdgeLeadsToBase:
		return "LeadsToBase"
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// Direction is one of the four compass directions, ordered as a ring
// North → West → South → East so that d+1 is a quarter turn to the left.
type Direction uint8

const (
	North Direction = iota
	West
	South
	East
)

// Directions lists all directions in ring order.
var Directions = [4]Direction{North, West, South, East}

// Opposite returns the direction rotated by 180°.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Left returns the direction rotated a quarter turn counter-clockwise.
func (d Direction) Left() Direction { return (d + 1) % 4 }

// Right returns the direction rotated a quarter turn clockwise.
func (d Direction) Right() Direction { return (d + 3) % 4 }

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case West:
		return "West"
	case South:
		return "South"
	case East:
		return "East"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// offsets holds the (row, col) delta per Direction, indexed by Direction.
var offsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// Position is a (row, col) coordinate; row 0 is the first input line.
type Position struct {
	Row, Col int
}

// Step returns the position one cell away in direction d. It may lie outside the grid.
func (p Position) Step(d Direction) Position {
	o := offsets[d%4]
	return Position{Row: p.Row + o[0], Col: p.Col + o[1]}
}

// String implements fmt.Stringer.
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
