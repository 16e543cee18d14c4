package grid

// Cell is one grid position. Its fields are changed only through Grid methods,
// which keep edge transitions monotone and kind changes limited to Free → Safe.
type Cell struct {
	pos   Position
	kind  Kind
	edges [4]Edge
}

// Position returns the cell coordinates.
func (c *Cell) Position() Position { return c.pos }

// Kind returns the cell classification.
func (c *Cell) Kind() Kind { return c.kind }

// Edge returns the state of the edge in direction d.
func (c *Cell) Edge(d Direction) Edge { return c.edges[d%4] }

// Open reports whether the cell can be entered.
func (c *Cell) Open() bool { return c.kind != Wall }

// WallCount returns how many of the four edges are EdgeWall.
func (c *Cell) WallCount() int {
	n := 0
	for _, e := range c.edges {
		if e == EdgeWall {
			n++
		}
	}
	return n
}

// Explored reports whether no edge is EdgeUnexplored.
func (c *Cell) Explored() bool {
	for _, e := range c.edges {
		if e == EdgeUnexplored {
			return false
		}
	}
	return true
}

// promotable: a Free cell with every exit resolved and at least one route out.
func (c *Cell) promotable() bool {
	return c.kind == Free && c.Explored() && c.WallCount() < 4
}
