package explore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/safemaze/explore"
	"github.com/katalvlaran/safemaze/grid"
)

// explored builds a grid from rows and runs Explore on it.
func explored(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows)
	require.NoError(t, err)
	explore.Explore(g)
	return g
}

//----------------------------------------------------------------------------//
// Fixed layouts
//----------------------------------------------------------------------------//

// TestExplore_Layouts runs Explore over small hand-checked mazes.
func TestExplore_Layouts(t *testing.T) {
	cases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "Corridor",
			in:   []string{"#####", "#B  #", "#####"},
			want: []string{"#####", "#BSS#", "#####"},
		},
		{
			name: "Room2x3",
			in:   []string{"#####", "#B  #", "#   #", "#####"},
			want: []string{"#####", "#BSS#", "#SSS#", "#####"},
		},
		{
			name: "Room3x3",
			in:   []string{"#####", "#B  #", "#   #", "#   #", "#####"},
			want: []string{"#####", "#BSS#", "#SSS#", "#SSS#", "#####"},
		},
		{
			name: "LCorridor",
			in:   []string{"#####", "#B  #", "### #", "### #", "#####"},
			want: []string{"#####", "#BSS#", "###S#", "###S#", "#####"},
		},
		{
			name: "BasesAtBothEnds",
			in:   []string{"#######", "#B   B#", "#######"},
			want: []string{"#######", "#BSSSB#", "#######"},
		},
		{
			name: "NoBorderWalls",
			in:   []string{"B  "},
			want: []string{"BSS"},
		},
		{
			name: "EnclosedPocket",
			in:   []string{"#######", "#B#   #", "#######"},
			want: []string{"#######", "#B#   #", "#######"},
		},
		{
			name: "FourWallCell",
			in:   []string{"#####", "#B# #", "#####"},
			want: []string{"#####", "#B# #", "#####"},
		},
		{
			name: "NoBase",
			in:   []string{"#####", "#   #", "#####"},
			want: []string{"#####", "#   #", "#####"},
		},
		{
			name: "LoneBase",
			in:   []string{"B"},
			want: []string{"B"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := explored(t, tc.in...)
			assert.Equal(t, tc.want, g.Rows())
		})
	}
}

// TestExplore_CornerInOnePass checks that the inside corner of an L-shaped
// corridor is promoted by the walk started northward from the base, before
// any other start direction runs.
//
//	#####
//	#B  #
//	### #
//	### #
//	#####
func TestExplore_CornerInOnePass(t *testing.T) {
	g, err := grid.New([]string{"#####", "#B  #", "### #", "### #", "#####"})
	require.NoError(t, err)
	base := grid.Position{Row: 1, Col: 1}
	corner := grid.Position{Row: 1, Col: 3}

	var cornerKind grid.Kind
	recorded := false
	explore.Explore(g, explore.WithOnVisit(func(pos grid.Position, dir grid.Direction) {
		if !recorded && pos == base && dir == grid.West {
			cornerKind = g.Cell(corner).Kind()
			recorded = true
		}
	}))

	require.True(t, recorded)
	assert.Equal(t, grid.Safe, cornerKind)
}

func TestExplore_Stats(t *testing.T) {
	g, err := grid.New([]string{"#####", "#B  #", "#####"})
	require.NoError(t, err)

	var stats explore.Stats
	var resolved []grid.Position
	var promoted []grid.Position
	explore.Explore(g,
		explore.WithStats(&stats),
		explore.WithOnResolve(func(pos grid.Position, _ grid.Direction) { resolved = append(resolved, pos) }),
		explore.WithOnPromote(func(pos grid.Position) { promoted = append(promoted, pos) }),
	)

	assert.Equal(t, 2, stats.Passes, "one productive sweep and one quiet sweep")
	assert.Equal(t, 3, stats.Resolved)
	assert.Equal(t, 2, stats.Promoted)
	assert.Positive(t, stats.Visits)
	assert.Len(t, resolved, stats.Resolved)
	assert.ElementsMatch(t, []grid.Position{{Row: 1, Col: 2}, {Row: 1, Col: 3}}, promoted)
}

func TestExplore_StatsReset(t *testing.T) {
	stats := explore.Stats{Passes: 9, Visits: 9, Resolved: 9, Promoted: 9}
	g, err := grid.New([]string{"#####", "#   #", "#####"})
	require.NoError(t, err)

	explore.Explore(g, explore.WithStats(&stats))
	assert.Equal(t, explore.Stats{Passes: 1}, stats)
}

func TestExplore_Idempotent(t *testing.T) {
	g := explored(t, "#######", "#B    #", "# ## ##", "#    B#", "#######")
	once := g.Rows()
	snapshot := edges(g)

	var stats explore.Stats
	explore.Explore(g, explore.WithStats(&stats))

	assert.Equal(t, once, g.Rows())
	assert.Equal(t, snapshot, edges(g))
	assert.Zero(t, stats.Resolved)
	assert.Zero(t, stats.Promoted)
	assert.Equal(t, 1, stats.Passes)
}

func TestExplore_NilGrid(t *testing.T) {
	assert.NotPanics(t, func() { explore.Explore(nil) })
}

// TestExplore_PreMarkedSafe: an 'S' from the input is an open cell that is never demoted.
func TestExplore_PreMarkedSafe(t *testing.T) {
	g := explored(t, "#####", "#BS #", "#####")
	assert.Equal(t, []string{"#####", "#BSS#", "#####"}, g.Rows())
}

// TestExplore_BranchLeftOpen documents that a junction whose side arms are
// never walked keeps its unexplored edges and is not promoted.
//
//	#####
//	#   #
//	## ##
//	##B##
//	#####
func TestExplore_BranchLeftOpen(t *testing.T) {
	g := explored(t, "#####", "#   #", "## ##", "##B##", "#####")

	junction := g.Cell(grid.Position{Row: 1, Col: 2})
	assert.Equal(t, grid.Free, junction.Kind())
	assert.Equal(t, grid.EdgeLeadsToBase, junction.Edge(grid.South))
	assert.False(t, junction.Explored())

	stem := g.Cell(grid.Position{Row: 2, Col: 2})
	assert.Equal(t, grid.EdgeLeadsToBase, stem.Edge(grid.South))
	assertSound(t, g)
}

// edges captures every edge state in row-major, direction order.
func edges(g *grid.Grid) []grid.Edge {
	out := make([]grid.Edge, 0, 4*g.Width()*g.Height())
	for idx := 0; idx < g.Width()*g.Height(); idx++ {
		c := g.Cell(g.Position(idx))
		for _, d := range grid.Directions {
			out = append(out, c.Edge(d))
		}
	}
	return out
}

// assertSound checks that no Safe cell has an unexplored edge.
func assertSound(t *testing.T, g *grid.Grid) {
	t.Helper()
	for idx := 0; idx < g.Width()*g.Height(); idx++ {
		c := g.Cell(g.Position(idx))
		if c.Kind() == grid.Safe {
			assert.True(t, c.Explored(), "Safe cell %v has an unexplored edge", c.Position())
			assert.Less(t, c.WallCount(), 4, "Safe cell %v has no exit", c.Position())
		}
	}
}
