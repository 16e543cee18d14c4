// Package safemaze finds the cells of a maze from which a wall-following
// walk is guaranteed to lead back to a base.
//
// A maze is a rectangle of walls '#', free cells ' ' and bases 'B'. Every
// open cell has four edges, one per direction, each either a wall, known to
// lead to a base, or not yet explored. Exploration starts from every base in
// every direction, resolves edges as it walks, and promotes a free cell to
// safe 'S' once none of its edges is left unexplored.
//
// The work is split across subpackages:
//
//	grid/    cells, edges, directions and the validated Grid
//	explore/ the traversal that resolves edges and promotes cells
//	region/  connectivity: components, reachability and a census
//	gridio/  reading a maze from text and writing it back
//	view/    a terminal viewer for an explored grid
//
// cmd/safemaze wraps it all as a stdin-to-stdout filter:
//
//	$ printf '#####\n#B  #\n#####\n' | safemaze
//	#####
//	#BSS#
//	#####
//
// and "safemaze view FILE" shows the explored maze in the terminal.
package safemaze
