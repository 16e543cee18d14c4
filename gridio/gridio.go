// Package gridio reads a grid.Grid from text and writes it back, one line per
// row and one character per cell.
package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/safemaze/grid"
)

// maxLineBytes bounds a single input row.
const maxLineBytes = 16 << 20

// Parse reads newline-separated rows from r and builds a Grid.
// A trailing "\r" on a row is dropped, and a final newline does not start a
// new row. Construction failures match grid.ErrMalformedInput; read failures
// are returned wrapped.
func Parse(r io.Reader) (*grid.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows []string
	for sc.Scan() {
		rows = append(rows, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read input: %w", err)
	}
	return grid.New(rows)
}

// Render writes g to w, each row followed by "\n".
func Render(w io.Writer, g *grid.Grid) error {
	bw := bufio.NewWriter(w)
	for _, row := range g.Rows() {
		if _, err := bw.WriteString(row); err != nil {
			return fmt.Errorf("gridio: write output: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("gridio: write output: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gridio: write output: %w", err)
	}
	return nil
}
