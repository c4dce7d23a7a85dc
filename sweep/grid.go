package sweep

import "math"

// Grid is a dense row-major 2D array of float64, indexed (row, col) =
// (q-index, p-index). Cells default to zero; the sweep overwrites every
// cell exactly once.
type Grid struct {
	rows, cols int
	data       []float64
}

// NewGrid allocates a rows×cols grid. Returns ErrGridShape on non-positive
// dimensions.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrGridShape
	}

	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows (the q-axis length).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns (the p-axis length).
func (g *Grid) Cols() int { return g.cols }

// At returns the cell value at (row, col). Indices are trusted; callers
// iterate axis ranges, so bounds are checked by the runtime only.
func (g *Grid) At(row, col int) float64 { return g.data[row*g.cols+col] }

// Set writes the cell value at (row, col).
func (g *Grid) Set(row, col int, v float64) { g.data[row*g.cols+col] = v }

// CountNonFinite reports how many cells hold NaN or ±Inf — the degenerate
// grid points a caller may want to mask before rendering or statistics.
func (g *Grid) CountNonFinite() int {
	var n int
	for _, v := range g.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			n++
		}
	}

	return n
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols, data: make([]float64, len(g.data))}
	copy(c.data, g.data)

	return c
}

// Row returns a copy of one row — handy for profile slicing without
// exposing the backing array.
func (g *Grid) Row(row int) []float64 {
	out := make([]float64, g.cols)
	copy(out, g.data[row*g.cols:(row+1)*g.cols])

	return out
}
