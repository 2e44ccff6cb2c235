package layout

import "github.com/quantpoints/hawkes-diagnostics/common"

// Grid is a subplot arrangement of Rows x Cols cells, filled row-major.
type Grid struct {
	Rows int
	Cols int
}

// Resolve returns the grid to use for dim plots. A nil shape selects a
// single row of dim cells. The grid may be larger than dim (three plots on a
// 2x2 grid) but never smaller.
func Resolve(shape *Grid, dim int) (Grid, error) {
	if dim <= 0 {
		return Grid{}, common.ErrorInvalidInput
	}
	if shape == nil {
		return Grid{Rows: 1, Cols: dim}, nil
	}
	if shape.Rows <= 0 || shape.Cols <= 0 || shape.Rows*shape.Cols < dim {
		return Grid{}, common.ErrorInvalidInput
	}
	return *shape, nil
}

func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// Index maps cell (i, j) to its plot index.
func (g Grid) Index(i, j int) int {
	return i*g.Cols + j
}

// Position is the inverse of Index.
func (g Grid) Position(n int) (int, int) {
	return n / g.Cols, n % g.Cols
}

// Contains reports whether cell index n holds one of dim plots, i.e. the
// cell is not a trailing empty slot of an oversized grid.
func Contains(n, dim int) bool {
	return n >= 0 && n < dim
}
