package life

import (
	"hash/fnv"
	"strings"

	"github.com/pkg/errors"
)

// Size describes the dimensions of a grid.
type Size struct {
	Rows int
	Cols int
}

// Cells returns the number of cells in a grid of this size.
func (s Size) Cells() int { return s.Rows * s.Cols }

// Grid is an immutable snapshot of binary cell states stored row-major.
// Every operation that changes a cell returns a new Grid.
type Grid struct {
	rows, cols int
	cells      []uint8
}

// Empty returns an all-dead grid with the provided dimensions.
func Empty(rows, cols int) Grid {
	return Grid{rows: rows, cols: cols, cells: make([]uint8, rows*cols)}
}

// FromCells builds a grid from row-major cell values. Any non-zero value is
// treated as alive.
func FromCells(rows, cols int, cells []uint8) (Grid, error) {
	if len(cells) != rows*cols {
		return Grid{}, errors.Errorf("[FromCells] got %d cells for a %dx%d grid", len(cells), rows, cols)
	}
	g := Empty(rows, cols)
	for i, c := range cells {
		if c != 0 {
			g.cells[i] = 1
		}
	}
	return g, nil
}

// Size returns the grid dimensions.
func (g Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// Index returns the flattened index for (row, col).
func (g Grid) Index(row, col int) int { return row*g.cols + col }

// Contains reports whether (row, col) lies inside the grid.
func (g Grid) Contains(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the cell value at (row, col), or 0 outside the grid.
func (g Grid) At(row, col int) uint8 {
	if !g.Contains(row, col) {
		return 0
	}
	return g.cells[g.Index(row, col)]
}

// Alive reports whether the cell at (row, col) is alive.
func (g Grid) Alive(row, col int) bool { return g.At(row, col) == 1 }

// Cells returns a copy of the row-major cell values.
func (g Grid) Cells() []uint8 {
	out := make([]uint8, len(g.cells))
	copy(out, g.cells)
	return out
}

// Population returns the number of live cells.
func (g Grid) Population() (count int) {
	for _, c := range g.cells {
		count += int(c)
	}
	return
}

// Toggle returns a new grid with the cell at (row, col) flipped. Coordinates
// outside the grid return an unchanged copy.
func (g Grid) Toggle(row, col int) Grid {
	next := g.clone()
	if g.Contains(row, col) {
		next.cells[g.Index(row, col)] ^= 1
	}
	return next
}

// Set returns a new grid with the cell at (row, col) forced alive or dead.
func (g Grid) Set(row, col int, alive bool) Grid {
	next := g.clone()
	if g.Contains(row, col) {
		var v uint8
		if alive {
			v = 1
		}
		next.cells[g.Index(row, col)] = v
	}
	return next
}

// Equal reports whether both grids have the same size and cells.
func (g Grid) Equal(other Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns a fingerprint of the grid state used for cycle detection.
func (g Grid) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte{byte(g.rows >> 8), byte(g.rows), byte(g.cols >> 8), byte(g.cols)})
	h.Write(g.cells)
	return h.Sum64()
}

// String renders the grid with 'O' for live cells and '.' for dead ones.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[g.Index(r, c)] == 1 {
				b.WriteByte(aliveRune)
			} else {
				b.WriteByte(deadRune)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g Grid) clone() Grid {
	return Grid{rows: g.rows, cols: g.cols, cells: g.Cells()}
}
