package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// offset is a Moore-neighborhood displacement in rows and columns.
type offset struct{ dr, dc int }

// moore lists the eight neighbors of a cell.
var moore = [8]offset{
	{0, 1},
	{0, -1},
	{1, -1},
	{-1, 1},
	{1, 1},
	{-1, -1},
	{1, 0},
	{-1, 0},
}

// Rule applies B3/S23: a live cell survives with 2 or 3 neighbors, a dead
// cell is born with exactly 3.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// neighborhood holds the flattened index deltas for one grid width. A delta
// is only applied after checking that the column it lands in stays inside
// the grid, so idx±1 never reaches into the adjacent row.
type neighborhood struct {
	cols   int
	deltas [8]int
}

func newNeighborhood(cols int) neighborhood {
	n := neighborhood{cols: cols}
	for i, o := range moore {
		n.deltas[i] = o.dr*cols + o.dc
	}
	return n
}

// count returns the number of live neighbors of the cell at idx.
func (n neighborhood) count(cells []uint8, idx int) int {
	col := idx % n.cols
	neighbors := 0
	for i, d := range n.deltas {
		c := col + moore[i].dc
		if c < 0 || c >= n.cols {
			continue
		}
		j := idx + d
		if j < 0 || j >= len(cells) {
			continue
		}
		neighbors += int(cells[j])
	}
	return neighbors
}

// Neighbors returns the live Moore-neighbor count of (row, col). Cells
// outside the grid count as dead.
func (g Grid) Neighbors(row, col int) int {
	if !g.Contains(row, col) {
		return 0
	}
	return newNeighborhood(g.cols).count(g.cells, g.Index(row, col))
}

// Step computes the next generation. Every cell is evaluated against the
// previous snapshot only.
func Step(g Grid) Grid {
	next := Empty(g.rows, g.cols)
	if g.cols == 0 {
		return next
	}
	stepRows(g, next, newNeighborhood(g.cols), 0, g.rows)
	return next
}

// StepParallel computes the same generation as Step, splitting the rows into
// bands evaluated concurrently. workers <= 0 uses one band per CPU.
func StepParallel(g Grid, workers int) Grid {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers == 1 || g.rows < 2 {
		return Step(g)
	}
	next := Empty(g.rows, g.cols)
	if g.cols == 0 {
		return next
	}

	var (
		eg            errgroup.Group
		n             = newNeighborhood(g.cols)
		rowsPerWorker = (g.rows + workers - 1) / workers
	)
	for i := range workers {
		startRow := i * rowsPerWorker
		if startRow >= g.rows {
			break
		}
		endRow := min(startRow+rowsPerWorker, g.rows)
		eg.Go(func() error {
			stepRows(g, next, n, startRow, endRow)
			return nil
		})
	}
	// bands never fail; Wait only joins them
	_ = eg.Wait()
	return next
}

func stepRows(g, next Grid, n neighborhood, startRow, endRow int) {
	for idx := startRow * g.cols; idx < endRow*g.cols; idx++ {
		if Rule(g.cells[idx] == 1, n.count(g.cells, idx)) {
			next.cells[idx] = 1
		}
	}
}
