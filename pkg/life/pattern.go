package life

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	aliveRune = 'O'
	deadRune  = '.'
)

// Parse builds a grid from an ASCII picture. Each non-empty line is a row;
// 'O', '#', '*' and '1' mark live cells, '.', '_', ' ' and '0' dead ones.
// All rows must have the same width.
func Parse(pattern string) (Grid, error) {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(pattern, "\r\n", "\n"), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) == 0 {
		return Grid{}, errors.New("[Parse] pattern has no rows")
	}

	cols := len(lines[0])
	cells := make([]uint8, 0, cols*len(lines))
	for r, line := range lines {
		if len(line) != cols {
			return Grid{}, errors.Errorf("[Parse] row %d has %d columns, want %d", r, len(line), cols)
		}
		for c := 0; c < len(line); c++ {
			switch line[c] {
			case aliveRune, '#', '*', '1':
				cells = append(cells, 1)
			case deadRune, '_', ' ', '0':
				cells = append(cells, 0)
			default:
				return Grid{}, errors.Errorf("[Parse] unexpected %q at row %d col %d", line[c], r, c)
			}
		}
	}
	return FromCells(len(lines), cols, cells)
}

// Stamp returns a copy of g with the live cells of pattern copied in at
// (row, col). Cells falling outside g are dropped.
func Stamp(g, pattern Grid, row, col int) Grid {
	next := g.clone()
	for r := 0; r < pattern.rows; r++ {
		for c := 0; c < pattern.cols; c++ {
			if pattern.cells[pattern.Index(r, c)] == 0 || !g.Contains(row+r, col+c) {
				continue
			}
			next.cells[g.Index(row+r, col+c)] = 1
		}
	}
	return next
}
