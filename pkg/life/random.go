package life

import (
	"math/rand/v2"

	"lifegrid/pkg/core"
)

// DefaultDensity leaves roughly 30% of cells alive: a cell is seeded alive
// only when its draw exceeds the density.
const DefaultDensity = 0.7

// Random returns a grid where each cell is independently alive when
// rng.Float64() > density.
func Random(rows, cols int, density float64, rng *rand.Rand) Grid {
	g := Empty(rows, cols)
	core.FillThreshold(rng, g.cells, density)
	return g
}
