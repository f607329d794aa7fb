package core

import (
	"fmt"

	"lifegrid/pkg/life"
)

// StatusKind classifies the recent history of a running board.
type StatusKind int

const (
	// StatusActive means no repetition was found in the recent history.
	StatusActive StatusKind = iota
	// StatusExtinct means no cell is alive.
	StatusExtinct
	// StatusStill means the board did not change in the last generation.
	StatusStill
	// StatusOscillating means the board repeats with a period > 1.
	StatusOscillating
)

// Status describes the board state shown on the frontends.
type Status struct {
	Kind   StatusKind
	Period int
}

func (s Status) String() string {
	switch s.Kind {
	case StatusExtinct:
		return "extinct"
	case StatusStill:
		return "still"
	case StatusOscillating:
		return fmt.Sprintf("oscillating (period %d)", s.Period)
	default:
		return "active"
	}
}

// Sim is the contract a frontend drives. Implementations are not safe for
// concurrent use; callers serialize every call on one update path.
type Sim interface {
	Size() life.Size
	Grid() life.Grid
	Generation() int
	Status() Status

	Running() bool
	Start()
	Stop()
	Toggle()

	Randomize()
	Clear()
	StepOnce()
	ToggleCell(row, col int)
	Tick() bool
}
