// Package sim owns the mutable state around an immutable life.Grid: the
// running flag, the generation counter and the random source. Frontends
// drive it either from their own frame loop (Session.Tick) or through a
// timer-backed Loop.
package sim

import (
	"math/rand/v2"

	"lifegrid/internal/core"
	pkgcore "lifegrid/pkg/core"
	"lifegrid/pkg/life"
)

// DefaultHistory is the number of past generations kept for status detection.
const DefaultHistory = 8

// Options configures a Session.
type Options struct {
	Rows    int
	Cols    int
	Density float64
	Seed    int64
	// Workers > 1 steps the grid in parallel row bands.
	Workers int
	// History bounds the oscillation period Status can recognise.
	History int
}

// Session is the explicit simulation state owned by a frontend. It is not
// safe for concurrent use; see Loop for a goroutine-safe wrapper.
type Session struct {
	opts       Options
	grid       life.Grid
	running    bool
	generation int
	rng        *rand.Rand
	history    []uint64
}

var _ core.Sim = (*Session)(nil)

// NewSession returns a stopped session holding an empty grid.
func NewSession(opts Options) *Session {
	if opts.History <= 0 {
		opts.History = DefaultHistory
	}
	return &Session{
		opts: opts,
		grid: life.Empty(opts.Rows, opts.Cols),
		rng:  pkgcore.NewRNG(opts.Seed).Source(),
	}
}

// Size returns the fixed grid dimensions.
func (s *Session) Size() life.Size { return life.Size{Rows: s.opts.Rows, Cols: s.opts.Cols} }

// Grid returns the current snapshot.
func (s *Session) Grid() life.Grid { return s.grid }

// Generation returns the number of steps since the last reset.
func (s *Session) Generation() int { return s.generation }

// Running reports whether ticks advance the grid.
func (s *Session) Running() bool { return s.running }

// Start makes subsequent ticks advance the grid.
func (s *Session) Start() { s.running = true }

// Stop halts the tick loop. The current snapshot is kept.
func (s *Session) Stop() { s.running = false }

// Toggle flips between running and stopped.
func (s *Session) Toggle() { s.running = !s.running }

// Randomize replaces the grid with a freshly seeded random one.
func (s *Session) Randomize() {
	s.reset(life.Random(s.opts.Rows, s.opts.Cols, s.opts.Density, s.rng))
}

// Clear replaces the grid with an all-dead one of the same size.
func (s *Session) Clear() {
	s.reset(life.Empty(s.opts.Rows, s.opts.Cols))
}

// Load replaces the grid with pattern stamped at the centre of an empty grid.
func (s *Session) Load(pattern life.Grid) {
	row := (s.opts.Rows - pattern.Rows()) / 2
	col := (s.opts.Cols - pattern.Cols()) / 2
	s.reset(life.Stamp(life.Empty(s.opts.Rows, s.opts.Cols), pattern, max(row, 0), max(col, 0)))
}

// StepOnce applies exactly one generation whether or not the session runs.
func (s *Session) StepOnce() { s.advance() }

// Tick advances one generation if the session is running and reports
// whether it did.
func (s *Session) Tick() bool {
	if !s.running {
		return false
	}
	s.advance()
	return true
}

// ToggleCell flips one cell of the current snapshot. Out-of-range
// coordinates are ignored.
func (s *Session) ToggleCell(row, col int) {
	if !s.grid.Contains(row, col) {
		return
	}
	s.grid = s.grid.Toggle(row, col)
	s.history = s.history[:0]
}

// View is a consistent copy of what a frontend draws.
type View struct {
	Grid       life.Grid
	Generation int
	Running    bool
	Status     core.Status
}

// View returns the current state for drawing.
func (s *Session) View() View {
	return View{Grid: s.grid, Generation: s.generation, Running: s.running, Status: s.Status()}
}

// Status classifies the current board against the recent history.
func (s *Session) Status() core.Status {
	if s.grid.Population() == 0 {
		return core.Status{Kind: core.StatusExtinct}
	}
	h := s.grid.Hash()
	for period := 1; period <= len(s.history); period++ {
		if s.history[len(s.history)-period] != h {
			continue
		}
		if period == 1 {
			return core.Status{Kind: core.StatusStill, Period: 1}
		}
		return core.Status{Kind: core.StatusOscillating, Period: period}
	}
	return core.Status{Kind: core.StatusActive}
}

func (s *Session) advance() {
	s.history = append(s.history, s.grid.Hash())
	if len(s.history) > s.opts.History {
		s.history = s.history[len(s.history)-s.opts.History:]
	}
	if s.opts.Workers > 1 {
		s.grid = life.StepParallel(s.grid, s.opts.Workers)
	} else {
		s.grid = life.Step(s.grid)
	}
	s.generation++
}

func (s *Session) reset(g life.Grid) {
	s.grid = g
	s.generation = 0
	s.history = s.history[:0]
}
