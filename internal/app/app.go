//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
)

var actionKeys = map[ebiten.Key]rune{
	ebiten.KeySpace: ' ',
	ebiten.KeyR:     'r',
	ebiten.KeyC:     'c',
	ebiten.KeyN:     'n',
}

// Game adapts a Life session to the ebiten.Game interface. ebiten calls
// Update and Draw from one goroutine, which serializes user actions with
// simulation ticks.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	toolbar *ui.Toolbar
	actions []ui.Action
	step    *core.FixedStep

	onColor  color.Color
	offColor color.Color

	scale int
}

// New constructs a Game for the provided session.
func New(sim core.Sim, scale int, interval time.Duration, manualStep bool) *Game {
	size := sim.Size()
	actions := ui.Actions(manualStep)
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size),
		toolbar:  ui.NewToolbar(sim, size.Cols*scale, actions),
		actions:  actions,
		step:     core.NewFixedStep(interval),
		onColor:  render.AliveColor,
		offColor: render.DeadColor,
		scale:    scale,
	}
}

// Update handles input and advances the simulation when a tick is due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	wasRunning := g.sim.Running()
	for key, r := range actionKeys {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		if a, ok := ui.ActionForKey(g.actions, r); ok {
			a.Apply(g.sim)
		}
	}

	boardHeight := g.sim.Size().Rows * g.scale
	if !g.toolbar.Update(boardHeight) && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if row, col, ok := ui.CellAt(x, y, g.scale, g.sim.Size()); ok {
			g.sim.ToggleCell(row, col)
		}
	}

	if !wasRunning && g.sim.Running() {
		g.step.Reset()
	}
	if g.sim.Running() && g.step.ShouldStep() {
		g.sim.Tick()
	}
	return nil
}

// Draw renders the board and the toolbar.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid(), g.onColor, g.offColor, g.scale)
	g.toolbar.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.Cols * g.scale, s.Rows*g.scale + ui.ToolbarHeight
}
