//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifegrid/internal/core"
)

// Toolbar renders the control buttons and the status line under the board.
type Toolbar struct {
	sim     core.Sim
	width   int
	actions []Action
	rects   []image.Rectangle
	panel   *ebiten.Image
	pixel   *ebiten.Image
	offsetY int
}

// NewToolbar constructs a toolbar spanning width pixels.
func NewToolbar(sim core.Sim, width int, actions []Action) *Toolbar {
	t := &Toolbar{sim: sim, width: width, actions: actions}
	t.rects = layoutButtons(len(actions), width)
	t.pixel = ebiten.NewImage(1, 1)
	t.pixel.Fill(color.White)
	return t
}

// Update handles clicks on the buttons. offsetY is the top of the toolbar
// in screen coordinates. It reports whether a click was consumed.
func (t *Toolbar) Update(offsetY int) bool {
	if t == nil {
		return false
	}
	t.offsetY = offsetY
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if my < offsetY {
		return false
	}
	i := hitButton(t.rects, mx, my-offsetY)
	if i < 0 {
		return true
	}
	t.actions[i].Apply(t.sim)
	return true
}

// Draw paints the toolbar at its last offset.
func (t *Toolbar) Draw(screen *ebiten.Image) {
	if t == nil || t.width <= 0 {
		return
	}
	if t.panel == nil {
		t.panel = ebiten.NewImage(t.width, ToolbarHeight)
	}
	t.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	for i, a := range t.actions {
		t.drawButton(t.rects[i], a.Label(t.sim))
	}

	face := basicfont.Face7x13
	status := fmt.Sprintf("gen %d  alive %d  %s", t.sim.Generation(), t.sim.Grid().Population(), t.sim.Status())
	text.Draw(t.panel, status, face, panelPadding, statusBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(t.offsetY))
	screen.DrawImage(t.panel, op)
}

func (t *Toolbar) drawButton(rect image.Rectangle, label string) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	t.panel.DrawImage(t.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(t.panel, label, face, x, y, fg)
}
