//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/pkg/life"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	size life.Size
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size life.Size) *GridPainter {
	gp := &GridPainter{size: size, buf: make([]byte, 4*size.Cells())}
	gp.img = ebiten.NewImage(size.Cols, size.Rows)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, g life.Grid, on, off color.Color, scale int) {
	if g.Size() != gp.size {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
