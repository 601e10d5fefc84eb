//go:build ebiten

package render

import (
	"image/color"

	"grid-ca/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from grid cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid's cells into the painter image and draws it
// scaled onto dst. Grids whose size does not match the painter are
// dropped rather than rendered partially.
func (gp *GridPainter) Blit(dst *ebiten.Image, g grid.Grid[uint8], on, off color.Color, scale int) {
	b := g.Bounds()
	if b.W != gp.w || b.H != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, g, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
