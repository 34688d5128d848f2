//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads palette-indexed cell data into a single image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	if gp.img != nil && gp.w == w && gp.h == h {
		return
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Blit paints cells with palette and draws the result scaled onto dst. The
// painter follows the grid if its size changed since the last call.
func (gp *GridPainter) Blit(dst *ebiten.Image, w, h int, cells []uint8, palette []color.RGBA, scale int) {
	gp.resize(w, h)
	if len(cells) != w*h {
		return
	}
	fillPaletteRGBA(gp.buf, cells, palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
