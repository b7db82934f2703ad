// Package render paints heightmap.Grid snapshots into ebiten images using
// a continuous elevation palette.
package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"terra/internal/heightmap"
)

// GridPainter uploads elevation data into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), img: ebiten.NewImage(w, h)}
}

// Blit uploads g's elevation data (colored by its own min/max extent) into
// the painter's image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *heightmap.Grid, scale int) {
	data := g.Data()
	if len(data) != gp.w*gp.h {
		return
	}
	lo, hi := extent(data)
	fillElevationRGBA(gp.buf, data, lo, hi)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

func extent(data []float32) (lo, hi float64) {
	if len(data) == 0 {
		return 0, 0
	}
	lo, hi = float64(data[0]), float64(data[0])
	for _, v := range data {
		f := float64(v)
		if f < lo {
			lo = f
		}
		if f > hi {
			hi = f
		}
	}
	return lo, hi
}
