package hydraulic

import (
	"math"

	"terra/internal/heightmap"
)

// cornerWeights returns the four bilinear corner weights and their integer
// coordinates for the cell containing fractional position (x,y).
func cornerWeights(x, y float64) (x0, y0 int, w00, w10, w01, w11 float64) {
	x0 = int(x)
	y0 = int(y)
	fx := x - float64(x0)
	fy := y - float64(y0)
	w00 = (1 - fx) * (1 - fy)
	w10 = fx * (1 - fy)
	w01 = (1 - fx) * fy
	w11 = fx * fy
	return
}

// depositCorners adds amount D to the four bilinear corners of the cell
// containing (x,y), weighted by the corner's bilinear contribution.
func depositCorners(g *heightmap.Grid, x, y, amount float64) {
	x0, y0, w00, w10, w01, w11 := cornerWeights(x, y)
	addClamped(g, x0, y0, w00*amount, false)
	addClamped(g, x0+1, y0, w10*amount, false)
	addClamped(g, x0, y0+1, w01*amount, false)
	addClamped(g, x0+1, y0+1, w11*amount, false)
}

// erodeCorners removes amount E from the four bilinear corners of the cell
// containing (x,y). When progressive is true, each cell's decrement is
// clamped so its height cannot drop below zero. Returns the amount actually
// removed from the terrain (which can be less than E if the clamp or a
// skipped off-grid corner reduced it).
func erodeCorners(g *heightmap.Grid, x, y, amount float64, progressive bool) float64 {
	x0, y0, w00, w10, w01, w11 := cornerWeights(x, y)
	removed := 0.0
	removed += addClamped(g, x0, y0, -w00*amount, progressive)
	removed += addClamped(g, x0+1, y0, -w10*amount, progressive)
	removed += addClamped(g, x0, y0+1, -w01*amount, progressive)
	removed += addClamped(g, x0+1, y0+1, -w11*amount, progressive)
	return removed
}

// addClamped adds delta to the cell at (x,y) if in bounds. When clamp is
// true and delta is negative, the decrement is capped so the resulting
// height cannot go below zero; this is applied per target cell, never
// globally renormalized across the other corners/kernel cells. Returns the
// magnitude of the decrement actually applied (0 for a deposit or a
// skipped out-of-bounds cell).
func addClamped(g *heightmap.Grid, x, y int, delta float64, clamp bool) float64 {
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		return 0
	}
	cur := float64(g.At(x, y))
	if clamp && delta < 0 && cur+delta < 0 {
		delta = -cur
	}
	g.Set(x, y, float32(cur+delta))
	if delta < 0 {
		return -delta
	}
	return 0
}

// radiusKernelWeights computes the circular distance-weighted kernel
// weights for erosionRadius R centered on the cell containing (x,y). It
// returns the in-grid cell coordinates and their normalized weights; cells
// off the grid are skipped, and the returned weights already sum to 1. If
// the raw weight sum is <= 1e-4 the kernel is a no-op (nil slices).
func radiusKernelWeights(g *heightmap.Grid, x, y float64, radius int) (xs, ys []int, weights []float64) {
	cx := int(x)
	cy := int(y)
	R := radius
	rawXs := make([]int, 0, (2*R+1)*(2*R+1))
	rawYs := make([]int, 0, (2*R+1)*(2*R+1))
	raw := make([]float64, 0, (2*R+1)*(2*R+1))
	sum := 0.0
	for dy := -R; dy <= R; dy++ {
		py := cy + dy
		if py < 0 || py >= g.H {
			continue
		}
		for dx := -R; dx <= R; dx++ {
			px := cx + dx
			if px < 0 || px >= g.W {
				continue
			}
			d := math.Sqrt(float64(dx*dx + dy*dy))
			if d > float64(R) {
				continue
			}
			w := 1 - d/float64(R)
			if w <= 0 {
				continue
			}
			rawXs = append(rawXs, px)
			rawYs = append(rawYs, py)
			raw = append(raw, w)
			sum += w
		}
	}
	if sum <= 1e-4 {
		return nil, nil, nil
	}
	weights = make([]float64, len(raw))
	for i, w := range raw {
		weights[i] = w / sum
	}
	return rawXs, rawYs, weights
}

// erodeKernel removes amount E across the circular distance-weighted
// kernel centered on (x,y). When progressive is true each target cell's
// decrement is clamped so its height cannot drop below zero. Returns the
// amount actually removed from the terrain.
func erodeKernel(g *heightmap.Grid, x, y, amount float64, radius int, progressive bool) float64 {
	xs, ys, weights := radiusKernelWeights(g, x, y, radius)
	removed := 0.0
	for i, w := range weights {
		removed += addClamped(g, xs[i], ys[i], -w*amount, progressive)
	}
	return removed
}
