package heightmap

import "github.com/go-gl/mathgl/mgl32"

// Bilinear samples the grid at a fractional position using bilinear
// interpolation of the surrounding four corners. The domain is strict: any
// position with x<0, y<0, x>=W-1, or y>=H-1 is out of bounds and yields
// 0, which callers treat as a "left the map" signal.
func Bilinear(g *Grid, x, y float64) float64 {
	if x < 0 || y < 0 || x >= float64(g.W-1) || y >= float64(g.H-1) {
		return 0
	}
	x0 := int(x)
	y0 := int(y)
	fx := x - float64(x0)
	fy := y - float64(y0)

	h00 := float64(g.At(x0, y0))
	h10 := float64(g.At(x0+1, y0))
	h01 := float64(g.At(x0, y0+1))
	h11 := float64(g.At(x0+1, y0+1))

	return (1-fx)*(1-fy)*h00 + fx*(1-fy)*h10 + (1-fx)*fy*h01 + fx*fy*h11
}

// Gradient estimates (dH/dx, dH/dy) at a fractional position via central
// differences over the integer cell containing it. Missing neighbors at the
// grid border are replaced with the cell's own value (a one-sided
// difference). ok is false when the input position is outside the same
// strict domain Bilinear enforces.
func Gradient(g *Grid, x, y float64) (gx, gy float64, ok bool) {
	if x < 0 || y < 0 || x >= float64(g.W-1) || y >= float64(g.H-1) {
		return 0, 0, false
	}
	ix := int(x)
	iy := int(y)

	center := float64(g.At(ix, iy))

	left := center
	if ix > 0 {
		left = float64(g.At(ix-1, iy))
	}
	right := center
	if ix+1 < g.W {
		right = float64(g.At(ix+1, iy))
	}
	up := center
	if iy > 0 {
		up = float64(g.At(ix, iy-1))
	}
	down := center
	if iy+1 < g.H {
		down = float64(g.At(ix, iy+1))
	}

	gx = 0.5 * (right - left)
	gy = 0.5 * (down - up)
	return gx, gy, true
}

// Normal computes the surface normal at an integer grid coordinate from the
// local gradient, using the cross product of the two tangent vectors
// T1=(1,0,gradX) and T2=(0,1,gradY). A zero-length result (flat, degenerate
// gradient) is replaced with the up vector (0,0,1).
func Normal(g *Grid, x, y int) (nx, ny, nz float32) {
	gx, gy, _ := Gradient(g, float64(x), float64(y))
	t1 := mgl32.Vec3{1, 0, float32(gx)}
	t2 := mgl32.Vec3{0, 1, float32(gy)}
	n := t1.Cross(t2)
	if n.Len() == 0 {
		return 0, 0, 1
	}
	n = n.Normalize()
	return n[0], n[1], n[2]
}
