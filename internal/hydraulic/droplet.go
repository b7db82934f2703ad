// Package hydraulic implements the particle-based hydraulic erosion
// simulator: a single droplet's descent path and the population driver
// that runs many of them sequentially over a shared heightmap.
package hydraulic

import (
	"math"

	"terra/internal/heightmap"
)

// Params carries the tunable physics constants for one droplet run, with
// the defaults applied by DefaultParams.
type Params struct {
	MaxIterations          int
	Inertia                float64
	SedimentCapacityFactor float64
	MinSedimentCapacity    float64
	ErodeSpeed             float64
	DepositSpeed           float64
	EvaporateSpeed         float64
	Gravity                float64
	MaxDropletSpeed        float64
	ErosionRadius          int

	// Progressive enables the zero-floor clamp on weighted erosion writes.
	Progressive bool
}

// DefaultParams returns the documented defaults.
func DefaultParams() Params {
	return Params{
		MaxIterations:          30,
		Inertia:                0.05,
		SedimentCapacityFactor: 4.0,
		MinSedimentCapacity:    0.01,
		ErodeSpeed:             0.3,
		DepositSpeed:           0.3,
		EvaporateSpeed:         0.01,
		Gravity:                4.0,
		MaxDropletSpeed:        10.0,
		ErosionRadius:          1,
	}
}

// Droplet is the transient per-particle state tracked during one descent.
// It lives only for the duration of one Simulate call.
type Droplet struct {
	X, Y   float64
	DX, DY float64
	Sediment float64
	Water    float64
	Speed    float64
}

// NewDroplet starts a droplet at (x,y) with the documented initial state:
// zero direction, zero sediment, unit water and speed.
func NewDroplet(x, y float64) Droplet {
	return Droplet{X: x, Y: y, Water: 1.0, Speed: 1.0}
}

// Active reports whether the droplet still carries enough water to
// continue simulating.
func (d Droplet) Active() bool { return d.Water > 0.01 }

// Simulate runs one droplet's full descent against g, mutating it in
// place, for up to params.MaxIterations steps.
func Simulate(g *heightmap.Grid, d Droplet, p Params) {
	for i := 0; i < p.MaxIterations && d.Active(); i++ {
		if !step(g, &d, p) {
			return
		}
	}
}

// step runs a single iteration of the droplet descent and returns false
// when the droplet should terminate (left the grid, or zero direction).
func step(g *heightmap.Grid, d *Droplet, p Params) bool {
	ix, iy := int(d.X), int(d.Y)
	if ix < 0 || ix >= g.W-2 || iy < 0 || iy >= g.H-2 {
		return false
	}

	hOld := heightmap.Bilinear(g, d.X, d.Y)
	gx, gy, _ := heightmap.Gradient(g, d.X, d.Y)

	ndx := d.DX*p.Inertia - gx*(1-p.Inertia)
	ndy := d.DY*p.Inertia - gy*(1-p.Inertia)
	mag := math.Hypot(ndx, ndy)
	if mag == 0 {
		return false
	}
	d.DX, d.DY = ndx/mag, ndy/mag

	ox, oy := d.X, d.Y
	d.X += d.DX
	d.Y += d.DY

	if d.X < 0 || d.X >= float64(g.W-1) || d.Y < 0 || d.Y >= float64(g.H-1) {
		return false
	}

	hNew := heightmap.Bilinear(g, d.X, d.Y)
	deltaH := hNew - hOld

	capacity := math.Max(-deltaH*d.Speed*d.Water*p.SedimentCapacityFactor, p.MinSedimentCapacity)

	if d.Sediment > capacity || deltaH > 0 {
		var dep float64
		if deltaH > 0 {
			dep = math.Min(deltaH, d.Sediment)
		} else {
			dep = (d.Sediment - capacity) * p.DepositSpeed
		}
		depositCorners(g, ox, oy, dep)
		d.Sediment -= dep
	} else {
		erode := math.Min((capacity-d.Sediment)*p.ErodeSpeed, -deltaH)
		var removed float64
		if p.ErosionRadius > 1 {
			removed = erodeKernel(g, ox, oy, erode, p.ErosionRadius, p.Progressive)
		} else {
			removed = erodeCorners(g, ox, oy, erode, p.Progressive)
		}
		d.Sediment += removed
	}

	d.Speed = math.Sqrt(math.Max(0, d.Speed*d.Speed-deltaH*p.Gravity))
	if d.Speed > p.MaxDropletSpeed {
		d.Speed = p.MaxDropletSpeed
	}
	d.Water *= 1 - p.EvaporateSpeed

	return true
}
