package hydraulic

import (
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"terra/internal/heightmap"
)

// Mode selects how the population driver schedules its droplets.
type Mode int

const (
	// StrictSequential applies droplets one at a time in draw order, so
	// droplet i+1 sees droplet i's edits. This is the default and the
	// only mode that gives byte-for-byte reproducible results for a
	// given seed.
	StrictSequential Mode = iota
	// ParallelBatches fans droplets out across goroutines. Each
	// individual droplet simulation is still applied atomically (guarded
	// by a mutex) so the heightmap is never torn, but the order in which
	// droplets complete is scheduler-dependent, so results drift from
	// the sequential reference. Never the default.
	ParallelBatches
)

// Driver runs a population of droplets into a shared heightmap, one at a
// time in draw order unless Mode selects ParallelBatches.
type Driver struct {
	Params Params
	Mode   Mode

	// Batches bounds the goroutine fan-out used by ParallelBatches mode.
	Batches int

	// AbsoluteMax, when HasAbsoluteMax is true, fixes the operative
	// maximum elevation used by callers that want a stable reference
	// across frames instead of rescanning the heightmap each call.
	AbsoluteMax    float64
	HasAbsoluteMax bool

	initial     *heightmap.Grid
	initialized bool
}

// NewDriver constructs a Driver with the given physics parameters,
// defaulting to strict-sequential scheduling.
func NewDriver(p Params) *Driver {
	return &Driver{Params: p, Mode: StrictSequential, Batches: 4}
}

// ensureInit performs the driver's first-call bookkeeping: retaining an
// "initial" snapshot when the progressive clamp is enabled.
func (d *Driver) ensureInit(g *heightmap.Grid) {
	if d.initialized {
		return
	}
	if d.Params.Progressive {
		d.initial = g.Clone()
	}
	d.initialized = true
}

// OperativeMax returns the maximum elevation the driver should treat as the
// terrain ceiling: the caller-supplied absolute maximum if set, otherwise a
// scan of the current heightmap.
func (d *Driver) OperativeMax(g *heightmap.Grid) float64 {
	if d.HasAbsoluteMax {
		return d.AbsoluteMax
	}
	data := g.Data()
	if len(data) == 0 {
		return 0
	}
	max := float64(data[0])
	for _, v := range data[1:] {
		if float64(v) > max {
			max = float64(v)
		}
	}
	return max
}

// Run draws n droplet start positions uniformly from
// [0,W-2)x[0,H-2) using rng and simulates each against g. A nil rng uses a
// non-deterministic entropy-seeded source; pass a seeded *rand.Rand (see
// NewSeededRNG) for reproducible runs.
func (d *Driver) Run(g *heightmap.Grid, n int, rng *rand.Rand) {
	d.ensureInit(g)
	if n <= 0 || g.W < 3 || g.H < 3 {
		return
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	switch d.Mode {
	case ParallelBatches:
		d.runParallel(g, n, rng)
	default:
		d.runSequential(g, n, rng)
	}
}

func (d *Driver) runSequential(g *heightmap.Grid, n int, rng *rand.Rand) {
	for i := 0; i < n; i++ {
		x := rng.Float64() * float64(g.W-2)
		y := rng.Float64() * float64(g.H-2)
		Simulate(g, NewDroplet(x, y), d.Params)
	}
}

func (d *Driver) runParallel(g *heightmap.Grid, n int, rng *rand.Rand) {
	starts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		starts[i] = [2]float64{rng.Float64() * float64(g.W-2), rng.Float64() * float64(g.H-2)}
	}

	batches := d.Batches
	if batches <= 0 {
		batches = 1
	}
	if batches > n {
		batches = n
	}

	var mu sync.Mutex
	var eg errgroup.Group
	chunk := (n + batches - 1) / batches
	for b := 0; b < batches; b++ {
		lo := b * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				mu.Lock()
				Simulate(g, NewDroplet(starts[i][0], starts[i][1]), d.Params)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = eg.Wait()
}

// NewSeededRNG returns a deterministic *rand.Rand for reproducible droplet
// populations.
func NewSeededRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
