package pipeline

import (
	"math/rand/v2"

	"terra/internal/config"
	"terra/internal/heightmap"
	"terra/internal/hydraulic"
	"terra/internal/terrain"
	"terra/internal/thermal"
)

// FrameCallback observes a completed frame. The grid is a live, read-only
// borrow valid only until the callback returns; a consumer that needs
// history must copy.
type FrameCallback func(frame int, g *heightmap.Grid)

// JobCallback observes a job's start or end within a frame.
type JobCallback func(id, name string, frame int)

// Executor drives a PipelineConfig's jobs across its frame timeline,
// mutating a shared heightmap in place.
type Executor struct {
	cfg *config.PipelineConfig

	// RNG seeds the hydraulic population driver for each job application.
	// A nil RNG makes every job application draw its own entropy-seeded
	// source. Set RNG to a deterministic source (hydraulic.NewSeededRNG)
	// for byte-for-byte reproducible runs.
	RNG *rand.Rand

	OnFrameComplete FrameCallback
	OnJobStart      JobCallback
	OnJobEnd        JobCallback
}

// NewExecutor constructs an Executor for cfg.
func NewExecutor(cfg *config.PipelineConfig) *Executor {
	return &Executor{cfg: cfg}
}

// Execute runs frames 1..TotalFrames in order. Frame 0 is assumed already
// initialized by the terrain initializer before calling Execute.
func (e *Executor) Execute(g *heightmap.Grid) error {
	for frame := 1; frame <= e.cfg.TotalFrames; frame++ {
		if err := e.ExecuteFrame(frame, g); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteFrame runs only the jobs applicable to frame, for single-step
// drivers. The caller is responsible for state continuity across calls.
func (e *Executor) ExecuteFrame(frame int, g *heightmap.Grid) error {
	for _, job := range selectJobs(e.cfg.Jobs, frame) {
		if e.OnJobStart != nil {
			e.OnJobStart(job.ID, job.Name, frame)
		}
		e.applyJob(job, g)
		if e.OnJobEnd != nil {
			e.OnJobEnd(job.ID, job.Name, frame)
		}
	}
	if e.OnFrameComplete != nil {
		e.OnFrameComplete(frame, g)
	}
	return nil
}

// selectJobs returns the enabled jobs whose frame range contains frame,
// preserving declaration order.
func selectJobs(jobs []config.Job, frame int) []config.Job {
	var out []config.Job
	for _, j := range jobs {
		if j.Enabled && j.StartFrame <= frame && frame <= j.EndFrame {
			out = append(out, j)
		}
	}
	return out
}

func (e *Executor) applyJob(job config.Job, g *heightmap.Grid) {
	switch job.Type {
	case config.JobHydraulic:
		// A fresh simulator is constructed per applyJob call, so
		// droplet-driver state resets every frame.
		driver := hydraulic.NewDriver(job.Hydraulic)
		driver.Run(g, job.NumParticles, e.RNG)
	case config.JobThermal:
		thermal.Apply(g, job.Thermal)
	}
}

// InitialTerrain builds the frame-0 heightmap from the pipeline's modeling
// parameters, ready to be passed to Execute/ExecuteFrame.
func InitialTerrain(width, height int, spec terrain.Spec) (*heightmap.Grid, error) {
	return terrain.Build(width, height, spec)
}
