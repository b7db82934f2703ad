// Package config holds the typed pipeline representation the parser
// produces and the validator/executor consume: ModelingSpec (via
// terrain.Spec), ErosionSpec/ThermalSpec, Job, and PipelineConfig.
package config

import (
	"terra/internal/hydraulic"
	"terra/internal/terrain"
	"terra/internal/thermal"
)

// JobType tags which physical model a Job's config carries.
type JobType string

const (
	JobHydraulic JobType = "hydraulic"
	JobThermal   JobType = "thermal"
)

// Job is a declarative request to apply one erosion algorithm to a closed
// frame interval.
type Job struct {
	ID      string
	Name    string
	Enabled bool

	StartFrame int
	EndFrame   int

	Type JobType

	// NumParticles is the hydraulic droplet population count; it lives
	// outside hydraulic.Params because it describes the job application,
	// not the per-droplet physics.
	NumParticles int
	Hydraulic    hydraulic.Params
	Thermal      thermal.Spec
}

// PipelineConfig is the totality of totalFrames + frame-0 modeling
// parameters + ordered job list.
type PipelineConfig struct {
	TotalFrames int
	Step0       terrain.Spec
	Jobs        []Job
}
