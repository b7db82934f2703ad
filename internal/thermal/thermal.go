// Package thermal carries the configuration schema for thermal erosion.
// No physical model is part of this core yet; Apply is a documented no-op
// placeholder that a future revision can fill in with a
// talus-angle-driven neighbor redistribution.
package thermal

import "terra/internal/heightmap"

// Spec holds the thermal-erosion parameters accepted by the configuration
// parser and surfaced by the executor.
type Spec struct {
	TalusAngle   float64
	TransferRate float64
	Iterations   int
}

// Apply is a no-op placeholder: thermal jobs are accepted, validated, and
// scheduled like any other job, but applying one leaves the heightmap
// unchanged.
func Apply(_ *heightmap.Grid, _ Spec) {}
