// Package terrain builds the frame-0 heightmap from a ModelingSpec.
package terrain

import (
	"fmt"
	"math"

	"terra/internal/heightmap"
	"terra/internal/noise"
)

// Method enumerates the modeling methods a ModelingSpec can select.
type Method string

const (
	MethodFlat       Method = "flat"
	MethodPerlin     Method = "perlin"
	MethodFbm        Method = "fbm"
	MethodSemiSphere Method = "semiSphere"
	MethodCone       Method = "cone"
	MethodSigmoid    Method = "sigmoid"
)

// Spec is the discriminated choice over modeling methods carrying
// method-specific parameters.
type Spec struct {
	Method Method

	// Noise group.
	Seed        uint32
	Frequency   float64
	Amplitude   float64
	Octaves     int
	Persistence float64
	Lacunarity  float64

	// Geometric group.
	Radius  float64
	Height  float64
	CenterX float64
	CenterY float64

	// Flat value (used by MethodFlat, and as the fallback for Sigmoid).
	Value float64
}

// DefaultSpec returns a Spec with the documented defaults applied where a
// method needs them.
func DefaultSpec() Spec {
	return Spec{
		Method:      MethodFlat,
		Frequency:   0.01,
		Amplitude:   1,
		Octaves:     1,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

// Build dispatches on Spec.Method and produces the frame-0 heightmap.
func Build(width, height int, spec Spec) (*heightmap.Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &noise.DomainArgumentError{Field: "dimensions", Reason: "width and height must be > 0"}
	}
	g := heightmap.New(width, height)

	switch spec.Method {
	case MethodFlat:
		g.Fill(float32(spec.Value))
	case MethodSemiSphere:
		buildSemiSphere(g, spec)
	case MethodCone:
		buildCone(g, spec)
	case MethodPerlin:
		if err := buildPerlin(g, spec); err != nil {
			return nil, err
		}
	case MethodFbm:
		if err := buildFbm(g, spec); err != nil {
			return nil, err
		}
	case MethodSigmoid:
		// No reference model exists for sigmoid yet; treated as flat(0).
		// The validator is responsible for the accompanying warning.
		g.Fill(0)
	default:
		return nil, fmt.Errorf("terrain: unknown method %q", spec.Method)
	}
	return g, nil
}

func buildSemiSphere(g *heightmap.Grid, spec Spec) {
	r := spec.Radius
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			dx := float64(x) - spec.CenterX
			dy := float64(y) - spec.CenterY
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= r {
				g.Set(x, y, 0)
				continue
			}
			g.Set(x, y, float32(math.Sqrt(r*r-d*d)))
		}
	}
}

func buildCone(g *heightmap.Grid, spec Spec) {
	r := spec.Radius
	peak := spec.Height
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			dx := float64(x) - spec.CenterX
			dy := float64(y) - spec.CenterY
			d := math.Sqrt(dx*dx + dy*dy)
			if d >= r {
				g.Set(x, y, 0)
				continue
			}
			g.Set(x, y, float32(peak*(1-d/r)))
		}
	}
}

func buildPerlin(g *heightmap.Grid, spec Spec) error {
	params := noise.FbmParams{
		Frequency:   spec.Frequency,
		Amplitude:   spec.Amplitude,
		Octaves:     1,
		Persistence: 1,
		Lacunarity:  1,
	}
	if err := noise.ValidateFbmParams(params); err != nil {
		return err
	}
	src := noise.NewSource(spec.Seed)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			v := spec.Amplitude * src.Noise(float64(x)*spec.Frequency, float64(y)*spec.Frequency)
			g.Set(x, y, float32(v))
		}
	}
	return nil
}

func buildFbm(g *heightmap.Grid, spec Spec) error {
	params := noise.FbmParams{
		Frequency:   spec.Frequency,
		Amplitude:   spec.Amplitude,
		Octaves:     spec.Octaves,
		Persistence: spec.Persistence,
		Lacunarity:  spec.Lacunarity,
	}
	if err := noise.ValidateFbmParams(params); err != nil {
		return err
	}
	src := noise.NewSource(spec.Seed)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.Set(x, y, float32(src.Fbm(float64(x), float64(y), params)))
		}
	}
	return nil
}
