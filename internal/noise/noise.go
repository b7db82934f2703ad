// Package noise implements deterministic 2-D gradient (Perlin-style) noise
// and fBm layering on top of it. Identical seed, identical output,
// everywhere, forever.
package noise

import (
	"math"
	"math/rand/v2"
)

// gradients is the fixed 8-vector gradient set: diagonal and cardinal
// directions only.
var gradients = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// Source is a deterministic function of a 32-bit seed: a 256-entry
// permutation table duplicated to 512 entries to elide a modulo.
type Source struct {
	perm [512]int
}

// NewSource builds a Source for the given seed. The permutation is a
// Fisher-Yates shuffle of 0..255 driven by a seeded math/rand/v2 PCG
// generator, so the same seed always yields the same table.
func NewSource(seed uint32) *Source {
	s := &Source{}
	var p [256]int
	for i := range p {
		p[i] = i
	}
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := 255; i > 0; i-- {
		j := r.IntN(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	for i := 0; i < 512; i++ {
		s.perm[i] = p[i&255]
	}
	return s
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}

func (s *Source) hash(ix, iy int) [2]float64 {
	idx := s.perm[s.perm[ix&255]+(iy&255)] % 8
	if idx < 0 {
		idx += 8
	}
	return gradients[idx]
}

func dot(g [2]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

// Noise evaluates the gradient noise field at (x,y). Output is centred near
// zero, typically within ±1. The field has period 256 in each axis.
func (s *Source) Noise(x, y float64) float64 {
	x0 := math.Floor(x)
	y0 := math.Floor(y)
	ix := int(x0)
	iy := int(y0)
	fx := x - x0
	fy := y - y0

	g00 := s.hash(ix, iy)
	g10 := s.hash(ix+1, iy)
	g01 := s.hash(ix, iy+1)
	g11 := s.hash(ix+1, iy+1)

	n00 := dot(g00, fx, fy)
	n10 := dot(g10, fx-1, fy)
	n01 := dot(g01, fx, fy-1)
	n11 := dot(g11, fx-1, fy-1)

	u := fade(fx)
	v := fade(fy)

	return lerp(v, lerp(u, n00, n10), lerp(u, n01, n11))
}

// FbmParams bundle the fractal-noise composition parameters.
type FbmParams struct {
	Frequency  float64
	Amplitude  float64
	Octaves    int
	Persistence float64
	Lacunarity  float64
}

// Fbm sums Octaves layers of Noise at geometric frequency/amplitude pairs,
// normalizes by the total amplitude weight, and scales by the base
// amplitude. Callers must validate params with ValidateFbmParams first.
func (s *Source) Fbm(x, y float64, p FbmParams) float64 {
	total := 0.0
	freq := p.Frequency
	amp := p.Amplitude
	sumAmp := 0.0
	for i := 0; i < p.Octaves; i++ {
		total += s.Noise(x*freq, y*freq) * amp
		sumAmp += amp
		freq *= p.Lacunarity
		amp *= p.Persistence
	}
	if sumAmp == 0 {
		return 0
	}
	return total / sumAmp * p.Amplitude
}

// ValidateFbmParams checks the domain constraints: octaves in [1,16];
// frequency, amplitude, persistence, lacunarity strictly positive and
// finite.
func ValidateFbmParams(p FbmParams) error {
	if p.Octaves < 1 || p.Octaves > 16 {
		return &DomainArgumentError{Field: "octaves", Reason: "must be in [1,16]"}
	}
	for field, v := range map[string]float64{
		"frequency":   p.Frequency,
		"amplitude":   p.Amplitude,
		"persistence": p.Persistence,
		"lacunarity":  p.Lacunarity,
	} {
		if !(v > 0) || math.IsInf(v, 0) || math.IsNaN(v) {
			return &DomainArgumentError{Field: field, Reason: "must be strictly positive and finite"}
		}
	}
	return nil
}

// DomainArgumentError reports an out-of-domain parameter.
type DomainArgumentError struct {
	Field  string
	Reason string
}

func (e *DomainArgumentError) Error() string {
	return "noise: invalid " + e.Field + ": " + e.Reason
}
