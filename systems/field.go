package systems

import "math"

// Tau is one full turn in radians.
const Tau = 2 * math.Pi

// NoiseSource produces 3D coherent noise. Implementations must document a
// bounded output range; both backends here emit values in [-1, 1], which
// the angle mapping below relies on.
type NoiseSource interface {
	Noise3D(x, y, z float64) float64
}

// Noise backend names, selectable via config.
const (
	BackendPerlin  = "perlin"
	BackendSimplex = "simplex"
)

// NewNoiseSource builds the named backend. Unknown names fall back to
// Perlin.
func NewNoiseSource(backend string, seed int64) NoiseSource {
	if backend == BackendSimplex {
		return NewSimplexNoise(seed)
	}
	return NewPerlinNoise(seed)
}

// Field derives a time-varying 2D flow field from 3D noise: a position
// plus a depth coordinate maps to a scalar in [-1, 1], which a full turn
// converts into an angle. Sampling has no side effects.
type Field struct {
	backend string
	seed    int64
	noise   NoiseSource
}

// NewField creates a flow field over the named noise backend.
func NewField(backend string, seed int64) *Field {
	return &Field{
		backend: backend,
		seed:    seed,
		noise:   NewNoiseSource(backend, seed),
	}
}

// Reseed deterministically replaces the noise source; the same seed always
// reproduces the same field.
func (f *Field) Reseed(seed int64) {
	f.seed = seed
	f.noise = NewNoiseSource(f.backend, seed)
}

// Seed returns the seed of the current noise source.
func (f *Field) Seed() int64 {
	return f.seed
}

// SampleAngle returns the flow angle in radians at (x, y) for depth z.
func (f *Field) SampleAngle(x, y, scale, z float64) float64 {
	return f.noise.Noise3D(x*scale, y*scale, z) * Tau
}

// SampleDirection returns the unit flow direction at (x, y) for depth z.
func (f *Field) SampleDirection(x, y, scale, z float64) (float64, float64) {
	a := f.SampleAngle(x, y, scale, z)
	return math.Cos(a), math.Sin(a)
}
