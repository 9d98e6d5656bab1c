package systems

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// SimplexNoise adapts ojrac/opensimplex-go to the NoiseSource interface.
// Eval3 output lies in [-1, 1], matching the Perlin backend.
type SimplexNoise struct {
	noise opensimplex.Noise
}

// NewSimplexNoise creates an OpenSimplex generator for the seed.
func NewSimplexNoise(seed int64) *SimplexNoise {
	return &SimplexNoise{noise: opensimplex.New(seed)}
}

// Noise3D returns a noise value in [-1, 1] for 3D coordinates.
func (s *SimplexNoise) Noise3D(x, y, z float64) float64 {
	return s.noise.Eval3(x, y, z)
}
