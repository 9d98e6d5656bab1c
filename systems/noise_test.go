package systems

import "testing"

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlinNoise(42)
	b := NewPerlinNoise(42)

	for x := -3.0; x < 3.0; x += 0.7 {
		for y := -3.0; y < 3.0; y += 0.7 {
			va := a.Noise3D(x, y, 0.5)
			vb := b.Noise3D(x, y, 0.5)
			if va != vb {
				t.Fatalf("same seed diverged at (%v, %v): %v != %v", x, y, va, vb)
			}
		}
	}
}

func TestPerlinSeedsDiffer(t *testing.T) {
	a := NewPerlinNoise(1)
	b := NewPerlinNoise(2)

	same := true
	for x := 0.1; x < 10; x += 0.37 {
		if a.Noise3D(x, x*0.5, 0.25) != b.Noise3D(x, x*0.5, 0.25) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical noise")
	}
}

func TestNoiseBounded(t *testing.T) {
	sources := []struct {
		name  string
		noise NoiseSource
	}{
		{"perlin", NewPerlinNoise(7)},
		{"simplex", NewSimplexNoise(7)},
	}

	for _, tt := range sources {
		t.Run(tt.name, func(t *testing.T) {
			for x := -20.0; x < 20.0; x += 0.83 {
				for z := 0.0; z < 4.0; z += 0.51 {
					v := tt.noise.Noise3D(x, x*0.31, z)
					if v < -1 || v > 1 {
						t.Fatalf("Noise3D(%v, %v, %v) = %v, outside [-1, 1]", x, x*0.31, z, v)
					}
				}
			}
		})
	}
}

func TestSimplexDeterministic(t *testing.T) {
	a := NewSimplexNoise(99)
	b := NewSimplexNoise(99)

	for x := 0.0; x < 5.0; x += 0.61 {
		if a.Noise3D(x, 1.5, 0.2) != b.Noise3D(x, 1.5, 0.2) {
			t.Fatal("same seed diverged")
		}
	}
}
