package systems

import "math"

// RandomSource supplies uniform randomness for spawning and reseeding.
// *math/rand.Rand satisfies it; runs are deterministic given the seed.
type RandomSource interface {
	Float64() float64
	Uint32() uint32
}

// Margin is how far past the canvas edge a particle may travel before it
// is retired.
const Margin = 10.0

// Particle is one advected trail head. Alive is the sole authority on
// whether the slot participates in stepping and drawing; dead slots keep
// their stale position and velocity until a spawn reclaims them.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Age    uint32
	Alive  bool
}

// ParticleSystem owns the particle population and drives integration,
// color mapping and rasterization for every sub-step. The population
// grows by append and shrinks only logically; slots are never removed
// mid-frame.
type ParticleSystem struct {
	Particles []Particle

	field *Field
	rng   RandomSource
}

// NewParticleSystem creates an empty population. capacityHint pre-reserves
// slice capacity; it is an optimization hint, not a limit.
func NewParticleSystem(field *Field, rng RandomSource, capacityHint int) *ParticleSystem {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return &ParticleSystem{
		Particles: make([]Particle, 0, capacityHint),
		field:     field,
		rng:       rng,
	}
}

// Spawn fills count slots with fresh particles at uniformly random canvas
// positions with zero velocity and age. Dead slots are reused in
// population order before new slots are appended.
func (ps *ParticleSystem) Spawn(count, width, height int) {
	if count <= 0 {
		return
	}
	w := float64(width)
	h := float64(height)

	spawned := 0
	for i := 0; i < len(ps.Particles) && spawned < count; i++ {
		if !ps.Particles[i].Alive {
			ps.Particles[i] = ps.newParticle(w, h)
			spawned++
		}
	}
	for ; spawned < count; spawned++ {
		ps.Particles = append(ps.Particles, ps.newParticle(w, h))
	}
}

func (ps *ParticleSystem) newParticle(w, h float64) Particle {
	return Particle{
		X:     ps.rng.Float64() * w,
		Y:     ps.rng.Float64() * h,
		Alive: true,
	}
}

// StepAll integrates every alive particle for up to subSteps sub-steps,
// drawing each traveled segment into fb. Each sub-step samples the flow
// direction, applies it as acceleration scaled by force, damps velocity
// by friction, then takes a unit Euler step. A particle crossing the
// canvas margin is retired immediately and skips its remaining sub-steps;
// other particles are unaffected.
func (ps *ParticleSystem) StepAll(fb *FrameBuffer, params *Params, subSteps int) {
	w := float64(fb.W)
	h := float64(fb.H)

	for i := range ps.Particles {
		p := &ps.Particles[i]
		if !p.Alive {
			continue
		}
		for s := 0; s < subSteps; s++ {
			prevX, prevY := p.X, p.Y

			dirX, dirY := ps.field.SampleDirection(p.X, p.Y, params.Scale, params.Z)
			p.VX += dirX * params.Force
			p.VY += dirY * params.Force
			p.VX *= params.Friction
			p.VY *= params.Friction
			p.X += p.VX
			p.Y += p.VY
			if p.Age < math.MaxUint32 {
				p.Age++
			}

			r, g, b := ColorFor(p, prevX, prevY, ps.field, params)
			DrawSegmentAdditive(fb, prevX, prevY, p.X, p.Y, r, g, b)

			if p.X < -Margin || p.X > w+Margin || p.Y < -Margin || p.Y > h+Margin {
				p.Alive = false
				break
			}
		}
	}
}

// LiveCount returns the number of alive particles.
func (ps *ParticleSystem) LiveCount() int {
	n := 0
	for i := range ps.Particles {
		if ps.Particles[i].Alive {
			n++
		}
	}
	return n
}

// DeadCount returns the number of reusable dead slots.
func (ps *ParticleSystem) DeadCount() int {
	return len(ps.Particles) - ps.LiveCount()
}
