package systems

// Parameter bounds enforced wherever a parameter is mutated: controller
// commands, config validation, and the UI slider panel all clamp into
// these ranges.
const (
	MinScale = 0.0005
	MaxScale = 0.05

	MinZStep = 0.0001
	MaxZStep = 0.05

	MinForce = 0.05
	MaxForce = 5.0

	MinFriction = 0.90
	MaxFriction = 0.9995

	MinFade = 0.0
	MaxFade = 0.2
)

// Params holds the tunable runtime parameters read by every simulation
// component each frame. It is passed by reference into component calls;
// there is no ambient state.
type Params struct {
	Scale         float64   // noise sample scale
	Z             float64   // depth coordinate, advanced every frame
	ZStep         float64   // per-frame depth increment
	Force         float64   // acceleration magnitude from the flow direction
	Friction      float64   // per-substep velocity multiplier
	StepsPerFrame int       // integration sub-steps per particle per frame
	SpawnCount    int       // particles spawned per frame
	Fade          float64   // per-frame trail decay coefficient
	Mode          ColorMode // active color policy
	Paused        bool
}

// DefaultParams returns the stock parameter set. Spawn count scales with
// canvas height so taller canvases carry denser trails.
func DefaultParams(height int) Params {
	return Params{
		Scale:         0.004,
		ZStep:         0.004,
		Force:         0.8,
		Friction:      0.985,
		StepsPerFrame: 300,
		SpawnCount:    height / 4,
		Fade:          0.03,
		Mode:          ModeDirection,
	}
}

// ClampRanges pulls every bounded field back into its documented range.
func (p *Params) ClampRanges() {
	p.Scale = clampFloat(p.Scale, MinScale, MaxScale)
	p.ZStep = clampFloat(p.ZStep, MinZStep, MaxZStep)
	p.Force = clampFloat(p.Force, MinForce, MaxForce)
	p.Friction = clampFloat(p.Friction, MinFriction, MaxFriction)
	p.Fade = clampFloat(p.Fade, MinFade, MaxFade)
	if p.StepsPerFrame < 1 {
		p.StepsPerFrame = 1
	}
	if p.SpawnCount < 0 {
		p.SpawnCount = 0
	}
}
