package systems

// Command identifies a discrete runtime adjustment. Input devices map
// their events to commands; the controller neither knows nor cares what
// key or widget produced one.
type Command int

const (
	CmdTogglePause Command = iota
	CmdReseed
	CmdSnapshot
	CmdCycleColor
	CmdScaleDown
	CmdScaleUp
	CmdZStepDown
	CmdZStepUp
	CmdForceDown
	CmdForceUp
	CmdFrictionDown
	CmdFrictionUp
	CmdFadeUp
	CmdFadeDown
)

// Multiplicative nudge factors for scale, depth step and force.
const (
	nudgeDown = 0.9
	nudgeUp   = 1.111
)

// Controller applies commands to the parameter set and noise field.
// Handlers live in a dispatch table keyed by command, with every numeric
// adjustment clamped to the parameter's documented range.
type Controller struct {
	params *Params
	field  *Field
	rng    RandomSource

	snapshotWanted bool
	handlers       map[Command]func(*Controller)
}

// NewController wires a controller to the parameters and field it
// mutates.
func NewController(params *Params, field *Field, rng RandomSource) *Controller {
	c := &Controller{
		params: params,
		field:  field,
		rng:    rng,
	}
	c.handlers = map[Command]func(*Controller){
		CmdTogglePause: func(c *Controller) { c.params.Paused = !c.params.Paused },
		CmdReseed:      (*Controller).reseed,
		CmdSnapshot:    func(c *Controller) { c.snapshotWanted = true },
		CmdCycleColor:  func(c *Controller) { c.params.Mode = c.params.Mode.Next() },
		CmdScaleDown: func(c *Controller) {
			c.params.Scale = clampFloat(c.params.Scale*nudgeDown, MinScale, MaxScale)
		},
		CmdScaleUp: func(c *Controller) {
			c.params.Scale = clampFloat(c.params.Scale*nudgeUp, MinScale, MaxScale)
		},
		CmdZStepDown: func(c *Controller) {
			c.params.ZStep = clampFloat(c.params.ZStep*nudgeDown, MinZStep, MaxZStep)
		},
		CmdZStepUp: func(c *Controller) {
			c.params.ZStep = clampFloat(c.params.ZStep*nudgeUp, MinZStep, MaxZStep)
		},
		CmdForceDown: func(c *Controller) {
			c.params.Force = clampFloat(c.params.Force*nudgeDown, MinForce, MaxForce)
		},
		CmdForceUp: func(c *Controller) {
			c.params.Force = clampFloat(c.params.Force*nudgeUp, MinForce, MaxForce)
		},
		CmdFrictionDown: func(c *Controller) {
			c.params.Friction = clampFloat(c.params.Friction-0.002, MinFriction, MaxFriction)
		},
		CmdFrictionUp: func(c *Controller) {
			c.params.Friction = clampFloat(c.params.Friction+0.002, MinFriction, MaxFriction)
		},
		CmdFadeUp: func(c *Controller) {
			c.params.Fade = clampFloat(c.params.Fade+0.01, MinFade, MaxFade)
		},
		CmdFadeDown: func(c *Controller) {
			c.params.Fade = clampFloat(c.params.Fade-0.01, MinFade, MaxFade)
		},
	}
	return c
}

// Apply runs the handler for cmd. Unknown commands are ignored.
func (c *Controller) Apply(cmd Command) {
	if h, ok := c.handlers[cmd]; ok {
		h(c)
	}
}

// reseed draws a fresh seed from the random source and reinitializes the
// noise field with it.
func (c *Controller) reseed() {
	c.field.Reseed(int64(c.rng.Uint32()))
}

// TakeSnapshotRequest reports and clears a pending snapshot request. The
// frame loop consumes this once per frame.
func (c *Controller) TakeSnapshotRequest() bool {
	wanted := c.snapshotWanted
	c.snapshotWanted = false
	return wanted
}
