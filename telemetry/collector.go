package telemetry

// Collector aggregates per-frame simulation counts into window stats.
// Retirement is derived from the population balance: particles present
// before the frame, plus spawns, minus particles still alive after.
type Collector struct {
	windowFrames int

	frames   int
	spawned  int
	retired  int
	prevLive int
}

// NewCollector creates a collector that completes a window every
// windowFrames frames.
func NewCollector(windowFrames int) *Collector {
	if windowFrames < 1 {
		windowFrames = 120
	}
	return &Collector{windowFrames: windowFrames}
}

// EndFrame records one frame's population counts and reports whether the
// current window is complete. A complete window is consumed with Flush.
func (c *Collector) EndFrame(live, spawned int) bool {
	c.frames++
	c.spawned += spawned
	if retired := c.prevLive + spawned - live; retired > 0 {
		c.retired += retired
	}
	c.prevLive = live
	return c.frames >= c.windowFrames
}

// Flush builds the stats record for the completed window and resets the
// window counters. speeds is the live-particle speed sample taken at
// window end.
func (c *Collector) Flush(frame uint64, live, slots int, speeds []float64) WindowStats {
	mean, std, p50, p90 := ComputeSpeedStats(speeds)
	ws := WindowStats{
		WindowEndFrame: frame,
		Frames:         c.frames,
		LiveParticles:  live,
		TotalSlots:     slots,
		DeadSlots:      slots - live,
		Spawned:        c.spawned,
		Retired:        c.retired,
		SpeedMean:      mean,
		SpeedStd:       std,
		SpeedP50:       p50,
		SpeedP90:       p90,
	}
	c.frames = 0
	c.spawned = 0
	c.retired = 0
	return ws
}
