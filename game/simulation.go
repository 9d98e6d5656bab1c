package game

import (
	"log/slog"
	"math"
	"time"
)

// stepFrame advances one full frame in fixed order: fade the canvas,
// then spawn and integrate when not paused, then advance the depth
// coordinate. Fade runs even while paused, so a paused scene slowly
// decays to black.
func (g *Game) stepFrame() {
	start := time.Now()
	g.fb.ApplyFade(g.params.Fade)
	g.perf.Record(PhaseFade, time.Since(start))

	spawned := 0
	if !g.params.Paused {
		start = time.Now()
		g.particles.Spawn(g.params.SpawnCount, g.fb.W, g.fb.H)
		spawned = g.params.SpawnCount
		g.perf.Record(PhaseSpawn, time.Since(start))

		start = time.Now()
		g.particles.StepAll(g.fb, &g.params, g.params.StepsPerFrame)
		g.perf.Record(PhaseStep, time.Since(start))

		g.params.Z += g.params.ZStep
	}
	g.frame++

	if g.controller.TakeSnapshotRequest() {
		g.snapshot()
	}
	if g.snapshotEvery > 0 && g.frame%uint64(g.snapshotEvery) == 0 {
		g.snapshot()
	}

	g.lastLive = g.particles.LiveCount()
	if g.collector.EndFrame(g.lastLive, spawned) {
		stats := g.collector.Flush(g.frame, g.lastLive, len(g.particles.Particles), g.liveSpeeds())
		g.publishStats(stats)
	}
}

// UpdateHeadless advances the simulation without a window or surface.
func (g *Game) UpdateHeadless() {
	g.stepFrame()
}

func (g *Game) liveSpeeds() []float64 {
	speeds := make([]float64, 0, g.lastLive)
	for i := range g.particles.Particles {
		p := &g.particles.Particles[i]
		if p.Alive {
			speeds = append(speeds, math.Hypot(p.VX, p.VY))
		}
	}
	return speeds
}

func (g *Game) snapshot() {
	path, err := g.exporter.Export(g.fb.Pix, g.fb.W, g.fb.H, g.frame)
	if err != nil {
		slog.Error("snapshot failed", "error", err)
		return
	}
	slog.Info("snapshot written", "path", path, "frame", g.frame)
}
