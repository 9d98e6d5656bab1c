// Package game wires the simulation core to the window, input, UI and
// telemetry layers and owns the per-frame update loop.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pbennion/driftfield/config"
	"github.com/pbennion/driftfield/renderer"
	"github.com/pbennion/driftfield/systems"
	"github.com/pbennion/driftfield/telemetry"
	"github.com/pbennion/driftfield/ui"
)

// Options configures game construction. Zero values fall back to the
// loaded configuration.
type Options struct {
	Seed          int64
	Headless      bool
	LogStats      bool
	SnapshotDir   string
	OutputDir     string
	SnapshotEvery int
}

// Game holds the complete visualizer state for one run.
type Game struct {
	rng    *rand.Rand
	field  *systems.Field
	params systems.Params

	particles  *systems.ParticleSystem
	fb         *systems.FrameBuffer
	controller *systems.Controller

	surface *renderer.Surface
	hud     *ui.HUD
	panel   *ui.Panel

	collector *telemetry.Collector
	output    *telemetry.OutputManager
	exporter  *telemetry.Exporter
	perf      *PerfStats

	frame         uint64
	lastLive      int
	headless      bool
	logStats      bool
	snapshotEvery int
}

// NewGameWithOptions builds a game from the loaded configuration.
// config.Init must have been called before.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		rng:           rand.New(rand.NewSource(opts.Seed)),
		field:         systems.NewField(cfg.Field.Backend, cfg.Field.Seed),
		params:        cfg.Params(),
		fb:            systems.NewFrameBuffer(cfg.Screen.Width, cfg.Screen.Height),
		collector:     telemetry.NewCollector(cfg.Telemetry.WindowFrames),
		perf:          NewPerfStats(),
		headless:      opts.Headless,
		logStats:      opts.LogStats,
		snapshotEvery: opts.SnapshotEvery,
	}
	g.particles = systems.NewParticleSystem(g.field, g.rng, cfg.Derived.CapacityHint)
	g.controller = systems.NewController(&g.params, g.field, g.rng)

	snapshotDir := opts.SnapshotDir
	if snapshotDir == "" {
		snapshotDir = cfg.Snapshot.Dir
	}
	g.exporter = telemetry.NewExporter(snapshotDir)

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = output
	if err := g.output.WriteConfig(cfg); err != nil {
		slog.Warn("could not write config snapshot", "error", err)
	}

	if !opts.Headless {
		g.surface = renderer.NewSurface()
		g.hud = ui.NewHUD()
		g.panel = ui.NewPanel()
	}
	return g, nil
}

// Frame returns the number of completed frames.
func (g *Game) Frame() uint64 { return g.frame }

// Unload releases GPU resources and closes output files.
func (g *Game) Unload() {
	if g.surface != nil {
		g.surface.Unload()
	}
	g.output.Close()
}
