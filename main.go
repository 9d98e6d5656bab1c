package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pbennion/driftfield/config"
	"github.com/pbennion/driftfield/game"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = built-in defaults)")
	headless := flag.Bool("headless", false, "Run the simulation without a window")
	logStats := flag.Bool("log-stats", false, "Log window stats and frame timing")
	seed := flag.Int64("seed", 0, "Spawn RNG seed (0 = time-based)")
	maxFrames := flag.Uint64("max-frames", 0, "Stop after N frames (0 = unlimited)")
	snapshotDir := flag.String("snapshot-dir", "", "Directory for PNG snapshots (empty = config value)")
	snapshotEvery := flag.Int("snapshot-every", 0, "Export a PNG every N frames (0 = only on demand)")
	outputDir := flag.String("output-dir", "", "Directory for CSV stats and config snapshot (empty = disabled)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Seed:          rngSeed,
		Headless:      *headless,
		LogStats:      *logStats,
		SnapshotDir:   *snapshotDir,
		OutputDir:     *outputDir,
		SnapshotEvery: *snapshotEvery,
	}

	if *headless {
		runHeadless(opts, *maxFrames)
		return
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Driftfield")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting",
		"width", cfg.Screen.Width,
		"height", cfg.Screen.Height,
		"backend", cfg.Field.Backend,
		"field_seed", cfg.Field.Seed,
		"spawn_seed", rngSeed,
	)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
		if *maxFrames > 0 && g.Frame() >= *maxFrames {
			slog.Info("max frames reached", "frame", g.Frame())
			break
		}
	}
}

func runHeadless(opts game.Options, maxFrames uint64) {
	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer g.Unload()

	slog.Info("starting headless run",
		"spawn_seed", opts.Seed,
		"max_frames", maxFrames,
		"snapshot_every", opts.SnapshotEvery,
	)
	for {
		g.UpdateHeadless()
		if maxFrames > 0 && g.Frame() >= maxFrames {
			slog.Info("max frames reached", "frame", g.Frame())
			return
		}
	}
}
