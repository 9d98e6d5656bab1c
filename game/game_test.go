package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pbennion/driftfield/config"
	"github.com/pbennion/driftfield/systems"
)

func newHeadlessGame(t *testing.T, opts Options) *Game {
	t.Helper()
	if err := config.Init(""); err != nil {
		t.Fatalf("config.Init failed: %v", err)
	}
	opts.Headless = true
	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions failed: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessFramesAdvance(t *testing.T) {
	g := newHeadlessGame(t, Options{Seed: 1})

	for i := 0; i < 3; i++ {
		g.UpdateHeadless()
	}

	if g.Frame() != 3 {
		t.Errorf("expected 3 completed frames, got %d", g.Frame())
	}
	if g.lastLive == 0 {
		t.Error("expected live particles after stepping")
	}
	if g.params.Z == 0 {
		t.Error("expected depth coordinate to advance")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newHeadlessGame(t, Options{Seed: 1})

	g.UpdateHeadless()
	liveBefore := g.lastLive
	zBefore := g.params.Z

	g.controller.Apply(systems.CmdTogglePause)
	g.UpdateHeadless()

	if g.Frame() != 2 {
		t.Errorf("frame counter should advance while paused, got %d", g.Frame())
	}
	if g.lastLive != liveBefore {
		t.Errorf("live count changed while paused: %d -> %d", liveBefore, g.lastLive)
	}
	if g.params.Z != zBefore {
		t.Errorf("depth advanced while paused: %v -> %v", zBefore, g.params.Z)
	}
}

func TestAutoSnapshotInterval(t *testing.T) {
	dir := t.TempDir()
	g := newHeadlessGame(t, Options{Seed: 1, SnapshotDir: dir, SnapshotEvery: 2})

	for i := 0; i < 4; i++ {
		g.UpdateHeadless()
	}

	for _, name := range []string{"frame_000002.png", "frame_000004.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected snapshot %s: %v", name, err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 snapshots, found %d", len(entries))
	}
}

func TestSnapshotCommandIsOneShot(t *testing.T) {
	dir := t.TempDir()
	g := newHeadlessGame(t, Options{Seed: 1, SnapshotDir: dir})

	g.controller.Apply(systems.CmdSnapshot)
	g.UpdateHeadless()
	g.UpdateHeadless()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected exactly 1 snapshot, found %d", len(entries))
	}
}
