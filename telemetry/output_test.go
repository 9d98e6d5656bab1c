package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// All methods must be safe on the nil manager.
	if err := om.WriteFrameStats(WindowStats{}); err != nil {
		t.Errorf("nil WriteFrameStats: %v", err)
	}
	if err := om.WriteConfig(nil); err != nil {
		t.Errorf("nil WriteConfig: %v", err)
	}
	om.Close()
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager: %v", err)
	}
	defer om.Close()

	if err := om.WriteFrameStats(WindowStats{WindowEndFrame: 120, LiveParticles: 10}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := om.WriteFrameStats(WindowStats{WindowEndFrame: 240, LiveParticles: 20}); err != nil {
		t.Fatalf("second write: %v", err)
	}
	om.Close()

	data, err := os.ReadFile(filepath.Join(dir, "frames.csv"))
	if err != nil {
		t.Fatalf("reading frames.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 records:\n%s", len(lines), data)
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("missing header: %q", lines[0])
	}
	if strings.Contains(lines[2], "window_end") {
		t.Error("header repeated on second record")
	}
}
