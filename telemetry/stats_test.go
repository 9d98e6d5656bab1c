package telemetry

import (
	"math"
	"testing"
)

func TestComputeSpeedStats(t *testing.T) {
	speeds := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	mean, std, p50, p90 := ComputeSpeedStats(speeds)

	if math.Abs(mean-0.55) > 0.001 {
		t.Errorf("mean = %v, want 0.55", mean)
	}
	// Sample standard deviation of an even 0.1..1.0 spread
	if math.Abs(std-0.30277) > 0.001 {
		t.Errorf("std = %v, want ~0.30277", std)
	}
	if p50 < 0.5 || p50 > 0.6 {
		t.Errorf("p50 = %v, want within [0.5, 0.6]", p50)
	}
	if p90 < 0.9 || p90 > 1.0 {
		t.Errorf("p90 = %v, want within [0.9, 1.0]", p90)
	}
}

func TestComputeSpeedStatsEmpty(t *testing.T) {
	mean, std, p50, p90 := ComputeSpeedStats(nil)
	if mean != 0 || std != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty sample should return all zeros")
	}
}

func TestComputeSpeedStatsSingle(t *testing.T) {
	mean, std, p50, p90 := ComputeSpeedStats([]float64{2.5})
	if mean != 2.5 || std != 0 || p50 != 2.5 || p90 != 2.5 {
		t.Errorf("got (%v, %v, %v, %v), want (2.5, 0, 2.5, 2.5)", mean, std, p50, p90)
	}
}

func TestComputeSpeedStatsDoesNotMutateInput(t *testing.T) {
	speeds := []float64{3, 1, 2}
	ComputeSpeedStats(speeds)
	if speeds[0] != 3 || speeds[1] != 1 || speeds[2] != 2 {
		t.Errorf("input reordered: %v", speeds)
	}
}

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(3)

	if c.EndFrame(10, 10) {
		t.Fatal("window complete after 1 frame")
	}
	if c.EndFrame(12, 5) {
		t.Fatal("window complete after 2 frames")
	}
	if !c.EndFrame(11, 2) {
		t.Fatal("window not complete after 3 frames")
	}

	ws := c.Flush(3, 11, 15, []float64{1, 2, 3})
	if ws.Frames != 3 || ws.WindowEndFrame != 3 {
		t.Errorf("frames = %d end = %d, want 3/3", ws.Frames, ws.WindowEndFrame)
	}
	if ws.Spawned != 17 {
		t.Errorf("spawned = %d, want 17", ws.Spawned)
	}
	// Frame 2: 10 live + 5 spawned -> 12 live = 3 retired.
	// Frame 3: 12 live + 2 spawned -> 11 live = 3 retired.
	if ws.Retired != 6 {
		t.Errorf("retired = %d, want 6", ws.Retired)
	}
	if ws.LiveParticles != 11 || ws.TotalSlots != 15 || ws.DeadSlots != 4 {
		t.Errorf("population: %+v", ws)
	}

	// Flush resets the window counters.
	if c.EndFrame(11, 0) {
		t.Error("window complete immediately after flush")
	}
}
