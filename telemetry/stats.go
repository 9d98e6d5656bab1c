package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated frame statistics for one stats window.
type WindowStats struct {
	WindowEndFrame uint64 `csv:"window_end"`
	Frames         int    `csv:"frames"`

	// Population at window end
	LiveParticles int `csv:"live"`
	TotalSlots    int `csv:"slots"`
	DeadSlots     int `csv:"dead"`

	// Events during window
	Spawned int `csv:"spawned"`
	Retired int `csv:"retired"`

	// Speed distribution sampled at window end
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// ComputeSpeedStats returns the mean, standard deviation and 50th/90th
// percentiles of the sample. Empty input returns all zeros.
func ComputeSpeedStats(speeds []float64) (mean, std, p50, p90 float64) {
	if len(speeds) == 0 {
		return 0, 0, 0, 0
	}

	sorted := make([]float64, len(speeds))
	copy(sorted, speeds)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if len(sorted) > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, std, p50, p90
}
