package game

import (
	"log/slog"
	"time"

	"github.com/pbennion/driftfield/telemetry"
)

// publishStats logs a completed stats window and appends it to the CSV
// output when enabled.
func (g *Game) publishStats(stats telemetry.WindowStats) {
	if g.logStats {
		slog.Info("window stats",
			"frame", stats.WindowEndFrame,
			"live", stats.LiveParticles,
			"slots", stats.TotalSlots,
			"spawned", stats.Spawned,
			"retired", stats.Retired,
			"speed_mean", stats.SpeedMean,
			"speed_p90", stats.SpeedP90,
		)
		g.logPerfStats()
	}
	if err := g.output.WriteFrameStats(stats); err != nil {
		slog.Error("writing frame stats", "error", err)
	}
}

// logPerfStats logs the per-phase frame time breakdown.
func (g *Game) logPerfStats() {
	total := g.perf.Total()
	attrs := make([]any, 0, 2*len(g.perf.SortedNames())+2)
	attrs = append(attrs, "total", total.Round(time.Microsecond).String())
	for _, name := range g.perf.SortedNames() {
		attrs = append(attrs, name, g.perf.Avg(name).Round(time.Microsecond).String())
	}
	slog.Info("frame timing", attrs...)
}
