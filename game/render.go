package game

import (
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pbennion/driftfield/ui"
)

const controlsLegend = "space pause | s snapshot | r reseed | [ ] scale | , . z step | / = force | 9 0 friction | f g fade | c color | tab panel"

// Update advances one graphical frame: input first, then simulation.
func (g *Game) Update() {
	g.handleInput()
	g.stepFrame()
}

// Draw presents the frame buffer and overlays the HUD.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	start := time.Now()
	if err := g.surface.Present(g.fb.Pix, g.fb.W, g.fb.H); err != nil {
		slog.Error("present failed", "error", err)
	}
	g.perf.Record(PhasePresent, time.Since(start))

	g.hud.Draw(ui.HUDData{
		Title:         "Driftfield",
		Frame:         g.frame,
		FPS:           rl.GetFPS(),
		LiveParticles: g.lastLive,
		TotalSlots:    len(g.particles.Particles),
		ColorMode:     g.params.Mode.String(),
		Seed:          g.field.Seed(),
		Paused:        g.params.Paused,
		ScreenHeight:  int32(g.fb.H),
	})
	g.hud.DrawControls(int32(g.fb.H), controlsLegend)
	g.panel.Draw(&g.params, int32(g.fb.W))

	rl.EndDrawing()
}
