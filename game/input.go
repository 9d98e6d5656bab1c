package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pbennion/driftfield/systems"
)

// keyCommands maps key presses to controller commands. Only press
// transitions fire; held keys and unmapped keys do nothing.
var keyCommands = map[int32]systems.Command{
	rl.KeySpace:        systems.CmdTogglePause,
	rl.KeyS:            systems.CmdSnapshot,
	rl.KeyR:            systems.CmdReseed,
	rl.KeyLeftBracket:  systems.CmdScaleDown,
	rl.KeyRightBracket: systems.CmdScaleUp,
	rl.KeyComma:        systems.CmdZStepDown,
	rl.KeyPeriod:       systems.CmdZStepUp,
	rl.KeySlash:        systems.CmdForceDown,
	rl.KeyEqual:        systems.CmdForceUp,
	rl.KeyNine:         systems.CmdFrictionDown,
	rl.KeyZero:         systems.CmdFrictionUp,
	rl.KeyF:            systems.CmdFadeUp,
	rl.KeyG:            systems.CmdFadeDown,
	rl.KeyC:            systems.CmdCycleColor,
}

func (g *Game) handleInput() {
	for key, cmd := range keyCommands {
		if rl.IsKeyPressed(key) {
			g.controller.Apply(cmd)
		}
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	g.handleResize()
}

// handleResize propagates window resizes to the frame buffer and the
// present surface. The canvas is cleared; particles and parameters keep
// their values and out-of-bounds particles retire on their next step.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	if w <= 0 || h <= 0 {
		return
	}
	if w == g.fb.W && h == g.fb.H {
		return
	}
	g.fb.Resize(w, h)
	if err := g.surface.Resize(w, h); err != nil {
		slog.Warn("surface resize failed", "error", err, "width", w, "height", h)
	}
	slog.Info("window resized", "width", w, "height", h)
}
