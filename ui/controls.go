package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pbennion/driftfield/systems"
)

const (
	panelWidth  = 260
	sliderWidth = panelWidth - 90
)

// Panel renders slider controls bound to the runtime parameters. Slider
// ranges equal the controller's clamp ranges, so no widget can push a
// parameter out of bounds.
type Panel struct {
	visible bool
}

// NewPanel creates a hidden control panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Toggle flips panel visibility.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Visible reports whether the panel is shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Draw renders the panel in the top-right corner and writes slider
// changes back into params.
func (p *Panel) Draw(params *systems.Params, screenWidth int32) {
	if !p.visible {
		return
	}

	x := float32(screenWidth) - panelWidth - 10
	y := float32(10)

	rl.DrawRectangle(int32(x)-10, int32(y)-10, panelWidth+20, 240, rl.Fade(rl.Black, 0.6))
	rl.DrawText("Parameters", int32(x), int32(y), 18, rl.White)
	y += 30

	params.Scale = p.slider(x, &y, "scale", "%.4f", params.Scale, systems.MinScale, systems.MaxScale)
	params.ZStep = p.slider(x, &y, "z step", "%.4f", params.ZStep, systems.MinZStep, systems.MaxZStep)
	params.Force = p.slider(x, &y, "force", "%.2f", params.Force, systems.MinForce, systems.MaxForce)
	params.Friction = p.slider(x, &y, "friction", "%.4f", params.Friction, systems.MinFriction, systems.MaxFriction)
	params.Fade = p.slider(x, &y, "fade", "%.2f", params.Fade, systems.MinFade, systems.MaxFade)

	rl.DrawText(fmt.Sprintf("depth %.2f", params.Z), int32(x), int32(y), 14, rl.LightGray)
	y += 24

	label := "Pause"
	if params.Paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: x, Y: y, Width: 80, Height: 24}, label) {
		params.Paused = !params.Paused
	}
	if gui.Button(rl.Rectangle{X: x + 90, Y: y, Width: 80, Height: 24}, params.Mode.String()) {
		params.Mode = params.Mode.Next()
	}
}

func (p *Panel) slider(x float32, y *float32, name, format string, value, minVal, maxVal float64) float64 {
	rl.DrawText(name, int32(x), int32(*y), 14, rl.LightGray)
	got := gui.SliderBar(
		rl.Rectangle{X: x + 70, Y: *y, Width: sliderWidth, Height: 16},
		"", "",
		float32(value), float32(minVal), float32(maxVal),
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+70+sliderWidth+6), int32(*y), 14, rl.LightGray)
	*y += 28

	// float32 round-trip jitter must not count as user input
	if got == float32(value) {
		return value
	}
	return float64(got)
}
