// Flow field preview tool - interactive angle field visualization with sliders.
//
// Usage: go run ./cmd/fieldpreview
package main

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pbennion/driftfield/systems"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
)

// FieldParams holds the noise field parameters under preview.
type FieldParams struct {
	Scale   float32
	Z       float32
	ZStep   float32
	Seed    int32
	Simplex bool
}

func defaultFieldParams() FieldParams {
	return FieldParams{
		Scale: 0.004,
		Z:     0,
		ZStep: 0.004,
		Seed:  42,
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Flow Field Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultFieldParams()
	field := buildField(params)

	gridSize := 256
	angleGrid := make([]float64, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	animating := false
	needsRegen := true

	for !rl.WindowShouldClose() {
		if animating {
			params.Z += params.ZStep
			needsRegen = true
		}

		if needsRegen {
			sampleAngles(angleGrid, gridSize, field, params)
			updateTexture(texture, angleGrid, gridSize)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: float32(gridSize), Height: float32(gridSize)},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText("Hue encodes flow direction, one pixel per grid cell", 15, statsY, 16, rl.DarkGray)
		rl.DrawText(fmt.Sprintf("Depth: %.3f", params.Z), 15, statsY+20, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Flow Field Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		// Scale slider
		rl.DrawText("Scale (noise frequency per pixel)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newScale := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.0005", "0.05",
			params.Scale, 0.0005, 0.05,
		)
		rl.DrawText(fmt.Sprintf("%.4f", params.Scale), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newScale != params.Scale {
			params.Scale = newScale
			needsRegen = true
		}
		panelY += 35

		// Z slider
		rl.DrawText("Depth (noise z coordinate)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newZ := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "20",
			params.Z, 0, 20,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Z), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newZ != params.Z {
			params.Z = newZ
			needsRegen = true
		}
		panelY += 35

		// Z step slider
		rl.DrawText("Depth step (per animated frame)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newZStep := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.0001", "0.05",
			params.ZStep, 0.0001, 0.05,
		)
		rl.DrawText(fmt.Sprintf("%.4f", params.ZStep), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if newZStep != params.ZStep {
			params.ZStep = newZStep
		}
		panelY += 35

		// Seed slider
		rl.DrawText("Seed", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSeed := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "99999",
			float32(params.Seed), 0, 99999,
		)
		rl.DrawText(fmt.Sprintf("%d", params.Seed), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.DarkGray)
		if int32(newSeed) != params.Seed {
			params.Seed = int32(newSeed)
			field = buildField(params)
			needsRegen = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(animating, "Stop", "Animate")) {
			animating = !animating
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset Depth") {
			params.Z = 0
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			params.Seed = rl.GetRandomValue(0, 99999)
			field = buildField(params)
			needsRegen = true
		}
		backendLabel := toggleText(params.Simplex, "Simplex", "Perlin")
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Noise: "+backendLabel) {
			params.Simplex = !params.Simplex
			field = buildField(params)
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultFieldParams()
			field = buildField(params)
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			yaml := ""
			for _, line := range yamlLines(params) {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

func buildField(params FieldParams) *systems.Field {
	backend := systems.BackendPerlin
	if params.Simplex {
		backend = systems.BackendSimplex
	}
	return systems.NewField(backend, int64(params.Seed))
}

func yamlLines(params FieldParams) []string {
	backend := systems.BackendPerlin
	if params.Simplex {
		backend = systems.BackendSimplex
	}
	return []string{
		"field:",
		fmt.Sprintf("  backend: %s", backend),
		fmt.Sprintf("  seed: %d", params.Seed),
		fmt.Sprintf("  scale: %.4f", params.Scale),
		fmt.Sprintf("  z_step: %.4f", params.ZStep),
	}
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

// sampleAngles fills the grid with flow angles at preview resolution.
// Each grid cell samples the field at the pixel the cell maps to on the
// main canvas, so the preview matches what particles actually see.
func sampleAngles(grid []float64, size int, field *systems.Field, params FieldParams) {
	pixelsPerCell := float64(previewSize) / float64(size)
	for y := 0; y < size; y++ {
		py := (float64(y) + 0.5) * pixelsPerCell
		for x := 0; x < size; x++ {
			px := (float64(x) + 0.5) * pixelsPerCell
			grid[y*size+x] = field.SampleAngle(px, py, float64(params.Scale), float64(params.Z))
		}
	}
}

// updateTexture maps angles onto the hue wheel and uploads the result.
func updateTexture(texture rl.Texture2D, grid []float64, size int) {
	pixels := make([]color.RGBA, size*size)
	for i, angle := range grid {
		hue := angle / systems.Tau
		if hue < 0 {
			hue += 1
		}
		r, g, b := systems.HSVToRGB(hue, 1, 1)
		pixels[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}
