// Package renderer presents the simulation's pixel buffer through a
// raylib texture.
package renderer

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface owns the GPU texture the frame buffer is uploaded to each
// frame. It requires an open raylib window; the simulation core never
// touches it in headless mode.
type Surface struct {
	tex    rl.Texture2D
	w, h   int
	pixels []color.RGBA

	initialized bool
}

// NewSurface creates an uninitialized surface. The texture is created on
// first Present or Resize.
func NewSurface() *Surface {
	return &Surface{}
}

// Resize recreates the texture for new dimensions. Zero or negative
// dimensions are ignored.
func (s *Surface) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return nil
	}
	if s.initialized {
		if w == s.w && h == s.h {
			return nil
		}
		rl.UnloadTexture(s.tex)
	}

	img := rl.GenImageColor(w, h, rl.Black)
	s.tex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if s.tex.ID == 0 {
		s.initialized = false
		return fmt.Errorf("creating %dx%d surface texture", w, h)
	}

	s.w = w
	s.h = h
	s.pixels = make([]color.RGBA, w*h)
	s.initialized = true
	return nil
}

// Present uploads the RGBA buffer and draws it at the window origin.
// A dimension mismatch is an error rather than a torn frame.
func (s *Surface) Present(pix []byte, w, h int) error {
	if !s.initialized || w != s.w || h != s.h {
		if err := s.Resize(w, h); err != nil {
			return err
		}
	}
	if !s.initialized {
		return fmt.Errorf("presenting to uninitialized surface")
	}
	if len(pix) != w*h*4 {
		return fmt.Errorf("buffer length %d does not match %dx%d RGBA", len(pix), w, h)
	}

	for i := range s.pixels {
		s.pixels[i] = color.RGBA{
			R: pix[i*4],
			G: pix[i*4+1],
			B: pix[i*4+2],
			A: pix[i*4+3],
		}
	}
	rl.UpdateTexture(s.tex, s.pixels)
	rl.DrawTexture(s.tex, 0, 0, rl.White)
	return nil
}

// Unload releases the texture.
func (s *Surface) Unload() {
	if s.initialized {
		rl.UnloadTexture(s.tex)
		s.initialized = false
	}
}
