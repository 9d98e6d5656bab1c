package systems

// FrameBuffer is a dense RGBA pixel buffer, 4 bytes per pixel, row-major
// with the origin at the top-left. Alpha is kept fully opaque wherever a
// pixel is touched; the presentation surface requires four channels but
// transparency is never used.
type FrameBuffer struct {
	W, H int
	Pix  []byte
}

// NewFrameBuffer allocates a buffer cleared to opaque black.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(w, h)
	return fb
}

// Resize reallocates the buffer for the new dimensions and clears it to
// opaque black. Zero or negative dimensions are ignored, leaving the
// existing buffer intact.
func (fb *FrameBuffer) Resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	fb.W = w
	fb.H = h
	fb.Pix = make([]byte, w*h*4)
	fb.Clear()
}

// Clear fills the buffer with opaque black.
func (fb *FrameBuffer) Clear() {
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = 0
		fb.Pix[i+1] = 0
		fb.Pix[i+2] = 0
		fb.Pix[i+3] = 255
	}
}

// ApplyFade attenuates every RGB channel by (1 - fade), truncating to
// integer, and forces alpha opaque. This is the sole trail-decay
// mechanism and runs once per frame regardless of pause state. A fade of
// zero or less is a no-op.
func (fb *FrameBuffer) ApplyFade(fade float64) {
	scale := 1.0 - fade
	if scale >= 1.0 {
		return
	}
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = uint8(float64(fb.Pix[i]) * scale)
		fb.Pix[i+1] = uint8(float64(fb.Pix[i+1]) * scale)
		fb.Pix[i+2] = uint8(float64(fb.Pix[i+2]) * scale)
		fb.Pix[i+3] = 255
	}
}
