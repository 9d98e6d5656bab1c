package systems

import "testing"

func TestNewFrameBufferOpaqueBlack(t *testing.T) {
	fb := NewFrameBuffer(3, 2)

	if fb.W != 3 || fb.H != 2 || len(fb.Pix) != 3*2*4 {
		t.Fatalf("dimensions: W=%d H=%d len=%d", fb.W, fb.H, len(fb.Pix))
	}
	for i := 0; i < len(fb.Pix); i += 4 {
		if fb.Pix[i] != 0 || fb.Pix[i+1] != 0 || fb.Pix[i+2] != 0 || fb.Pix[i+3] != 255 {
			t.Fatalf("pixel %d = (%d, %d, %d, %d), want opaque black", i/4,
				fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3])
		}
	}
}

func TestApplyFadeZeroIsNoop(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	DrawSegmentAdditive(fb, 0, 0, 1, 1, 111, 22, 3)
	before := make([]byte, len(fb.Pix))
	copy(before, fb.Pix)

	fb.ApplyFade(0)

	for i := range fb.Pix {
		if fb.Pix[i] != before[i] {
			t.Fatalf("pixel byte %d changed by zero fade", i)
		}
	}
}

func TestApplyFadeConvergesToBlack(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = 255
		fb.Pix[i+1] = 200
		fb.Pix[i+2] = 130
	}

	for n := 0; n < 300; n++ {
		fb.ApplyFade(0.03)
	}

	for i := 0; i < len(fb.Pix); i += 4 {
		if fb.Pix[i] != 0 || fb.Pix[i+1] != 0 || fb.Pix[i+2] != 0 {
			t.Fatalf("pixel %d = (%d, %d, %d), want black", i/4, fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2])
		}
		if fb.Pix[i+3] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, fb.Pix[i+3])
		}
	}
}

func TestResizeRejectsZeroArea(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	DrawSegmentAdditive(fb, 1, 1, 2, 2, 77, 0, 0)
	before := make([]byte, len(fb.Pix))
	copy(before, fb.Pix)

	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 4},
		{"zero height", 4, 0},
		{"both zero", 0, 0},
		{"negative", -1, -8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb.Resize(tt.w, tt.h)
			if fb.W != 4 || fb.H != 4 {
				t.Fatalf("dimensions changed to %dx%d", fb.W, fb.H)
			}
			for i := range fb.Pix {
				if fb.Pix[i] != before[i] {
					t.Fatal("buffer contents corrupted by rejected resize")
				}
			}
		})
	}
}

func TestResizeClearsToBlack(t *testing.T) {
	fb := NewFrameBuffer(4, 4)
	DrawSegmentAdditive(fb, 0, 0, 3, 3, 200, 200, 200)

	fb.Resize(6, 5)

	if fb.W != 6 || fb.H != 5 || len(fb.Pix) != 6*5*4 {
		t.Fatalf("dimensions: W=%d H=%d len=%d", fb.W, fb.H, len(fb.Pix))
	}
	for i := 0; i < len(fb.Pix); i += 4 {
		if fb.Pix[i] != 0 || fb.Pix[i+1] != 0 || fb.Pix[i+2] != 0 || fb.Pix[i+3] != 255 {
			t.Fatal("resized buffer not cleared to opaque black")
		}
	}
}
