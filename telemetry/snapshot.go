package telemetry

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Exporter writes PNG snapshots of the frame buffer.
type Exporter struct {
	dir string
}

// NewExporter creates an exporter writing into dir; empty means the
// working directory.
func NewExporter(dir string) *Exporter {
	if dir == "" {
		dir = "."
	}
	return &Exporter{dir: dir}
}

// Export copies the RGBA buffer, forces every alpha byte opaque, and
// writes it as a sequence-numbered 8-bit RGBA PNG. It returns the path
// written. Failures are reported to the caller and never fatal.
func (e *Exporter) Export(pix []byte, w, h int, frame uint64) (string, error) {
	if w <= 0 || h <= 0 || len(pix) != w*h*4 {
		return "", fmt.Errorf("buffer length %d does not match %dx%d RGBA", len(pix), w, h)
	}

	data := make([]byte, len(pix))
	copy(data, pix)
	for i := 3; i < len(data); i += 4 {
		data[i] = 255
	}

	img := &image.RGBA{
		Pix:    data,
		Stride: w * 4,
		Rect:   image.Rect(0, 0, w, h),
	}

	path := filepath.Join(e.dir, fmt.Sprintf("frame_%06d.png", frame))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing %s: %w", path, err)
	}
	return path, nil
}
