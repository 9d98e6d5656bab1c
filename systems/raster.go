package systems

// DrawSegmentAdditive rasterizes the segment from (x0f, y0f) to (x1f, y1f)
// into fb using integer Bresenham stepping. Endpoints are truncated to
// pixel coordinates. Every visited in-bounds pixel gets each RGB channel
// increased with saturating addition and its alpha forced opaque; pixels
// outside the buffer are silently skipped.
func DrawSegmentAdditive(fb *FrameBuffer, x0f, y0f, x1f, y1f float64, r, g, b uint8) {
	x0 := int(x0f)
	y0 := int(y0f)
	x1 := int(x1f)
	y1 := int(y1f)

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy

	for {
		if x0 >= 0 && y0 >= 0 && x0 < fb.W && y0 < fb.H {
			i := (y0*fb.W + x0) * 4
			fb.Pix[i] = satAdd(fb.Pix[i], r)
			fb.Pix[i+1] = satAdd(fb.Pix[i+1], g)
			fb.Pix[i+2] = satAdd(fb.Pix[i+2], b)
			fb.Pix[i+3] = 255
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
