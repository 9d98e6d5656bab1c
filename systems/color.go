package systems

import "math"

// ColorMode selects how particle state maps to trail color.
type ColorMode int

const (
	ModeDirection ColorMode = iota
	ModeAge
	ModeCurl
	numColorModes
)

// Next returns the following mode, wrapping after Curl.
func (m ColorMode) Next() ColorMode {
	return (m + 1) % numColorModes
}

func (m ColorMode) String() string {
	switch m {
	case ModeDirection:
		return "direction"
	case ModeAge:
		return "age"
	case ModeCurl:
		return "curl"
	}
	return "unknown"
}

// ParseColorMode maps a config string to a ColorMode.
func ParseColorMode(s string) (ColorMode, bool) {
	switch s {
	case "direction", "":
		return ModeDirection, true
	case "age":
		return ModeAge, true
	case "curl":
		return ModeCurl, true
	}
	return ModeDirection, false
}

// ColorFor maps a particle's kinematic state to an RGB triple under the
// active color mode. prevX/prevY is the pre-step position; the curl mode
// samples the field there so its finite difference is unaffected by the
// step just taken.
func ColorFor(p *Particle, prevX, prevY float64, field *Field, params *Params) (uint8, uint8, uint8) {
	switch params.Mode {
	case ModeAge:
		hue := fract(float64(p.Age)*0.002 + params.Z*0.5)
		v := clampFloat(velocityMagnitude(p.VX, p.VY)*0.5, 0.1, 1.0)
		return HSVToRGB(hue, 1.0, v)

	case ModeCurl:
		// Finite-difference approximation of the angle field's local
		// rotation, sampled a small fixed offset to the right.
		const eps = 2.0
		a0 := field.SampleAngle(prevX, prevY, params.Scale, params.Z)
		a1 := field.SampleAngle(prevX+eps, prevY, params.Scale, params.Z)
		da := normalizeAngle(a1 - a0)
		hue := clampFloat(math.Abs(da)/math.Pi, 0, 1)
		v := clampFloat(velocityMagnitude(p.VX, p.VY)*0.6, 0.2, 1.0)
		return HSVToRGB(hue, 1.0, v)

	default: // ModeDirection
		angle := math.Atan2(p.VY, p.VX)
		hue := fract(angle / Tau)
		if hue < 0 {
			hue += 1
		}
		v := clampFloat(velocityMagnitude(p.VX, p.VY)*0.5, 0.1, 1.0)
		return HSVToRGB(hue+params.Z*0.5, 1.0, v)
	}
}

// HSVToRGB converts hue/saturation/value to 8-bit RGB using the sector
// formula. Hue is a turn fraction and wraps outside [0, 1); component
// outputs are clamped to [0, 255].
func HSVToRGB(h, s, v float64) (uint8, uint8, uint8) {
	s = clampFloat(s, 0, 1)
	v = clampFloat(v, 0, 1)
	h = fract(h)
	if h < 0 {
		h += 1
	}
	i := int(math.Floor(h * 6))
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch ((i % 6) + 6) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return clampByte(r * 255), clampByte(g * 255), clampByte(b * 255)
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
