package systems

import "math"

// clampFloat clamps v between minVal and maxVal.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// fract returns the fractional part of x, truncated toward zero, so
// negative inputs yield negative fractions.
func fract(x float64) float64 {
	return x - math.Trunc(x)
}

// normalizeAngle wraps an angle to (-Pi, Pi].
func normalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= Tau
	}
	for angle < -math.Pi {
		angle += Tau
	}
	return angle
}

// satAdd adds two bytes, saturating at 255 instead of wrapping.
func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// velocityMagnitude returns the magnitude of a velocity vector.
func velocityMagnitude(vx, vy float64) float64 {
	return math.Sqrt(vx*vx + vy*vy)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
