package gamemath

import "math"

// AngleDegrees returns atan2(dy, dx) in degrees. A zero vector yields 0.
func AngleDegrees(dx, dy float64) float64 {
	return RadToDeg(math.Atan2(dy, dx))
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// WrapDegrees maps deg into (-180, 180].
func WrapDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg <= -180 {
		deg += 360
	} else if deg > 180 {
		deg -= 360
	}
	return deg
}
