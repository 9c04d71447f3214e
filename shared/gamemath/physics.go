package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// SpinInput returns the spin acceleration for the pressed turn keys.
// Both or neither pressed cancel out.
func SpinInput(leftPressed, rightPressed bool, accel float64) float64 {
	if leftPressed && !rightPressed {
		return -accel
	}
	if rightPressed && !leftPressed {
		return accel
	}
	return 0
}
