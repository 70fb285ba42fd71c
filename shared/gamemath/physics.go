package gamemath

import "math"

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxSpeedForAngle interpolates the speed cap from straight to turning as
// |angle| approaches maxAngle.
func MaxSpeedForAngle(angle, maxAngle, straight, turning float64) float64 {
	if maxAngle <= 0 {
		return straight
	}
	ratio := math.Min(math.Abs(angle)/maxAngle, 1)
	return Lerp(straight, turning, ratio)
}

// Drift returns the lateral displacement for one tick. Faster skiers get a
// smaller effective angle, which widens the turn radius.
func Drift(angle, speed, maxSpeed, turnScale, driftScale float64) float64 {
	turnFactor := 1 - (speed/maxSpeed)*turnScale
	effectiveAngle := angle * turnFactor
	return math.Sin(effectiveAngle) * speed * driftScale
}

// DownhillSpeed is the forward progress left after the turning penalty.
func DownhillSpeed(speed, angle, penalty float64) float64 {
	return speed * (1 - math.Abs(math.Sin(angle))*penalty)
}

// DecaySpeed multiplies speed by factor and snaps it to zero below stop.
func DecaySpeed(speed, factor, stop float64) float64 {
	speed *= factor
	if speed < stop {
		return 0
	}
	return speed
}

// ApproachZero moves v toward zero by the multiplier and snaps tiny values.
func ApproachZero(v, factor float64) float64 {
	v *= factor
	if math.Abs(v) < 1e-4 {
		return 0
	}
	return v
}
