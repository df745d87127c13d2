package gamemath

import "math"

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

// SlopeDamping is the per-frame horizontal velocity multiplier: the base
// deceleration rate shifted by how far the surface multiplier is from 0.75.
func SlopeDamping(decel, slopeAccel float64) float64 {
	return decel + ((slopeAccel-0.75)/0.75)*0.09
}

// ApplyGravity adds gravity to a vertical speed, capping the fall speed.
func ApplyGravity(vy, gravity, terminal float64) float64 {
	if vy >= terminal {
		return terminal
	}
	return math.Min(vy+gravity, terminal)
}

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// Mod is a floored modulo that is never negative for positive m.
func Mod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}

// Lerp moves a toward b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
