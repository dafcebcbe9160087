package kerbal

import (
	"math"

	"github.com/gonum/floats"
)

const (
	deg2rad = math.Pi / 180
	angleε  = 1e-9 // in degrees
)

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}

// Wrap360 returns the provided angle in degrees within [0; 360).
func Wrap360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// AnglesEqual returns whether two angles in degrees are the same, modulo 360.
func AnglesEqual(a, b float64) bool {
	Δ := Wrap360(a - b)
	return floats.EqualWithinAbs(Δ, 0, angleε) || floats.EqualWithinAbs(Δ, 360, angleε)
}

// sum returns the sum of the provided values.
func sum(values ...float64) float64 {
	return floats.Sum(values)
}
