package kerbal

import "math"

// All the periapsis and apoapsis parameters below are altitudes above the
// surface, since that is what the in-game altimeter shows. Semi-major axes are
// always measured from the center of the body.

// SemiMajorAxis returns the semi-major axis of an orbit.
func SemiMajorAxis(peri, apo, r float64) float64 {
	return (peri+apo)/2 + r
}

// SemiMajorApo returns the apoapsis needed to reach a given semi-major axis.
func SemiMajorApo(sma, peri, r float64) float64 {
	return 2*(sma-r) - peri
}

// SemiMajorPeri returns the periapsis needed to reach a given semi-major axis.
func SemiMajorPeri(sma, apo, r float64) float64 {
	return 2*(sma-r) - apo
}

// Eccentricity returns the eccentricity of an orbit.
func Eccentricity(peri, apo, r float64) float64 {
	rA := apo + r
	rP := peri + r
	return (rA - rP) / (rA + rP)
}

// OrbitalPeriod returns the sidereal period in seconds (Kepler's third law).
func OrbitalPeriod(sma, M float64) float64 {
	return 2 * math.Pi * math.Sqrt(math.Pow(sma, 3)/(G*M))
}

// SemiMajorPeriod returns the semi-major axis needed for a given orbital period.
func SemiMajorPeriod(T, M float64) float64 {
	return math.Cbrt(G * M * T * T / (4 * math.Pi * math.Pi))
}

// SynodicPeriod returns the time between two consecutive identical
// configurations of two bodies orbiting the same parent.
// Identical periods return +Inf.
func SynodicPeriod(t1, t2 float64) float64 {
	return 1 / math.Abs(1/t1-1/t2)
}

// Radii2ae returns the semi major axis and the eccentricty from the radii.
// Unlike the altitude based functions, rA and rP are measured from the center.
func Radii2ae(rA, rP float64) (a, e float64) {
	a = (rP + rA) / 2
	e = (rA - rP) / (rA + rP)
	return
}
