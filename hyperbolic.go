package kerbal

import "math"

// Hyperbolic orbits have a negative semi-major axis: from vis-viva,
// v² = μ(2/r - 1/a), so any speed above the local escape speed yields a < 0.
// With rP = a(1-e), the eccentricity is then e = 1 - rP/a > 1.

// HyperbolicSMA returns the semi-major axis of the orbit which has a speed v at
// its periapsis, at height peri above a body of mass M and radius r.
// The result is negative for hyperbolic orbits and ±Inf for a parabolic one.
func HyperbolicSMA(M, r, peri, v float64) float64 {
	rP := peri + r
	return 1 / (2/rP - v*v/(G*M))
}

// HyperEccentricity returns the eccentricity of the orbit which has a speed
// velocityAtPeri at its periapsis, at height peri above the body.
func HyperEccentricity(peri, r, velocityAtPeri, M float64) float64 {
	a := HyperbolicSMA(M, r, peri, velocityAtPeri)
	// Equivalent to (a - rP)/a, but stays defined for the parabolic case.
	return 1 - (peri+r)/a
}

// HyperbolicExcess returns the hyperbolic excess velocity of the orbit which
// has a speed v at its periapsis. Returns NaN if the orbit is bound.
func HyperbolicExcess(M, r, peri, v float64) float64 {
	return math.Sqrt(v*v - 2*G*M/(peri+r))
}

// EjectionDelta returns the ΔV to burn at the periapsis of a parking orbit (of
// semi-major axis parkingSMA) in order to leave the body with a hyperbolic
// excess velocity of vInf.
func EjectionDelta(vInf, M, parkingSMA, peri, r float64) float64 {
	μ := G * M
	aHyp := -μ / (vInf * vInf)
	rP := peri + r
	vHyp := math.Sqrt(μ * (2/rP - 1/aHyp))
	return vHyp - OrbitalVelocity(M, r, peri, parkingSMA)
}

// EjectionAngle returns, in degrees, the true anomaly of the outbound asymptote
// of a hyperbola of eccentricity e. The ejection burn happens this far before
// the direction in which the vehicle should leave the body.
func EjectionAngle(e float64) float64 {
	return Rad2deg(math.Acos(-1 / e))
}

// TurnAngle computes the turn angle in degrees of a flyby with an hyperbolic
// excess velocity vInf and a periapsis at height peri above the body.
func TurnAngle(vInf, peri, r, M float64) float64 {
	ρ := math.Acos(1 / (1 + vInf*vInf*(peri+r)/(G*M)))
	return Rad2deg(math.Pi - 2*ρ)
}
