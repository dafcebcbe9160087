package kerbal

import "math"

// HohmannAngle returns the phase angle in degrees between you and the target
// at which to start a Hohmann transfer from height h1 to height h2, so that the
// target is met at the apoapsis of the transfer ellipse.
func HohmannAngle(h1, h2, r float64) float64 {
	// Number of target orbits during half of the transfer ellipse (Kepler's third law).
	pt := 0.5 * math.Pow((h1+h2+2*r)/(2*r+2*h2), 1.5)
	// Complete orbits are irrelevant, only the fraction matters.
	_, ft := math.Modf(pt)
	sweep := ft * 360
	return 180 - sweep
}

// HohmannVelocity returns the ΔV of both burns of a Hohmann transfer between
// the circular orbits at heights h1 and h2 above a body of mass M and radius r.
// Both burns are negative when going down (h2 < h1).
func HohmannVelocity(h1, h2, r, M float64) (Δv1, Δv2 float64) {
	r1 := h1 + r
	r2 := h2 + r
	Δv1 = math.Sqrt(G*M/r1) * (math.Sqrt(2*r2/(r1+r2)) - 1)
	Δv2 = math.Sqrt(G*M/r2) * (1 - math.Sqrt(2*r1/(r1+r2)))
	return
}

// HohmannDeltaV returns the sum of both burns of HohmannVelocity.
func HohmannDeltaV(h1, h2, r, M float64) float64 {
	Δv1, Δv2 := HohmannVelocity(h1, h2, r, M)
	return Δv1 + Δv2
}

// HohmannTime returns the time of flight of a Hohmann transfer, in seconds.
func HohmannTime(h1, h2, r, M float64) float64 {
	return OrbitalPeriod(SemiMajorAxis(h1, h2, r), M) / 2
}

// HohmannTransfer computes an Hohmann transfer between the radii rI and rF
// (measured from the center). It returns the departure and arrival velocities
// on the transfer ellipse, and the time of flight in seconds.
// To get final computations:
// ΔvInit = vDepature - vI
// ΔvFinal = vF - vArrival
func HohmannTransfer(rI, rF, M float64) (vDeparture, vArrival, tof float64) {
	μ := G * M
	aTransfer := 0.5 * (rI + rF)
	vDeparture = math.Sqrt((2 * μ / rI) - (μ / aTransfer))
	vArrival = math.Sqrt((2 * μ / rF) - (μ / aTransfer))
	tof = math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/μ)
	return
}
