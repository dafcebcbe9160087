package kerbal

import "math"

// EscapeSurface returns the escape velocity from the surface of a body of mass M and radius r.
func EscapeSurface(M, r float64) float64 {
	return math.Sqrt(2 * G * M / r)
}

// LocalEscape returns the escape velocity at height h above the surface.
func LocalEscape(M, r, h float64) float64 {
	return math.Sqrt(2 * G * M / (h + r))
}

// OrbitalVelocity returns the orbital speed at height h via the vis-viva equation.
// a is the semi-major axis of the orbit (from the center of the body).
func OrbitalVelocity(M, r, h, a float64) float64 {
	R := h + r
	return math.Sqrt(G * M * (2/R - 1/a))
}

// CircularVelocity returns the speed of a circular orbit at height h.
func CircularVelocity(M, r, h float64) float64 {
	return OrbitalVelocity(M, r, h, h+r)
}

// EscapeOrbit returns the ΔV required to escape from an orbit of semi-major
// axis a, burning at height h.
func EscapeOrbit(M, r, h, a float64) float64 {
	return LocalEscape(M, r, h) - OrbitalVelocity(M, r, h, a)
}
