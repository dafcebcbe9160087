package kerbal

import "math"

// DeltaV returns the ΔV of a rocket stage via the Tsiolkovsky rocket equation.
// isp is the specific impulse in seconds and massRatio the wet over dry mass ratio.
// A non-positive mass ratio returns NaN (or -Inf for zero).
func DeltaV(isp, massRatio float64) float64 {
	return isp * G0 * math.Log(massRatio)
}

// WetDryRatio returns the wet over dry mass ratio needed to reach a given ΔV.
// NOTE: stock fuel tanks cannot do better than a ratio of about 9.
func WetDryRatio(isp, Δv float64) float64 {
	return math.Exp(Δv / (isp * G0))
}

// StageDeltaV returns the ΔV of a stage from its wet and dry masses (in kg).
func StageDeltaV(isp, wet, dry float64) float64 {
	return DeltaV(isp, wet/dry)
}

// PropellantMass returns the propellant mass to burn for a dry mass to gain Δv.
func PropellantMass(isp, Δv, dry float64) float64 {
	return dry * (WetDryRatio(isp, Δv) - 1)
}

// ExhaustVelocity returns the effective exhaust velocity for the given isp.
func ExhaustVelocity(isp float64) float64 {
	return isp * G0
}
