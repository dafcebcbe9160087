package kerbal

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5 // 0.00005
	distanceε     = 1e0  // 1 m
)

// Orbit defines a closed orbit via its apsides, as altitudes above the surface of Origin.
type Orbit struct {
	Peri, Apo float64
	Origin    Body
}

// SMA returns the semi-major axis.
func (o Orbit) SMA() float64 {
	return SemiMajorAxis(o.Peri, o.Apo, o.Origin.Radius)
}

// Eccentricity returns the eccentricity.
func (o Orbit) Eccentricity() float64 {
	return Eccentricity(o.Peri, o.Apo, o.Origin.Radius)
}

// Period returns the period of this orbit, in seconds.
func (o Orbit) Period() float64 {
	return OrbitalPeriod(o.SMA(), o.Origin.Mass)
}

// Energyξ returns the specific mechanical energy ξ.
func (o Orbit) Energyξ() float64 {
	return -o.Origin.GM() / (2 * o.SMA())
}

// Speed returns the orbital speed at the provided altitude.
// Returns NaN if the orbit never reaches that altitude.
func (o Orbit) Speed(h float64) float64 {
	if h < o.Peri-distanceε || h > o.Apo+distanceε {
		return math.NaN()
	}
	return OrbitalVelocity(o.Origin.Mass, o.Origin.Radius, h, o.SMA())
}

// Circularize returns the ΔV to burn at the apoapsis to circularize there.
func (o Orbit) Circularize() float64 {
	return CircularVelocity(o.Origin.Mass, o.Origin.Radius, o.Apo) - o.Speed(o.Apo)
}

// Escape returns the ΔV to burn at the periapsis to escape Origin.
func (o Orbit) Escape() float64 {
	return EscapeOrbit(o.Origin.Mass, o.Origin.Radius, o.Peri, o.SMA())
}

// Suborbital returns whether this orbit intersects the surface or the atmosphere.
func (o Orbit) Suborbital() bool {
	return o.Peri < o.Origin.Atmosphere
}

// String implements the stringer interface (hence the value receiver)
func (o Orbit) String() string {
	return fmt.Sprintf("%s: %.0f x %.0f m (a=%.1f e=%.4f)", o.Origin.Name, o.Peri, o.Apo, o.SMA(), o.Eccentricity())
}

// Equals returns whether two orbits are identical.
func (o Orbit) Equals(o1 Orbit) (bool, error) {
	if !o.Origin.Equals(o1.Origin) {
		return false, errors.New("different origin")
	}
	if !floats.EqualWithinAbs(o.SMA(), o1.SMA(), distanceε) {
		return false, errors.New("semi major axis invalid")
	}
	if !floats.EqualWithinAbs(o.Eccentricity(), o1.Eccentricity(), eccentricityε) {
		return false, errors.New("eccentricity invalid")
	}
	return true, nil
}

// NewOrbit returns the orbit with the provided apsides, swapping them if needed.
func NewOrbit(peri, apo float64, c Body) *Orbit {
	if peri > apo {
		peri, apo = apo, peri
	}
	return &Orbit{peri, apo, c}
}

// NewCircularOrbit returns the circular orbit at the provided altitude.
func NewCircularOrbit(h float64, c Body) *Orbit {
	return &Orbit{h, h, c}
}

// NewOrbitFromSMA returns the orbit of semi-major axis sma with a given periapsis.
func NewOrbitFromSMA(sma, peri float64, c Body) *Orbit {
	return NewOrbit(peri, SemiMajorApo(sma, peri, c.Radius), c)
}

// NewOrbitFromPeriod returns the orbit of a given period with a given periapsis.
func NewOrbitFromPeriod(T, peri float64, c Body) *Orbit {
	return NewOrbitFromSMA(SemiMajorPeriod(T, c.Mass), peri, c)
}
