package kerbal

import (
	"fmt"
	"math"
	"strings"
)

const (
	// G is Newton's universal constant of gravitation, in m^3 kg^-1 s^-2.
	G = 6.67408e-11
	// G0 is the standard surface gravity used to convert isp to exhaust velocity, in m/s^2.
	G0 = 9.81
	// KerbinMass is the mass of Kerbin in kilograms.
	KerbinMass = 5.2915793e22
	// KerbinRadius is the radius of Kerbin in meters.
	KerbinRadius = 600000.0
	// lowOrbitMargin is the height kept above the atmosphere (or the ground) for a low orbit.
	lowOrbitMargin = 10000.0
)

// Body defines a celestial body of the Kerbol system.
// All distances are in meters and the mass is in kilograms.
type Body struct {
	Name       string
	Radius     float64
	Mass       float64
	Atmosphere float64 // Height of the atmosphere, zero if none.
	SOI        float64 // Sphere of influence radius, -1 for the star.
	Parent     string
	SMA        float64 // Semi-major axis of its orbit around Parent.
}

// GM returns the standard gravitational parameter μ.
func (b Body) GM() float64 {
	return G * b.Mass
}

// SurfaceGravity returns the gravitational acceleration at sea level.
func (b Body) SurfaceGravity() float64 {
	return b.GM() / (b.Radius * b.Radius)
}

// EscapeSurface returns the escape velocity from the surface of this body.
func (b Body) EscapeSurface() float64 {
	return EscapeSurface(b.Mass, b.Radius)
}

// OrbitalPeriod returns the period of an orbit of semi-major axis sma around this body.
func (b Body) OrbitalPeriod(sma float64) float64 {
	return OrbitalPeriod(sma, b.Mass)
}

// OrbitalVelocity returns the vis-viva speed at height h on an orbit of semi-major axis sma.
func (b Body) OrbitalVelocity(h, sma float64) float64 {
	return OrbitalVelocity(b.Mass, b.Radius, h, sma)
}

// CircularVelocity returns the speed of a circular orbit at height h.
func (b Body) CircularVelocity(h float64) float64 {
	return CircularVelocity(b.Mass, b.Radius, h)
}

// LowOrbit returns the height of the lowest sensible circular orbit.
func (b Body) LowOrbit() float64 {
	return b.Atmosphere + lowOrbitMargin
}

// Period returns the sidereal period of this body around its parent, in seconds.
// Returns zero for the star and NaN if the parent is not in the catalog.
func (b Body) Period() float64 {
	if b.Parent == "" {
		return 0
	}
	parent, err := BodyFromString(b.Parent)
	if err != nil {
		return math.NaN()
	}
	return parent.OrbitalPeriod(b.SMA)
}

// String implements the Stringer interface.
func (b Body) String() string {
	return b.Name + " body"
}

// Equals returns whether the provided body is the same.
func (b Body) Equals(o Body) bool {
	return b.Name == o.Name && b.Radius == o.Radius && b.Mass == o.Mass && b.SOI == o.SOI
}

// BodyFromString returns the body from its name
func BodyFromString(name string) (Body, error) {
	if b, ok := bodies[strings.ToLower(strings.TrimSpace(name))]; ok {
		return b, nil
	}
	return Body{}, fmt.Errorf("undefined body '%s'", name)
}

// Bodies returns all the bodies of the Kerbol system, the star first.
func Bodies() []Body {
	return []Body{Kerbol, Moho, Eve, Gilly, Kerbin, Mun, Minmus, Duna, Ike, Dres, Jool, Laythe, Vall, Tylo, Bop, Pol, Eeloo}
}

var bodies = func() map[string]Body {
	m := make(map[string]Body)
	for _, b := range Bodies() {
		m[strings.ToLower(b.Name)] = b
	}
	return m
}()

/* Definitions */

// Kerbol is the star.
var Kerbol = Body{"Kerbol", 261600000, 1.7565459e28, 600000, -1, "", 0}

// Moho is hot.
var Moho = Body{"Moho", 250000, 2.5263314e21, 0, 9646663, "Kerbol", 5263138304}

// Eve is easy to land on and hard to leave.
var Eve = Body{"Eve", 700000, 1.2243980e23, 90000, 85109365, "Kerbol", 9832684544}

// Gilly is a captured asteroid.
var Gilly = Body{"Gilly", 13000, 1.2420363e17, 0, 126123.27, "Eve", 31500000}

// Kerbin is home.
var Kerbin = Body{"Kerbin", KerbinRadius, KerbinMass, 70000, 84159286, "Kerbol", 13599840256}

// Mun is the first stop.
var Mun = Body{"Mun", 200000, 9.7599066e20, 0, 2429559.1, "Kerbin", 12000000}

// Minmus is made of mint.
var Minmus = Body{"Minmus", 60000, 2.6457580e19, 0, 2247428.4, "Kerbin", 47000000}

// Duna is the red one.
var Duna = Body{"Duna", 320000, 4.5154270e21, 50000, 47921949, "Kerbol", 20726155264}

// Ike is Duna's moon.
var Ike = Body{"Ike", 130000, 2.7821615e20, 0, 1049598.9, "Duna", 3200000}

// Dres is often forgotten.
var Dres = Body{"Dres", 138000, 3.2190937e20, 0, 32832840, "Kerbol", 40839348203}

// Jool is big and green.
var Jool = Body{"Jool", 6000000, 4.2332127e24, 200000, 2.4559852e9, "Kerbol", 68773560320}

// Laythe is the ocean moon.
var Laythe = Body{"Laythe", 500000, 2.9397311e22, 50000, 3723645.8, "Jool", 27184000}

// Vall is icy.
var Vall = Body{"Vall", 300000, 3.1087655e21, 0, 2406401.4, "Jool", 43152000}

// Tylo is heavy for its size.
var Tylo = Body{"Tylo", 600000, 4.2332127e22, 0, 10856518, "Jool", 68500000}

// Bop is a captured asteroid.
var Bop = Body{"Bop", 65000, 3.7261090e19, 0, 1221060.9, "Jool", 128500000}

// Pol is the smallest of the Joolian moons.
var Pol = Body{"Pol", 44000, 1.0813507e19, 0, 1042138.9, "Jool", 179890000}

// Eeloo is far out.
var Eeloo = Body{"Eeloo", 210000, 1.1149224e21, 0, 1.1908294e8, "Kerbol", 90118820000}
