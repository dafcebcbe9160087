package kerbal

import (
	"math"
	"strings"
	"testing"

	"github.com/gonum/floats"
)

func TestOrbitCircular(t *testing.T) {
	o := NewCircularOrbit(80000, Kerbin)
	if o.Eccentricity() != 0 {
		t.Fatalf("e=%f", o.Eccentricity())
	}
	if o.SMA() != 680000 {
		t.Fatalf("a=%f", o.SMA())
	}
	if !floats.EqualWithinAbs(o.Circularize(), 0, 1e-9) {
		t.Fatalf("circular orbit needs %f m/s to circularize", o.Circularize())
	}
	if o.Period() != OrbitalPeriod(680000, KerbinMass) {
		t.Fatal("invalid period")
	}
	if !floats.EqualWithinRel(o.Energyξ(), -Kerbin.GM()/(2*680000), 1e-15) {
		t.Fatalf("ξ=%f", o.Energyξ())
	}
	if o.Suborbital() {
		t.Fatal("80 km is above the atmosphere")
	}
	if !NewCircularOrbit(50000, Kerbin).Suborbital() {
		t.Fatal("50 km is within the atmosphere")
	}
}

func TestOrbitElliptical(t *testing.T) {
	o := NewOrbit(2000000, 100000, Kerbin)
	if o.Peri != 100000 || o.Apo != 2000000 {
		t.Fatalf("apsides not swapped: %s", o)
	}
	// Raising the periapsis to the apoapsis.
	Δv := o.Circularize()
	if exp := CircularVelocity(KerbinMass, KerbinRadius, 2000000) - OrbitalVelocity(KerbinMass, KerbinRadius, 2000000, o.SMA()); Δv != exp || Δv <= 0 {
		t.Fatalf("Δv=%f expected %f", Δv, exp)
	}
	if !math.IsNaN(o.Speed(50000)) || !math.IsNaN(o.Speed(3000000)) {
		t.Fatal("speed outside of the apsides should be NaN")
	}
	if o.Speed(100000) <= o.Speed(2000000) {
		t.Fatal("periapsis should be faster than apoapsis")
	}
	if o.Escape() >= NewCircularOrbit(100000, Kerbin).Escape() {
		t.Fatal("escaping from an elliptical orbit should be cheaper")
	}
	if !strings.Contains(o.String(), "Kerbin") {
		t.Fatalf("invalid string %s", o)
	}
}

func TestOrbitFromSMAAndPeriod(t *testing.T) {
	o := NewOrbit(100000, 2000000, Kerbin)
	fromSMA := NewOrbitFromSMA(o.SMA(), 100000, Kerbin)
	if ok, err := o.Equals(*fromSMA); !ok {
		t.Fatalf("orbit from sma differs: %s", err)
	}
	fromPeriod := NewOrbitFromPeriod(o.Period(), 100000, Kerbin)
	if ok, err := o.Equals(*fromPeriod); !ok {
		t.Fatalf("orbit from period differs: %s", err)
	}
	// Keostationary
	keo := NewOrbitFromPeriod(21549.425, 2863348, Kerbin)
	if !floats.EqualWithinAbs(keo.Apo, 2863348, 2) {
		t.Fatalf("keostationary orbit not circular: %s", keo)
	}
	if ok, _ := o.Equals(*NewOrbit(100000, 2000000, Mun)); ok {
		t.Fatal("different origins should differ")
	}
	if ok, _ := o.Equals(*NewOrbit(100000, 2100000, Kerbin)); ok {
		t.Fatal("different apoapsis should differ")
	}
}
