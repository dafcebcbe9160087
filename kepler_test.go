package kerbal

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestSemiMajorRoundTrip(t *testing.T) {
	for _, r := range []float64{13000, 200000, 600000, 6000000} {
		for peri := 0.0; peri < 1e7; peri += 7.5e5 {
			for apo := peri; apo < 2e7; apo += 1.3e6 {
				sma := SemiMajorAxis(peri, apo, r)
				if got := SemiMajorApo(sma, peri, r); !floats.EqualWithinAbs(got, apo, 1e-6) {
					t.Fatalf("r=%.0f peri=%.0f: apo=%f expected %f", r, peri, got, apo)
				}
				if got := SemiMajorPeri(sma, apo, r); !floats.EqualWithinAbs(got, peri, 1e-6) {
					t.Fatalf("r=%.0f apo=%.0f: peri=%f expected %f", r, apo, got, peri)
				}
			}
		}
	}
	if sma := SemiMajorAxis(70000, 70000, KerbinRadius); sma != 670000 {
		t.Fatalf("sma=%f expected 670 km", sma)
	}
}

func TestEccentricity(t *testing.T) {
	for _, r := range []float64{0, 60000, 600000} {
		for h := 0.0; h < 1e7; h += 1e6 {
			if r == 0 && h == 0 {
				continue
			}
			if e := Eccentricity(h, h, r); e != 0 {
				t.Fatalf("circular orbit at h=%f r=%f has e=%f", h, r, e)
			}
		}
	}
	// A point mass orbit is 0/0.
	if e := Eccentricity(0, 0, 0); !math.IsNaN(e) {
		t.Fatalf("degenerate orbit has e=%f", e)
	}
	// The altitudes are converted to radii.
	if e := Eccentricity(0, 1200000, KerbinRadius); !floats.EqualWithinAbs(e, 0.5, 1e-15) {
		t.Fatalf("e=%f expected 0.5", e)
	}
	a, e := Radii2ae(1800000, 600000)
	if a != 1200000 || !floats.EqualWithinAbs(e, 0.5, 1e-15) {
		t.Fatalf("a=%f e=%f", a, e)
	}
	if SemiMajorAxis(0, 1200000, KerbinRadius) != a {
		t.Fatal("sma differs between altitudes and radii")
	}
}

func TestOrbitalPeriodLowKerbin(t *testing.T) {
	sma := 600000.0 + 70000
	exp := 2 * math.Pi * math.Pow(sma, 1.5) / math.Sqrt(G*KerbinMass)
	T := OrbitalPeriod(sma, KerbinMass)
	if !floats.EqualWithinRel(T, exp, 1e-12) {
		t.Fatalf("T=%f expected %f", T, exp)
	}
	if !floats.EqualWithinAbs(T, 1833.596, 1e-3) {
		t.Fatalf("T=%f expected ~1833.596 s", T)
	}
}

func TestSemiMajorPeriodRoundTrip(t *testing.T) {
	for _, M := range []float64{KerbinMass, Mun.Mass, Kerbol.Mass, Gilly.Mass} {
		for sma := 1e4; sma < 1e11; sma *= 3.7 {
			if got := SemiMajorPeriod(OrbitalPeriod(sma, M), M); !floats.EqualWithinRel(got, sma, 1e-12) {
				t.Fatalf("M=%g: sma=%f expected %f", M, got, sma)
			}
		}
	}
	// Keostationary orbit: the sidereal day of Kerbin is 21549.425 s.
	if h := SemiMajorPeriod(21549.425, KerbinMass) - KerbinRadius; !floats.EqualWithinAbs(h, 2863348, 1) {
		t.Fatalf("keostationary altitude=%f expected ~2863.348 km", h)
	}
}

func TestSynodicPeriod(t *testing.T) {
	syn := SynodicPeriod(Kerbin.Period(), Duna.Period())
	if days := syn / KerbinDay; !floats.EqualWithinAbs(days, 909.52, 1e-2) {
		t.Fatalf("Kerbin-Duna synodic period is %f days, expected ~909.52", days)
	}
	if syn != SynodicPeriod(Duna.Period(), Kerbin.Period()) {
		t.Fatal("synodic period is not symmetric")
	}
	if !math.IsInf(SynodicPeriod(100, 100), 1) {
		t.Fatal("identical periods should never realign")
	}
}
