package kerbal

import (
	"strings"
	"testing"

	"github.com/gonum/floats"
)

func TestLiquidEngine(t *testing.T) {
	for _, engine := range []LiquidEngine{Reliant, Swivel, Terrier, Poodle, Spark, Nerv} {
		if engine.Isp(true) <= engine.Isp(false) {
			t.Fatalf("%s: vacuum isp should be better", engine)
		}
		if engine.Thrust(true) <= engine.Thrust(false) {
			t.Fatalf("%s: vacuum thrust should be better", engine)
		}
		if !strings.Contains(engine.String(), engine.Name) {
			t.Fatalf("invalid string %s", engine)
		}
	}
}

func TestGenericEngine(t *testing.T) {
	thrust, isp := 1., 2.
	engine := NewGenericEngine(thrust, isp)
	if engine.Thrust(true) != thrust || engine.Thrust(false) != thrust {
		t.Fatal("invalid thrust returned")
	}
	if engine.Isp(true) != isp || engine.Isp(false) != isp {
		t.Fatal("invalid isp returned")
	}
}

func TestVehicleDeltaV(t *testing.T) {
	upper := Stage{Terrier, 4000, 1500}
	lower := Stage{Reliant, 20000, 8000}
	vehicle := Vehicle{lower, upper}
	exp := DeltaV(Reliant.IspVac, 2.5) + DeltaV(Terrier.IspVac, 4000./1500)
	if Δv := vehicle.DeltaV(true); !floats.EqualWithinAbs(Δv, exp, 1e-9) {
		t.Fatalf("Δv=%f expected %f", Δv, exp)
	}
	if vehicle.DeltaV(false) >= vehicle.DeltaV(true) {
		t.Fatal("sea level Δv should be lower")
	}
	if Δv := (Vehicle{}).DeltaV(true); Δv != 0 {
		t.Fatalf("empty vehicle has Δv=%f", Δv)
	}
	twr := lower.TWR(false, Kerbin)
	if exp := Reliant.ThrustASL / (20000 * Kerbin.SurfaceGravity()); twr != exp {
		t.Fatalf("TWR=%f expected %f", twr, exp)
	}
}
