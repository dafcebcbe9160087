package kerbal

import "fmt"

// Engine defines an Engine interface.
type Engine interface {
	// Returns the specific impulse in seconds, at sea level or in vacuum.
	Isp(vacuum bool) float64
	// Returns the thrust in Newtons, at sea level or in vacuum.
	Thrust(vacuum bool) float64
}

// LiquidEngine is a liquid fuel engine, with different performances at sea level and in vacuum.
type LiquidEngine struct {
	Name                 string
	IspASL, IspVac       float64
	ThrustASL, ThrustVac float64
}

// Isp implements the Engine interface.
func (e LiquidEngine) Isp(vacuum bool) float64 {
	if vacuum {
		return e.IspVac
	}
	return e.IspASL
}

// Thrust implements the Engine interface.
func (e LiquidEngine) Thrust(vacuum bool) float64 {
	if vacuum {
		return e.ThrustVac
	}
	return e.ThrustASL
}

func (e LiquidEngine) String() string {
	return fmt.Sprintf("%s (isp %.0f-%.0f s)", e.Name, e.IspASL, e.IspVac)
}

// GenericEngine is an engine with the same performances everywhere.
type GenericEngine struct {
	thrust float64
	isp    float64
}

// Isp implements the Engine interface.
func (e *GenericEngine) Isp(vacuum bool) float64 {
	return e.isp
}

// Thrust implements the Engine interface.
func (e *GenericEngine) Thrust(vacuum bool) float64 {
	return e.thrust
}

// NewGenericEngine returns a generic engine.
func NewGenericEngine(thrust, isp float64) *GenericEngine {
	return &GenericEngine{thrust, isp}
}

/* Stock engines */

// Reliant is the LV-T30.
var Reliant = LiquidEngine{"LV-T30 Reliant", 265, 310, 205160, 240000}

// Swivel is the LV-T45.
var Swivel = LiquidEngine{"LV-T45 Swivel", 250, 320, 167970, 215000}

// Terrier is the LV-909, the go-to upper stage engine.
var Terrier = LiquidEngine{"LV-909 Terrier", 85, 345, 14780, 60000}

// Poodle is the RE-L10.
var Poodle = LiquidEngine{"RE-L10 Poodle", 90, 350, 64290, 250000}

// Spark is the 48-7S.
var Spark = LiquidEngine{"48-7S Spark", 270, 320, 16880, 20000}

// Nerv is the LV-N nuclear engine.
var Nerv = LiquidEngine{"LV-N Nerv", 185, 800, 13880, 60000}

// Stage is a single stage of a vehicle.
type Stage struct {
	Engine   Engine
	Wet, Dry float64 // kg
}

// DeltaV returns the ΔV of this stage.
func (s Stage) DeltaV(vacuum bool) float64 {
	return StageDeltaV(s.Engine.Isp(vacuum), s.Wet, s.Dry)
}

// TWR returns the thrust to weight ratio of this stage at ignition on the provided body.
func (s Stage) TWR(vacuum bool, body Body) float64 {
	return s.Engine.Thrust(vacuum) / (s.Wet * body.SurfaceGravity())
}

// Vehicle is a stack of stages, the first one being fired first.
// Each stage's masses must include the masses of all the stages above it.
type Vehicle []Stage

// DeltaV returns the total ΔV of the vehicle.
func (v Vehicle) DeltaV(vacuum bool) float64 {
	Δvs := make([]float64, len(v))
	for i, stage := range v {
		Δvs[i] = stage.DeltaV(vacuum)
	}
	return sum(Δvs...)
}
