package kerbal

import (
	"fmt"
	"io"
	"math"

	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// TransferPlan stores all the parameters of a two burn transfer.
// Angles are in degrees, velocities in m/s and times in seconds.
type TransferPlan struct {
	Body, From, To  string
	PhaseAngle      float64
	EjectionAngle   float64 // Only set for interplanetary transfers.
	ExcessDeparture float64 // Only set for interplanetary transfers.
	ExcessArrival   float64 // Only set for interplanetary transfers.
	Burn1, Burn2    float64
	TimeOfFlight    float64
}

// Total returns the total ΔV of the transfer, whichever the direction of each burn.
func (t TransferPlan) Total() float64 {
	return math.Abs(t.Burn1) + math.Abs(t.Burn2)
}

// MassRatio returns the wet/dry ratio to perform this transfer with an engine of the given isp.
func (t TransferPlan) MassRatio(isp float64) float64 {
	return WetDryRatio(isp, t.Total())
}

// Propellant returns the propellant mass needed for a vehicle of the given dry mass.
func (t TransferPlan) Propellant(isp, dry float64) float64 {
	return PropellantMass(isp, t.Total(), dry)
}

// String implements the stringer interface.
func (t TransferPlan) String() string {
	rtn := fmt.Sprintf("%s -> %s (%s)\tphase=%.2f deg\tΔv1=%.1f m/s\tΔv2=%.1f m/s\ttotal=%.1f m/s\ttof=%s", t.From, t.To, t.Body, t.PhaseAngle, t.Burn1, t.Burn2, t.Total(), KerbinDuration(t.TimeOfFlight))
	if t.EjectionAngle != 0 {
		rtn += fmt.Sprintf("\tejection=%.2f deg\tv∞=%.1f m/s", t.EjectionAngle, t.ExcessDeparture)
	}
	return rtn
}

// Planner composes the formulas into full transfer plans.
type Planner struct {
	logger kitlog.Logger
}

// Hohmann returns the plan of a Hohmann transfer between the circular orbits at
// heights h1 and h2 around the provided body.
func (p *Planner) Hohmann(body Body, h1, h2 float64) TransferPlan {
	plan := TransferPlan{Body: body.Name, From: fmt.Sprintf("%.0f m", h1), To: fmt.Sprintf("%.0f m", h2)}
	plan.PhaseAngle = HohmannAngle(h1, h2, body.Radius)
	plan.Burn1, plan.Burn2 = HohmannVelocity(h1, h2, body.Radius, body.Mass)
	plan.TimeOfFlight = HohmannTime(h1, h2, body.Radius, body.Mass)
	p.log(plan)
	return plan
}

// Interplanetary returns the plan to go from a circular parking orbit at height
// parkingAlt around `from` to a low circular orbit around `to`. Both bodies must
// orbit the same parent, and their orbits are assumed circular and coplanar.
func (p *Planner) Interplanetary(from, to Body, parkingAlt float64) (TransferPlan, error) {
	if from.Parent == "" || from.Parent != to.Parent {
		return TransferPlan{}, fmt.Errorf("%s and %s do not orbit the same body", from.Name, to.Name)
	}
	if from.Equals(to) {
		return TransferPlan{}, fmt.Errorf("already orbiting %s", to.Name)
	}
	parent, err := BodyFromString(from.Parent)
	if err != nil {
		return TransferPlan{}, err
	}
	plan := TransferPlan{Body: parent.Name, From: from.Name, To: to.Name}
	// The bodies' orbits are treated as orbits at heights SMA above a point mass.
	plan.PhaseAngle = HohmannAngle(from.SMA, to.SMA, 0)
	vInfDep, vInfArr := HohmannVelocity(from.SMA, to.SMA, 0, parent.Mass)
	plan.ExcessDeparture = math.Abs(vInfDep)
	plan.ExcessArrival = math.Abs(vInfArr)
	plan.TimeOfFlight = HohmannTime(from.SMA, to.SMA, 0, parent.Mass)

	plan.Burn1 = EjectionDelta(plan.ExcessDeparture, from.Mass, parkingAlt+from.Radius, parkingAlt, from.Radius)
	vPeri := from.CircularVelocity(parkingAlt) + plan.Burn1
	plan.EjectionAngle = EjectionAngle(HyperEccentricity(parkingAlt, from.Radius, vPeri, from.Mass))

	// Capture into a low orbit is the ejection burn in reverse.
	captureAlt := to.LowOrbit()
	plan.Burn2 = EjectionDelta(plan.ExcessArrival, to.Mass, captureAlt+to.Radius, captureAlt, to.Radius)
	p.log(plan)
	return plan, nil
}

func (p *Planner) log(plan TransferPlan) {
	level.Debug(p.logger).Log("body", plan.Body, "from", plan.From, "to", plan.To, "phase", plan.PhaseAngle, "dv1", plan.Burn1, "dv2", plan.Burn2, "tof", plan.TimeOfFlight)
}

// NewPlanner returns a new Planner which logs in logfmt to the provided writer.
// A nil writer disables logging.
func NewPlanner(name string, w io.Writer) *Planner {
	if w == nil {
		return &Planner{kitlog.NewNopLogger()}
	}
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(w))
	klog = kitlog.With(klog, "planner", name)
	return &Planner{klog}
}

// PhaseWait returns the time in seconds until the phase angle (in degrees, of
// the target ahead of the vehicle) goes from current to target, when the vehicle
// orbits with period t1 and the target with period t2.
// Returns +Inf if the periods are identical.
func PhaseWait(current, target, t1, t2 float64) float64 {
	rate := 360/t2 - 360/t1 // deg/s, negative when the target is slower.
	if rate == 0 {
		return math.Inf(1)
	}
	if rate < 0 {
		return Wrap360(current-target) / -rate
	}
	return Wrap360(target-current) / rate
}
