package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ChristopherRabotin/kerbal"
	kitlog "github.com/go-kit/kit/log"
	"github.com/soniakeys/meeus/v3/julian"
)

// This code reads a scenario file and prints the transfer plan it describes.

const (
	defaultScenario = "~~unset~~"
	banner          = "Hullo, Scott Manley here"
)

var (
	scenario string
	verbose  bool
)

func init() {
	// Read flags
	flag.StringVar(&scenario, "scenario", defaultScenario, "mission scenario TOML file")
	flag.BoolVar(&verbose, "verbose", false, "log every computed plan")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	fmt.Println(banner)

	if scenario == defaultScenario {
		logger.Log("level", "error", "msg", "no scenario provided")
		os.Exit(2)
	}
	sc, err := kerbal.LoadScenario(scenario)
	if err != nil {
		logger.Log("level", "error", "scenario", scenario, "err", err)
		os.Exit(1)
	}
	var planLog io.Writer
	if verbose || sc.Verbose {
		planLog = os.Stderr
	}
	planner := kerbal.NewPlanner(scenario, planLog)

	var plan kerbal.TransferPlan
	var t1, t2 float64
	if sc.Interplanetary() {
		plan, err = planner.Interplanetary(sc.Body, *sc.Target, sc.From)
		if err != nil {
			logger.Log("level", "error", "msg", "could not plan transfer", "err", err)
			os.Exit(1)
		}
		t1, t2 = sc.Body.Period(), sc.Target.Period()
	} else {
		plan = planner.Hohmann(sc.Body, sc.From, sc.To)
		t1 = sc.Body.OrbitalPeriod(sc.From + sc.Body.Radius)
		t2 = sc.Body.OrbitalPeriod(sc.To + sc.Body.Radius)
	}
	fmt.Println(plan)

	if sc.Isp > 0 {
		fmt.Printf("mass ratio: %.3f (isp %.0f s)\n", plan.MassRatio(sc.Isp), sc.Isp)
		if sc.Dry > 0 {
			fmt.Printf("propellant: %.1f kg for %.1f kg dry\n", plan.Propellant(sc.Isp, sc.Dry), sc.Dry)
		}
	}

	wait := kerbal.PhaseWait(sc.Phase, plan.PhaseAngle, t1, t2)
	fmt.Printf("wait: %s (synodic period %s)\n", kerbal.KerbinDuration(wait), kerbal.KerbinDuration(kerbal.SynodicPeriod(t1, t2)))
	if !sc.Epoch.IsZero() && kerbal.Representable(wait+plan.TimeOfFlight) {
		departure := sc.Epoch.Add(kerbal.ToDuration(wait))
		arrival := departure.Add(kerbal.ToDuration(plan.TimeOfFlight))
		fmt.Printf("departure: %s (JDE %.4f)\n", departure.Format(kerbal.DateTimeFormat), julian.TimeToJD(departure))
		fmt.Printf("arrival: %s (JDE %.4f)\n", arrival.Format(kerbal.DateTimeFormat), julian.TimeToJD(arrival))
	}
}
