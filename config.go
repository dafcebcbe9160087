package kerbal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/spf13/viper"
)

const (
	// ConfigEnv is the environment variable listing the default scenario directory.
	ConfigEnv = "KERBAL_CONFIG"
	// DateTimeFormat is the format of the dates in the scenario files, when not provided as JDE.
	DateTimeFormat = "2006-01-02 15:04:05"
)

// Scenario is a mission scenario as read from a TOML file.
type Scenario struct {
	Epoch    time.Time // Zero if unset.
	Body     Body
	From, To float64 // Heights of the initial and final orbits.
	Target   *Body   // Set for interplanetary transfers.
	Phase    float64 // Current phase angle of the target, in degrees.
	Isp, Dry float64
	Verbose  bool
}

// Interplanetary returns whether this scenario targets another body.
func (s Scenario) Interplanetary() bool {
	return s.Target != nil
}

// LoadScenario reads the scenario from the provided TOML file. If the path has
// no extension, the scenario is searched for in the working directory and in
// the directory set in $KERBAL_CONFIG.
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	if filepath.Ext(path) == "" {
		v.SetConfigName(path)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if confPath := os.Getenv(ConfigEnv); confPath != "" {
			v.AddConfigPath(confPath)
		}
	} else {
		v.SetConfigFile(path)
	}
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %s", path, err)
	}
	return scenarioFrom(v)
}

func scenarioFrom(v *viper.Viper) (s Scenario, err error) {
	if s.Epoch, err = confReadJDEorTime(v, "mission.epoch"); err != nil {
		return
	}
	bodyName := v.GetString("mission.body")
	if bodyName == "" {
		bodyName = Kerbin.Name
	}
	if s.Body, err = BodyFromString(bodyName); err != nil {
		return
	}
	if target := v.GetString("mission.target"); target != "" {
		tgt, terr := BodyFromString(target)
		if terr != nil {
			err = terr
			return
		}
		s.Target = &tgt
	}
	if !v.IsSet("mission.from") {
		err = errors.New("mission.from is required")
		return
	}
	s.From = v.GetFloat64("mission.from")
	if s.Target == nil && !v.IsSet("mission.to") {
		err = errors.New("mission.to is required without a target body")
		return
	}
	s.To = v.GetFloat64("mission.to")
	s.Phase = v.GetFloat64("mission.phase")
	s.Isp = v.GetFloat64("vehicle.isp")
	s.Dry = v.GetFloat64("vehicle.dry")
	s.Verbose = v.GetBool("general.verbose")
	return
}

// confReadJDEorTime reads a date either as a JDE, a TOML datetime or a formatted string.
func confReadJDEorTime(v *viper.Viper, key string) (dt time.Time, err error) {
	if !v.IsSet(key) {
		return
	}
	if native, ok := v.Get(key).(time.Time); ok {
		return native.UTC(), nil
	}
	if jde := v.GetFloat64(key); jde != 0 {
		return julian.JDToTime(jde), nil
	}
	dt, err = time.Parse(DateTimeFormat, v.GetString(key))
	if err != nil {
		err = fmt.Errorf("could not understand `%s`: %s", key, err)
	}
	return
}
