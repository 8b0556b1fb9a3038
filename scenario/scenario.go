// This file is part of Gym2600.
//
// Gym2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gym2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gym2600.  If not, see <https://www.gnu.org/licenses/>.


// Package scenario describes a gym session with a YAML file. A scenario names
// the ROM, the environment options, the list of effects to apply and the
// values to visit during a sweep.
//
// An embedded default scenario provides every value not specified in a
// scenario file.
package scenario

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/noise"
)

//go:embed default.yaml
var defaultScenario []byte

// Effect is a single effect and the parameter value to use with it.
type Effect struct {
	Effect string  `yaml:"effect"`
	Param  float64 `yaml:"param"`
}

// Sweep lists the values to visit for each effect.
type Sweep struct {
	Temperatures      []float64 `yaml:"temperatures"`
	ColdLevels        []float64 `yaml:"cold_levels"`
	HeatLevels        []float64 `yaml:"heat_levels"`
	CosmicIntensities []float64 `yaml:"cosmic_intensities"`
}

// Combinations returns the number of combinations visited by the sweep.
func (sw Sweep) Combinations() int {
	return len(sw.Temperatures) * len(sw.ColdLevels) * len(sw.HeatLevels) * len(sw.CosmicIntensities)
}

// Scenario is the description of a gym session.
type Scenario struct {
	ROM        string        `yaml:"rom"`
	Transcript string        `yaml:"transcript"`
	Seed       int64         `yaml:"seed"`
	Delay      time.Duration `yaml:"delay"`
	FuzzSteps  int           `yaml:"fuzz_steps"`
	FrameSkip  int           `yaml:"frameskip"`
	Sticky     float64       `yaml:"sticky"`
	TV         string        `yaml:"tv"`
	Effects    []Effect      `yaml:"effects"`
	Sweep      Sweep         `yaml:"sweep"`

	// environment options beyond frame skip and sticky actions. the zero
	// value of each leaves the environment default in place
	NoopReset   int      `yaml:"noop_reset"`
	MaxFrames   int      `yaml:"max_frames"`
	Observation []int    `yaml:"observation"`
	Actions     []string `yaml:"actions"`
	Score       []int    `yaml:"score"`
}

// Sentinal error patterns.
const (
	InvalidScenario = "scenario: %v"
)

// Default returns the embedded default scenario.
func Default() (Scenario, error) {
	var sc Scenario
	if err := decode(defaultScenario, &sc); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// Parse a scenario. Any value not specified in data is taken from the default
// scenario.
func Parse(data []byte) (Scenario, error) {
	sc, err := Default()
	if err != nil {
		return Scenario{}, err
	}

	if err := decode(data, &sc); err != nil {
		return Scenario{}, err
	}

	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}

	return sc, nil
}

// Load a scenario from a file.
func Load(filename string) (Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Scenario{}, curated.Errorf("scenario: %v", err)
	}
	return Parse(data)
}

func decode(data []byte, sc *Scenario) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	// an empty document is not an error. the scenario is unchanged
	if err := dec.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return curated.Errorf(InvalidScenario, err)
	}

	return nil
}

// Validate checks that every value in the scenario is usable. Scenarios
// returned by Parse() and Load() have already been validated but a scenario
// changed afterwards, by command line flags for example, should be checked
// again.
func (sc Scenario) Validate() error {
	if sc.FuzzSteps < 0 {
		return curated.Errorf(InvalidScenario, "fuzz_steps must not be negative")
	}
	if sc.FrameSkip < 1 {
		return curated.Errorf(InvalidScenario, "frameskip must be at least one")
	}
	if sc.Sticky < 0.0 || sc.Sticky > 1.0 {
		return curated.Errorf(InvalidScenario, "sticky must be between 0.0 and 1.0")
	}
	if sc.Delay < 0 {
		return curated.Errorf(InvalidScenario, "delay must not be negative")
	}
	if sc.NoopReset < 0 {
		return curated.Errorf(InvalidScenario, "noop_reset must not be negative")
	}
	if sc.MaxFrames < 0 {
		return curated.Errorf(InvalidScenario, "max_frames must not be negative")
	}
	if _, err := sc.Applications(); err != nil {
		return err
	}
	if _, err := sc.Options(); err != nil {
		return err
	}
	return nil
}

// the VCS has 128 bytes of RAM mapped from address 0x80
const (
	ramOrigin = 0x80
	ramSize   = 128
)

// ramIndex converts a score address to an index into the RAM slice. Both the
// index and the VCS address are accepted
func ramIndex(a int) (int, error) {
	switch {
	case a >= 0 && a < ramSize:
		return a, nil
	case a >= ramOrigin && a < ramOrigin+ramSize:
		return a - ramOrigin, nil
	}
	return 0, curated.Errorf(InvalidScenario, fmt.Sprintf("score address %#02x is not in RAM", a))
}

// Options returns the environment options described by the scenario.
func (sc Scenario) Options() (environment.Options, error) {
	opts := environment.DefaultOptions()
	opts.FrameSkip = sc.FrameSkip
	opts.RepeatActionProbability = sc.Sticky
	opts.NoopReset = sc.NoopReset
	opts.MaxFrames = sc.MaxFrames

	switch len(sc.Observation) {
	case 0:
	case 2:
		if sc.Observation[0] < 1 || sc.Observation[1] < 1 {
			return environment.Options{}, curated.Errorf(InvalidScenario, "observation size must be positive")
		}
		opts.ObservationSize = image.Pt(sc.Observation[0], sc.Observation[1])
	default:
		return environment.Options{}, curated.Errorf(InvalidScenario, "observation must be [width, height]")
	}

	if len(sc.Actions) > 0 {
		acts := make([]environment.Action, 0, len(sc.Actions))
		for _, s := range sc.Actions {
			a, err := environment.ParseAction(s)
			if err != nil {
				return environment.Options{}, curated.Errorf(InvalidScenario, err)
			}
			acts = append(acts, a)
		}

		var err error
		opts.ActionSpace, err = environment.NewActionSpace(acts...)
		if err != nil {
			return environment.Options{}, curated.Errorf(InvalidScenario, err)
		}
	}

	if len(sc.Score) > 0 {
		idx := make([]int, 0, len(sc.Score))
		for _, a := range sc.Score {
			i, err := ramIndex(a)
			if err != nil {
				return environment.Options{}, err
			}
			idx = append(idx, i)
		}
		opts.Reward = environment.ScoreReward(idx...)
	}

	return opts, nil
}

// ParseSize parses a size of the form WIDTHxHEIGHT, as used on the command
// line, into the form used by the observation field.
func ParseSize(s string) ([]int, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return nil, curated.Errorf(InvalidScenario, fmt.Sprintf("size must be WIDTHxHEIGHT (%s)", s))
	}

	var sz [2]int
	for i, v := range []string{w, h} {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, curated.Errorf(InvalidScenario, fmt.Sprintf("size must be WIDTHxHEIGHT (%s)", s))
		}
		sz[i] = n
	}

	return sz[:], nil
}

// ParseList splits a comma separated list. Empty items are ignored.
func ParseList(s string) []string {
	var l []string
	for _, v := range strings.Split(s, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			l = append(l, v)
		}
	}
	return l
}

// ParseAddresses parses a comma separated list of score addresses. Addresses
// may be written in decimal or in hexadecimal with the 0x prefix.
func ParseAddresses(s string) ([]int, error) {
	var l []int
	for _, v := range ParseList(s) {
		n, err := strconv.ParseInt(v, 0, 32)
		if err != nil {
			return nil, curated.Errorf(InvalidScenario, fmt.Sprintf("bad score address (%s)", v))
		}
		l = append(l, int(n))
	}
	return l, nil
}

// Application is an effect ready to be applied by a noise.Injector.
type Application struct {
	Effect noise.Effect
	Param  float64
}

// Applications returns the effects list of the scenario with each effect name
// parsed.
func (sc Scenario) Applications() ([]Application, error) {
	apps := make([]Application, 0, len(sc.Effects))
	for _, e := range sc.Effects {
		eff, err := noise.ParseEffect(e.Effect)
		if err != nil {
			return nil, curated.Errorf(InvalidScenario, err)
		}
		apps = append(apps, Application{Effect: eff, Param: e.Param})
	}
	return apps, nil
}
