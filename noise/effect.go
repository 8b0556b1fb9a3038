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

package noise

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gym2600/curated"
)

// Effect is an environmental effect that can be modelled as bit flips.
type Effect int

// List of valid Effect values.
const (
	Thermodynamic Effect = iota
	Cosmodynamic
	Cold
	AmbientHeat
)

// Effects lists all valid Effect values in the order they are applied by a
// sweep.
var Effects = []Effect{Thermodynamic, Cold, AmbientHeat, Cosmodynamic}

func (e Effect) String() string {
	switch e {
	case Thermodynamic:
		return "thermodynamic"
	case Cosmodynamic:
		return "cosmodynamic"
	case Cold:
		return "cold"
	case AmbientHeat:
		return "ambient heat"
	}
	return "unknown effect"
}

// Parameter returns a description of the parameter that drives the effect
// and the unit it is measured in. The unit is the empty string for
// parameters with arbitrary units.
func (e Effect) Parameter() (string, string) {
	switch e {
	case Thermodynamic:
		return "temperature", "K"
	case Cosmodynamic:
		return "cosmic ray intensity", ""
	case Cold:
		return "cold level", "K"
	case AmbientHeat:
		return "heat level", "K"
	}
	return "parameter", ""
}

// Probability returns the bit flip probability for the effect with the given
// parameter value.
func (e Effect) Probability(param float64) float64 {
	switch e {
	case Thermodynamic:
		return ThermodynamicProbability(param)
	case Cosmodynamic:
		return CosmodynamicProbability(param)
	case Cold:
		return ColdProbability(param)
	case AmbientHeat:
		return AmbientHeatProbability(param)
	}
	return 0.0
}

// ThermodynamicProbability increases with temperature (in Kelvin). A
// temperature of 300K gives a probability of 0.01.
func ThermodynamicProbability(temperature float64) float64 {
	return min(0.01*(temperature/300), 1.0)
}

// CosmodynamicProbability increases with cosmic ray intensity (arbitrary
// units).
func CosmodynamicProbability(intensity float64) float64 {
	return min(0.01*intensity, 1.0)
}

// ColdProbability decreases as the cold level (in Kelvin) increases. It
// reaches zero at 300K and is not capped for negative cold levels.
func ColdProbability(coldLevel float64) float64 {
	return max(0.01*(1-coldLevel/300), 0.0)
}

// AmbientHeatProbability increases with the ambient heat level (in Kelvin).
func AmbientHeatProbability(heatLevel float64) float64 {
	return min(0.01*(heatLevel/300), 1.0)
}

// UnknownEffect is returned by ParseEffect() when the name is not recognised.
const UnknownEffect = "noise: unknown effect (%s)"

// ParseEffect converts an effect name to an Effect value. Comparison is case
// insensitive and spaces, hyphens and underscores are ignored, so "ambient
// heat", "ambient-heat" and "AMBIENT_HEAT" are all accepted. The short forms
// "thermal", "cosmic" and "heat" are also accepted.
func ParseEffect(name string) (Effect, error) {
	s := strings.ToLower(name)
	s = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)

	switch s {
	case "thermodynamic", "thermal":
		return Thermodynamic, nil
	case "cosmodynamic", "cosmic":
		return Cosmodynamic, nil
	case "cold":
		return Cold, nil
	case "ambientheat", "heat":
		return AmbientHeat, nil
	}

	return 0, curated.Errorf(UnknownEffect, name)
}

// Describe returns a human readable description of the effect applied with
// the parameter.
func (e Effect) Describe(param float64) string {
	name, unit := e.Parameter()
	return fmt.Sprintf("%s effects with %s: %v%s", e, name, param, unit)
}
