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

package test

import (
	"errors"
	"testing"
)

func TestID(t *testing.T) {
	ExpectEquality(t, id(), "")
	ExpectEquality(t, id("step", 10), "[step 10] ")
	ExpectEquality(t, id(errors.New("reset")), "[reset] ")
}

func TestSuccessValues(t *testing.T) {
	var err error
	ExpectSuccess(t, err)
	ExpectSuccess(t, nil)
	ExpectSuccess(t, true, "terminal")
	DemandSuccess(t, 1 < 2)

	ExpectFailure(t, false)
	ExpectFailure(t, errors.New("machine ended"))
}

func TestEquality(t *testing.T) {
	ExpectEquality(t, uint8(0xff), ^uint8(0))
	ExpectEquality(t, "NOOP", "NO"+"OP")
	DemandEquality(t, len([]int{1, 2, 3}), 3)

	ExpectInequality(t, 18, 17)
	ExpectInequality(t, "FIRE", "UP")
}

func TestApproximate(t *testing.T) {
	// sticky action rates are measured as fractions
	ExpectApproximate(t, 0.26, 0.25, 0.1)
	ExpectApproximate(t, 0.0105, 0.01, 0.1)

	// and frame counts as whole numbers
	ExpectApproximate(t, 98, 100, 0.05)
}
