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

package environment_test

import (
	"testing"

	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/random"
	"github.com/jetsetilly/gym2600/test"
)

func TestActionNames(t *testing.T) {
	for a := environment.Noop; a < environment.NumActions; a++ {
		p, err := environment.ParseAction(a.String())
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, p, a)
	}

	p, err := environment.ParseAction(" upRightFire ")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, environment.UpRightFire)

	p, err = environment.ParseAction("3")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, environment.Right)

	_, err = environment.ParseAction("18")
	test.ExpectSuccess(t, curated.Is(err, environment.InvalidAction))

	_, err = environment.ParseAction("JUMP")
	test.ExpectSuccess(t, curated.Is(err, environment.InvalidAction))

	test.ExpectEquality(t, environment.Action(-1).String(), "INVALID")
}

func TestJoystick(t *testing.T) {
	test.ExpectEquality(t, environment.Noop.Joystick(), environment.Joystick{})
	test.ExpectEquality(t, environment.Fire.Joystick(), environment.Joystick{Fire: true})
	test.ExpectEquality(t, environment.UpRight.Joystick(), environment.Joystick{Up: true, Right: true})
	test.ExpectEquality(t, environment.DownLeftFire.Joystick(), environment.Joystick{Down: true, Left: true, Fire: true})
	test.ExpectEquality(t, environment.LeftFire.Joystick(), environment.Joystick{Left: true, Fire: true})
	test.ExpectEquality(t, environment.Down.Joystick(), environment.Joystick{Down: true})
}

func TestActionSpace(t *testing.T) {
	as := environment.FullActionSpace()
	test.ExpectEquality(t, as.N(), 18)

	rnd := random.NewNormalised()
	seen := make(map[environment.Action]bool)
	for range 2000 {
		a := as.Sample(rnd)
		test.ExpectSuccess(t, a.Valid())
		seen[a] = true
	}
	test.ExpectEquality(t, len(seen), 18)

	_, err := environment.NewActionSpace()
	test.ExpectSuccess(t, curated.Is(err, environment.EmptyActionSpace))

	_, err = environment.NewActionSpace(environment.Action(30))
	test.ExpectSuccess(t, curated.Is(err, environment.InvalidAction))

	as, err = environment.NewActionSpace(environment.Noop, environment.Fire, environment.Noop)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, as.N(), 2)
	test.ExpectEquality(t, as.String(), "NOOP, FIRE")
	for range 100 {
		a := as.Sample(rnd)
		test.ExpectSuccess(t, a == environment.Noop || a == environment.Fire)
	}
}
