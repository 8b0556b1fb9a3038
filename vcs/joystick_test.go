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

package vcs

import (
	"testing"

	"github.com/jetsetilly/gopher2600/hardware/riot/ports"
	"github.com/jetsetilly/gopher2600/hardware/riot/ports/plugging"

	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/test"
)

func TestJoystickEventsNoChange(t *testing.T) {
	js := environment.UpRightFire.Joystick()
	test.ExpectEquality(t, len(joystickEvents(js, js)), 0)
	test.ExpectEquality(t, len(joystickEvents(environment.Joystick{}, environment.Joystick{})), 0)
}

func TestJoystickEvents(t *testing.T) {
	evs := joystickEvents(environment.Joystick{}, environment.UpFire.Joystick())
	test.DemandEquality(t, len(evs), 2)

	test.ExpectEquality(t, evs[0].Port, plugging.PortLeft)
	test.ExpectEquality(t, evs[0].Ev, ports.Up)
	test.ExpectEquality(t, evs[0].D, ports.EventData(ports.DataStickTrue))

	test.ExpectEquality(t, evs[1].Port, plugging.PortLeft)
	test.ExpectEquality(t, evs[1].Ev, ports.Fire)
	test.ExpectEquality(t, evs[1].D, ports.EventData(true))

	// moving from up-fire to down releases up and fire and presses down
	evs = joystickEvents(environment.UpFire.Joystick(), environment.Down.Joystick())
	test.DemandEquality(t, len(evs), 3)
	test.ExpectEquality(t, evs[0].Ev, ports.Up)
	test.ExpectEquality(t, evs[0].D, ports.EventData(ports.DataStickFalse))
	test.ExpectEquality(t, evs[1].Ev, ports.Down)
	test.ExpectEquality(t, evs[1].D, ports.EventData(ports.DataStickTrue))
	test.ExpectEquality(t, evs[2].Ev, ports.Fire)
	test.ExpectEquality(t, evs[2].D, ports.EventData(false))
}

func TestReleaseAll(t *testing.T) {
	evs := joystickEvents(releaseAll, environment.Joystick{})
	test.DemandEquality(t, len(evs), 5)
	for _, ev := range evs {
		test.ExpectInequality(t, ev.D, ports.EventData(ports.DataStickTrue))
		test.ExpectInequality(t, ev.D, ports.EventData(true))
	}
}
