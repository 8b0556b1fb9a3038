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
	"github.com/jetsetilly/gopher2600/hardware/riot/ports"
	"github.com/jetsetilly/gopher2600/hardware/riot/ports/plugging"

	"github.com/jetsetilly/gym2600/environment"
)

// stick returns the data value for a stick event
func stick(b bool) ports.EventData {
	if b {
		return ports.DataStickTrue
	}
	return ports.DataStickFalse
}

// joystickEvents returns the input events required to move the joystick from
// the prev state to the next state. events are only created for the parts of
// the joystick that have changed
func joystickEvents(prev environment.Joystick, next environment.Joystick) []ports.InputEvent {
	var evs []ports.InputEvent

	if prev.Up != next.Up {
		evs = append(evs, ports.InputEvent{Port: plugging.PortLeft, Ev: ports.Up, D: stick(next.Up)})
	}
	if prev.Down != next.Down {
		evs = append(evs, ports.InputEvent{Port: plugging.PortLeft, Ev: ports.Down, D: stick(next.Down)})
	}
	if prev.Left != next.Left {
		evs = append(evs, ports.InputEvent{Port: plugging.PortLeft, Ev: ports.Left, D: stick(next.Left)})
	}
	if prev.Right != next.Right {
		evs = append(evs, ports.InputEvent{Port: plugging.PortLeft, Ev: ports.Right, D: stick(next.Right)})
	}
	if prev.Fire != next.Fire {
		evs = append(evs, ports.InputEvent{Port: plugging.PortLeft, Ev: ports.Fire, D: next.Fire})
	}

	return evs
}

// releaseAll is a joystick state that differs from the neutral joystick in
// every direction. it is used to force release events for every part of the
// joystick
var releaseAll = environment.Joystick{Up: true, Down: true, Left: true, Right: true, Fire: true}
