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

package environment

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gym2600/curated"
)

// Joystick is the state of a single VCS joystick.
type Joystick struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Fire  bool
}

// Action is one of the legal input actions. The numbering follows the
// Arcade Learning Environment so that action sequences can be shared.
type Action int

// List of valid Action values.
const (
	Noop Action = iota
	Fire
	Up
	Right
	Left
	Down
	UpRight
	UpLeft
	DownRight
	DownLeft
	UpFire
	RightFire
	LeftFire
	DownFire
	UpRightFire
	UpLeftFire
	DownRightFire
	DownLeftFire
	NumActions
)

var actionNames = [NumActions]string{
	"NOOP", "FIRE", "UP", "RIGHT", "LEFT", "DOWN",
	"UPRIGHT", "UPLEFT", "DOWNRIGHT", "DOWNLEFT",
	"UPFIRE", "RIGHTFIRE", "LEFTFIRE", "DOWNFIRE",
	"UPRIGHTFIRE", "UPLEFTFIRE", "DOWNRIGHTFIRE", "DOWNLEFTFIRE",
}

func (a Action) String() string {
	if a < 0 || a >= NumActions {
		return "INVALID"
	}
	return actionNames[a]
}

// Valid returns true if the action is one of the defined Action values.
func (a Action) Valid() bool {
	return a >= 0 && a < NumActions
}

// Joystick returns the joystick state for the action.
func (a Action) Joystick() Joystick {
	n := a.String()
	if n == "NOOP" || n == "INVALID" {
		return Joystick{}
	}
	return Joystick{
		Up:    strings.HasPrefix(n, "UP"),
		Down:  strings.HasPrefix(n, "DOWN"),
		Left:  strings.Contains(n, "LEFT"),
		Right: strings.Contains(n, "RIGHT"),
		Fire:  strings.HasSuffix(n, "FIRE"),
	}
}

// InvalidAction is returned when an action name or number is not recognised.
const InvalidAction = "environment: invalid action (%s)"

// ParseAction converts a string to an Action. The string can be the name of
// the action (case insensitive) or the action number.
func ParseAction(s string) (Action, error) {
	s = strings.ToUpper(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		a := Action(n)
		if !a.Valid() {
			return Noop, curated.Errorf(InvalidAction, s)
		}
		return a, nil
	}

	for i, n := range actionNames {
		if n == s {
			return Action(i), nil
		}
	}

	return Noop, curated.Errorf(InvalidAction, s)
}

// Sampler is the source of random numbers used by ActionSpace.Sample(). The
// random.Random type satisfies the interface.
type Sampler interface {
	IntN(n int) int
}

// ActionSpace is the set of legal actions for an environment.
type ActionSpace struct {
	actions []Action
}

// FullActionSpace returns an ActionSpace containing all eighteen actions.
func FullActionSpace() ActionSpace {
	as := ActionSpace{actions: make([]Action, NumActions)}
	for i := range as.actions {
		as.actions[i] = Action(i)
	}
	return as
}

// EmptyActionSpace is returned by NewActionSpace() if no actions are supplied.
const EmptyActionSpace = "environment: action space must contain at least one action"

// NewActionSpace creates an ActionSpace with a subset of actions. Duplicate
// actions are ignored. Useful for the minimal action set of a particular
// game.
func NewActionSpace(actions ...Action) (ActionSpace, error) {
	if len(actions) == 0 {
		return ActionSpace{}, curated.Errorf(EmptyActionSpace)
	}

	var as ActionSpace
	for _, a := range actions {
		if !a.Valid() {
			return ActionSpace{}, curated.Errorf(InvalidAction, strconv.Itoa(int(a)))
		}
		if !as.Contains(a) {
			as.actions = append(as.actions, a)
		}
	}

	return as, nil
}

// N returns the number of actions in the action space.
func (as ActionSpace) N() int {
	return len(as.actions)
}

// Actions returns a copy of the actions in the action space.
func (as ActionSpace) Actions() []Action {
	c := make([]Action, len(as.actions))
	copy(c, as.actions)
	return c
}

// Contains returns true if the action is in the action space.
func (as ActionSpace) Contains(a Action) bool {
	for _, b := range as.actions {
		if a == b {
			return true
		}
	}
	return false
}

// Sample returns an action chosen uniformly from the action space.
func (as ActionSpace) Sample(rnd Sampler) Action {
	return as.actions[rnd.IntN(len(as.actions))]
}

func (as ActionSpace) String() string {
	s := make([]string, len(as.actions))
	for i, a := range as.actions {
		s[i] = a.String()
	}
	return strings.Join(s, ", ")
}
