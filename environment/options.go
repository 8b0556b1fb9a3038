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
	"image"

	"github.com/jetsetilly/gym2600/curated"
)

// RewardFunc computes the reward for a step from the RAM before and after the
// step.
type RewardFunc func(prev []uint8, curr []uint8) float64

// Options for the environment. The zero value is not useful, use
// DefaultOptions() and change fields as required.
type Options struct {
	// number of frames each call to Step() spans. the action is held for
	// all frames
	FrameSkip int

	// probability that the previous action is repeated instead of the
	// requested action
	RepeatActionProbability float64

	// number of NOOP frames run after a reset
	NoopReset int

	// the episode is terminated after this many frames. a value of zero
	// means that the episode is never terminated
	MaxFrames int

	// size of the observation image. the zero value means that the
	// observation is the same size as the rendered frame
	ObservationSize image.Point

	// the action space to use. if the action space is empty then the full
	// action space is used
	ActionSpace ActionSpace

	// reward function. if nil then the reward is always zero
	Reward RewardFunc
}

// DefaultOptions returns the default environment options. Frame skip and
// sticky action probability are the same as the ALE v5 environments.
func DefaultOptions() Options {
	return Options{
		FrameSkip:               4,
		RepeatActionProbability: 0.25,
		ActionSpace:             FullActionSpace(),
	}
}

// InvalidOption is returned by NewEnvironment() if an option is out of range.
const InvalidOption = "environment: invalid option: %s"

func (opts Options) validate() error {
	if opts.FrameSkip < 1 {
		return curated.Errorf(InvalidOption, "frame skip must be at least one")
	}
	if opts.RepeatActionProbability < 0.0 || opts.RepeatActionProbability > 1.0 {
		return curated.Errorf(InvalidOption, "repeat action probability must be between 0.0 and 1.0")
	}
	if opts.NoopReset < 0 {
		return curated.Errorf(InvalidOption, "noop reset must not be negative")
	}
	if opts.MaxFrames < 0 {
		return curated.Errorf(InvalidOption, "max frames must not be negative")
	}
	if opts.ObservationSize.X < 0 || opts.ObservationSize.Y < 0 {
		return curated.Errorf(InvalidOption, "observation size must not be negative")
	}
	return nil
}
