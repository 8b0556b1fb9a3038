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


// Package fuzz is a bot that chooses actions at random from the action space
// of the environment. The random source of the environment is used so that a
// fuzzing session can be repeated by using the same seed.
package fuzz

import (
	"context"

	"github.com/jetsetilly/gym2600/bots"
	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/logger"
)

// ID of the fuzz bot. Used as the logging tag.
const ID = "fuzz"

// Fuzz implements the bots.Bot interface.
type Fuzz struct{}

// NewFuzz is the preferred method of initialisation for the Fuzz type.
func NewFuzz() *Fuzz {
	return &Fuzz{}
}

// BotID implements the bots.Bot interface.
func (f *Fuzz) BotID() string {
	return ID
}

// Next implements the bots.Bot interface. The fuzz bot never runs out of
// actions.
func (f *Fuzz) Next(env *environment.Environment) (environment.Action, bool, error) {
	return env.ActionSpace().Sample(env.Random), true, nil
}

// Inputs resets the environment and steps it with random actions for the
// specified number of steps. The environment is reset whenever an episode
// terminates.
func Inputs(ctx context.Context, env *environment.Environment, steps int, opts bots.Options) (bots.Summary, error) {
	if err := env.Reset(); err != nil {
		return bots.Summary{}, curated.Errorf("fuzz: %v", err)
	}

	if steps <= 0 {
		logger.Logf(logger.Allow, ID, "fuzzed inputs for 0 steps")
		return bots.Summary{}, nil
	}

	opts.Steps = steps
	opts.ResetOnTermination = true

	sum, err := bots.Run(ctx, env, NewFuzz(), opts)
	if err != nil {
		return sum, err
	}

	logger.Logf(logger.Allow, ID, "fuzzed inputs for %d steps", sum.Steps)

	return sum, nil
}
