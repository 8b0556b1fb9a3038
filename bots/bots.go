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


// Package bots is the root package for the bot subsystem. A bot chooses the
// actions that drive an environment. The fuzz bot chooses actions at random
// and the tas bot replays a transcript of actions.
//
// The Run() function is the loop shared by all bots. Each iteration asks the
// bot for an action, steps the environment, renders the frame and
// then pauses for the configured delay.
package bots

import (
	"context"
	"time"

	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/logger"
)

// Bot defines the functions the all bots must implement.
type Bot interface {
	BotID() string

	// Next returns the next action to apply to the environment. A false
	// return value indicates that the bot has no more actions.
	Next(env *environment.Environment) (environment.Action, bool, error)
}

// Waiter is implemented by types that can pause the loop between steps. The
// stepper package provides a suitable implementation. A false return value
// indicates that the loop should end.
type Waiter interface {
	Wait() (bool, error)
}

// Observer is implemented by types that want to see every step taken by the
// Run() function. The requested action may differ from the action in the
// StepResult because of sticky actions.
type Observer interface {
	Observe(requested environment.Action, res environment.StepResult) error
}

// Options for the Run() function.
type Options struct {
	// maximum number of steps. a value of zero means that the loop continues
	// until the bot has no more actions
	Steps int

	// pause after every step
	Delay time.Duration

	// wait for the Waiter after every step
	Stepper Waiter

	// notified of every step. may be nil
	Observer Observer

	// reset the environment when an episode terminates. if false then the
	// loop ends on termination
	ResetOnTermination bool
}

// Summary of a call to Run().
type Summary struct {
	Steps    int
	Episodes int
	Reward   float64

	// the loop was ended by the context or the Waiter before the bot had
	// finished
	Interrupted bool
}

// Run the bot in the environment. Ends when the bot has no more actions, the
// number of steps has been reached, the context is done or the Waiter
// returns false.
func Run(ctx context.Context, env *environment.Environment, bot Bot, opts Options) (Summary, error) {
	var sum Summary

	for opts.Steps == 0 || sum.Steps < opts.Steps {
		select {
		case <-ctx.Done():
			sum.Interrupted = true
			logger.Logf(logger.Allow, bot.BotID(), "interrupted after %d steps", sum.Steps)
			return sum, nil
		default:
		}

		action, ok, err := bot.Next(env)
		if err != nil {
			return sum, curated.Errorf("%s: %v", bot.BotID(), err)
		}
		if !ok {
			break // for loop
		}

		res, err := env.Step(action)
		if err != nil {
			return sum, curated.Errorf("%s: %v", bot.BotID(), err)
		}
		sum.Steps++
		sum.Reward += res.Reward

		if opts.Observer != nil {
			if err := opts.Observer.Observe(action, res); err != nil {
				return sum, curated.Errorf("%s: %v", bot.BotID(), err)
			}
		}

		// rendering without an attached renderer only returns the frame
		if _, err := env.Render(); err != nil {
			return sum, curated.Errorf("%s: %v", bot.BotID(), err)
		}

		if res.Terminated {
			sum.Episodes++
			if !opts.ResetOnTermination {
				break // for loop
			}
			if err := env.Reset(); err != nil {
				return sum, curated.Errorf("%s: %v", bot.BotID(), err)
			}
		}

		if opts.Stepper != nil {
			ok, err := opts.Stepper.Wait()
			if err != nil {
				return sum, curated.Errorf("%s: %v", bot.BotID(), err)
			}
			if !ok {
				sum.Interrupted = true
				break // for loop
			}
		}

		if opts.Delay > 0 {
			delay := time.NewTimer(opts.Delay)
			select {
			case <-delay.C:
			case <-ctx.Done():
				delay.Stop()
			}
		}
	}

	return sum, nil
}
