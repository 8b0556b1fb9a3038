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

package bots_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jetsetilly/gym2600/bots"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/environment/machinetest"
	"github.com/jetsetilly/gym2600/random"
	"github.com/jetsetilly/gym2600/test"
)

// counter is a bot that repeats the FIRE action a fixed number of times
type counter struct {
	n   int
	err error
}

func (b *counter) BotID() string {
	return "counter"
}

func (b *counter) Next(_ *environment.Environment) (environment.Action, bool, error) {
	if b.err != nil {
		return environment.Noop, false, b.err
	}
	if b.n <= 0 {
		return environment.Noop, false, nil
	}
	b.n--
	return environment.Fire, true, nil
}

// waiter returns true a fixed number of times
type waiter struct {
	n     int
	calls int
}

func (w *waiter) Wait() (bool, error) {
	w.calls++
	w.n--
	return w.n >= 0, nil
}

// observer counts the number of observed steps
type observer struct {
	steps int
}

func (o *observer) Observe(_ environment.Action, _ environment.StepResult) error {
	o.steps++
	return nil
}

func newEnvironment(t *testing.T, m *machinetest.Machine, opts environment.Options) *environment.Environment {
	t.Helper()
	env, err := environment.NewEnvironment(m, random.NewNormalised(), opts)
	test.DemandSuccess(t, err)
	t.Cleanup(func() {
		_ = env.Close()
	})
	test.DemandSuccess(t, env.Reset())
	return env
}

func TestRunUntilBotEnds(t *testing.T) {
	m := machinetest.NewMachine()
	env := newEnvironment(t, m, environment.DefaultOptions())

	obs := &observer{}
	sum, err := bots.Run(context.Background(), env, &counter{n: 7}, bots.Options{Observer: obs})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Steps, 7)
	test.ExpectEquality(t, sum.Interrupted, false)
	test.ExpectEquality(t, obs.steps, 7)
	test.ExpectEquality(t, m.Frames, 28)
}

func TestRunRendersEveryStep(t *testing.T) {
	m := machinetest.NewMachine()
	env := newEnvironment(t, m, environment.DefaultOptions())

	r := &machinetest.Renderer{}
	env.AttachRenderer(r)

	sum, err := bots.Run(context.Background(), env, &counter{n: 5}, bots.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Steps, 5)
	test.ExpectEquality(t, r.Rendered, 5)

	// detaching the renderer does not stop the loop
	env.AttachRenderer(nil)
	sum, err = bots.Run(context.Background(), env, &counter{n: 3}, bots.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Steps, 3)
	test.ExpectEquality(t, r.Rendered, 5)
}

func TestRunStepLimit(t *testing.T) {
	m := machinetest.NewMachine()
	env := newEnvironment(t, m, environment.DefaultOptions())

	sum, err := bots.Run(context.Background(), env, &counter{n: 100}, bots.Options{Steps: 10})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Steps, 10)
}

func TestRunCancelled(t *testing.T) {
	m := machinetest.NewMachine()
	env := newEnvironment(t, m, environment.DefaultOptions())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sum, err := bots.Run(ctx, env, &counter{n: 100}, bots.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Steps, 0)
	test.ExpectEquality(t, sum.Interrupted, true)
}

func TestRunDelay(t *testing.T) {
	m := machinetest.NewMachine()
	env := newEnvironment(t, m, environment.DefaultOptions())

	start := time.Now()
	sum, err := bots.Run(context.Background(), env, &counter{n: 5}, bots.Options{Delay: 10 * time.Millisecond})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Steps, 5)
	test.ExpectSuccess(t, time.Since(start) >= 50*time.Millisecond)
}

func TestRunStepper(t *testing.T) {
	m := machinetest.NewMachine()
	env := newEnvironment(t, m, environment.DefaultOptions())

	w := &waiter{n: 3}
	sum, err := bots.Run(context.Background(), env, &counter{n: 100}, bots.Options{Stepper: w})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Steps, 4)
	test.ExpectEquality(t, sum.Interrupted, true)
	test.ExpectEquality(t, w.calls, 4)
}

func TestRunTermination(t *testing.T) {
	m := machinetest.NewMachine()
	opts := environment.DefaultOptions()
	opts.MaxFrames = 8
	env := newEnvironment(t, m, opts)

	sum, err := bots.Run(context.Background(), env, &counter{n: 100}, bots.Options{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Steps, 2)
	test.ExpectEquality(t, sum.Episodes, 1)

	test.DemandSuccess(t, env.Reset())
	sum, err = bots.Run(context.Background(), env, &counter{n: 10}, bots.Options{ResetOnTermination: true})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, sum.Steps, 10)
	test.ExpectEquality(t, sum.Episodes, 5)
}

func TestRunBotError(t *testing.T) {
	m := machinetest.NewMachine()
	env := newEnvironment(t, m, environment.DefaultOptions())

	botErr := errors.New("out of ideas")
	_, err := bots.Run(context.Background(), env, &counter{err: botErr}, bots.Options{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, botErr))
	test.ExpectEquality(t, err.Error(), "counter: out of ideas")
}
