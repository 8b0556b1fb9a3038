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

package scenario

import (
	"context"
	"time"

	"github.com/jetsetilly/gym2600/bots"
	"github.com/jetsetilly/gym2600/bots/fuzz"
	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/logger"
	"github.com/jetsetilly/gym2600/noise"
)

// Runner runs the sessions described by a Scenario in an environment.
type Runner struct {
	Env      *environment.Environment
	Injector *noise.Injector
	Scenario Scenario

	// the options used when stepping the environment. the Steps field is
	// ignored
	Bots bots.Options
}

// NewRunner is the preferred method of initialisation for the Runner type.
// The injector shares the random source of the environment.
func NewRunner(env *environment.Environment, sc Scenario, opts bots.Options) *Runner {
	if opts.Delay == 0 {
		opts.Delay = sc.Delay
	}
	return &Runner{
		Env:      env,
		Injector: noise.NewInjector(env.Random),
		Scenario: sc,
		Bots:     opts,
	}
}

// Apply each effect in turn to the RAM of the environment. Returns the number
// of bits flipped.
func (r *Runner) Apply(apps ...Application) int {
	var n int
	for _, a := range apps {
		n += r.Injector.Apply(r.Env, a.Effect, a.Param)
	}
	return n
}

// settle resets the environment and takes a single NOOP step and renders the
// result
func (r *Runner) settle(ctx context.Context) error {
	if err := r.Env.Reset(); err != nil {
		return err
	}

	if _, err := r.Env.Step(environment.Noop); err != nil {
		return err
	}

	if _, err := r.Env.Render(); err != nil {
		return err
	}

	sleep(ctx, r.Bots.Delay)

	return nil
}

// PhysicalWorld applies every effect in the effects list of the scenario and
// then checks that the environment is still functional by resetting it and
// taking a single step.
func (r *Runner) PhysicalWorld(ctx context.Context) error {
	apps, err := r.Scenario.Applications()
	if err != nil {
		return err
	}

	n := r.Apply(apps...)

	if err := r.settle(ctx); err != nil {
		return curated.Errorf("physical world: %v", err)
	}

	logger.Logf(logger.Allow, "sweep", "physical world check passed (%d effects, %d bits flipped)", len(apps), n)

	return nil
}

// SweepSummary is returned by the Sweep() function.
type SweepSummary struct {
	Combinations int
	Steps        int
	Flipped      int
	Interrupted  bool
}

// Sweep visits every combination of the values in the sweep section of the
// scenario. For each combination the four effects are applied in the order
// thermodynamic, cold, ambient heat, cosmodynamic. The environment is then
// fuzzed, reset and stepped once.
func (r *Runner) Sweep(ctx context.Context) (SweepSummary, error) {
	var sum SweepSummary

	sw := r.Scenario.Sweep
	total := sw.Combinations()

	logger.Logf(logger.Allow, "sweep", "starting sweep of %d combinations", total)

	for _, temp := range sw.Temperatures {
		for _, cold := range sw.ColdLevels {
			for _, heat := range sw.HeatLevels {
				for _, cosmic := range sw.CosmicIntensities {
					if ctx.Err() != nil {
						sum.Interrupted = true
						logger.Logf(logger.Allow, "sweep", "interrupted after %d of %d combinations", sum.Combinations, total)
						return sum, nil
					}

					logger.Logf(logger.Allow, "sweep", "temperature: %vK, cold level: %vK, heat level: %vK, cosmic ray intensity: %v",
						temp, cold, heat, cosmic)

					sum.Flipped += r.Apply(
						Application{Effect: noise.Thermodynamic, Param: temp},
						Application{Effect: noise.Cold, Param: cold},
						Application{Effect: noise.AmbientHeat, Param: heat},
						Application{Effect: noise.Cosmodynamic, Param: cosmic},
					)

					fs, err := fuzz.Inputs(ctx, r.Env, r.Scenario.FuzzSteps, r.Bots)
					sum.Steps += fs.Steps
					if err != nil {
						return sum, curated.Errorf("sweep: %v", err)
					}

					if err := r.settle(ctx); err != nil {
						return sum, curated.Errorf("sweep: %v", err)
					}

					sum.Combinations++
					logger.Logf(logger.Allow, "sweep", "completed combination %d of %d", sum.Combinations, total)
				}
			}
		}
	}

	return sum, nil
}

// sleep for the duration or until the context is done
func sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	select {
	case <-t.C:
	case <-ctx.Done():
		t.Stop()
	}
}
