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

	"golang.org/x/image/draw"

	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/logger"
	"github.com/jetsetilly/gym2600/random"
)

// StepResult is returned by Environment.Step().
type StepResult struct {
	// the observation after the step. the image is owned by the
	// environment and will change on the next step
	Observation *image.RGBA

	// reward for the step as computed by the RewardFunc in Options
	Reward float64

	// the episode has ended and the environment should be reset
	Terminated bool

	// the action that was applied. because of sticky actions this may be
	// different to the action requested
	Action Action

	// frame number of the emulation at the end of the step
	Frame int
}

// List of sentinal error patterns returned by the Environment.
const (
	Closed            = "environment: environment is closed"
	ActionNotInSpace  = "environment: action %s is not in the action space"
	EpisodeTerminated = "environment: episode has terminated, reset required"
)

// Environment wraps a Machine and presents it as a reinforcement learning
// environment.
type Environment struct {
	machine Machine
	opts    Options

	// any randomisation required by the environment should be retrieved
	// through this field. bots can share it so that a run is repeatable from
	// a single seed
	Random *random.Random

	renderer Renderer

	// the action applied in the most recent frame
	lastAction Action

	// copy of RAM before the most recent step. used for the reward function
	prevRAM []uint8

	// number of frames since reset
	frames int

	terminated bool
	closed     bool

	// scaled observation image. nil if ObservationSize is zero
	obs *image.RGBA
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If rnd is nil then a new random.Random instance with a
// time based seed is created.
//
// The environment is not reset by NewEnvironment(). Call Reset() before the
// first Step().
func NewEnvironment(machine Machine, rnd *random.Random, opts Options) (*Environment, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if opts.ActionSpace.N() == 0 {
		opts.ActionSpace = FullActionSpace()
	}

	if rnd == nil {
		rnd = random.NewRandom(0)
	}

	env := &Environment{
		machine: machine,
		opts:    opts,
		Random:  rnd,
	}

	if opts.ObservationSize.X > 0 && opts.ObservationSize.Y > 0 {
		env.obs = image.NewRGBA(image.Rectangle{Max: opts.ObservationSize})
	}

	return env, nil
}

// AttachRenderer adds a Renderer to the environment. The Renderer is used on
// every call to Render(). A nil value detaches any existing renderer.
func (env *Environment) AttachRenderer(r Renderer) {
	env.renderer = r
}

// ActionSpace returns the action space of the environment.
func (env *Environment) ActionSpace() ActionSpace {
	return env.opts.ActionSpace
}

// RAM returns the live RAM of the emulated console. Changes to the slice are
// changes to the emulation.
func (env *Environment) RAM() []uint8 {
	return env.machine.RAM()
}

// Frames returns the number of frames emulated since the last reset.
func (env *Environment) Frames() int {
	return env.frames
}

// Reset the environment to the start of a new episode.
func (env *Environment) Reset() error {
	if env.closed {
		return curated.Errorf(Closed)
	}

	if err := env.machine.Reset(); err != nil {
		return curated.Errorf("environment: %v", err)
	}

	env.lastAction = Noop
	env.frames = 0
	env.terminated = false

	if err := env.machine.SetJoystick(Joystick{}); err != nil {
		return curated.Errorf("environment: %v", err)
	}

	for range env.opts.NoopReset {
		if err := env.machine.RunFrame(); err != nil {
			return curated.Errorf("environment: %v", err)
		}
	}

	env.prevRAM = append(env.prevRAM[:0], env.machine.RAM()...)

	logger.Logf(logger.Allow, "environment", "reset (frame %d)", env.machine.FrameNum())

	return nil
}

// Step the environment with the action. The action is held for the number of
// frames specified by the FrameSkip option. With the probability given by the
// RepeatActionProbability option, the previous action is used instead.
func (env *Environment) Step(action Action) (StepResult, error) {
	if env.closed {
		return StepResult{}, curated.Errorf(Closed)
	}

	if !env.opts.ActionSpace.Contains(action) {
		return StepResult{}, curated.Errorf(ActionNotInSpace, action)
	}

	if env.terminated {
		return StepResult{}, curated.Errorf(EpisodeTerminated)
	}

	var res StepResult

	for range env.opts.FrameSkip {
		// sticky actions are decided on every frame, in the same way as
		// the ALE
		if env.opts.RepeatActionProbability == 0.0 || env.Random.Float64() >= env.opts.RepeatActionProbability {
			env.lastAction = action
		}

		if err := env.machine.SetJoystick(env.lastAction.Joystick()); err != nil {
			return StepResult{}, curated.Errorf("environment: %v", err)
		}

		if err := env.machine.RunFrame(); err != nil {
			return StepResult{}, curated.Errorf("environment: %v", err)
		}

		env.frames++
		if env.opts.MaxFrames > 0 && env.frames >= env.opts.MaxFrames {
			env.terminated = true
			break // for loop
		}
	}

	ram := env.machine.RAM()
	if env.opts.Reward != nil {
		res.Reward = env.opts.Reward(env.prevRAM, ram)
	}
	env.prevRAM = append(env.prevRAM[:0], ram...)

	res.Observation = env.Observation()
	res.Terminated = env.terminated
	res.Action = env.lastAction
	res.Frame = env.machine.FrameNum()

	return res, nil
}

// Observation returns the current observation. If the ObservationSize option
// has been set then the frame is rescaled to that size.
func (env *Environment) Observation() *image.RGBA {
	frame := env.machine.Frame()
	if env.obs == nil || frame == nil {
		return frame
	}
	draw.ApproxBiLinear.Scale(env.obs, env.obs.Bounds(), frame, frame.Bounds(), draw.Src, nil)
	return env.obs
}

// Render returns the most recent frame, at its native size. The frame is also
// sent to the attached Renderer if there is one.
func (env *Environment) Render() (*image.RGBA, error) {
	if env.closed {
		return nil, curated.Errorf(Closed)
	}

	frame := env.machine.Frame()
	if env.renderer != nil && frame != nil {
		if err := env.renderer.Render(frame); err != nil {
			return frame, curated.Errorf("environment: %v", err)
		}
	}

	return frame, nil
}

// Close the environment, ending the emulation and any attached renderer. It
// is safe to call Close() more than once.
func (env *Environment) Close() error {
	if env.closed {
		return nil
	}
	env.closed = true

	var rerr error

	if env.renderer != nil {
		if err := env.renderer.EndRendering(); err != nil {
			rerr = curated.Errorf("environment: %v", err)
		}
		env.renderer = nil
	}

	if err := env.machine.End(); err != nil && rerr == nil {
		rerr = curated.Errorf("environment: %v", err)
	}

	return rerr
}
