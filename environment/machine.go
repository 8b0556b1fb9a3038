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

// Package environment wraps an emulated VCS in the style of a reinforcement
// learning environment. The environment is reset, stepped one action at a
// time, and rendered. The emulated RAM is available for inspection and for
// mutation, which is how the noise package injects faults.
//
// The emulation itself is provided by an implementation of the Machine
// interface. The vcs package provides the implementation for the gopher2600
// emulator.
//
// An Environment should be closed when it is no longer required:
//
//	env, err := environment.NewEnvironment(machine, rnd, environment.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	defer env.Close()
package environment

import (
	"image"
)

// Machine defines the emulator functions required by the environment.
type Machine interface {
	// Reset the emulated console
	Reset() error

	// SetJoystick changes the state of the player zero joystick. The state
	// persists until the next call to SetJoystick()
	SetJoystick(Joystick) error

	// RunFrame runs the emulation until the start of the next frame
	RunFrame() error

	// RAM returns the live RAM of the console. Changes to the returned slice
	// change the state of the emulation
	RAM() []uint8

	// Frame returns the most recently completed frame. The image is owned by
	// the Machine and will change on the next call to RunFrame()
	Frame() *image.RGBA

	// FrameNum returns the current frame number of the emulation
	FrameNum() int

	// End the emulation and release resources
	End() error
}

// Renderer implementations display the rendered image.
type Renderer interface {
	Render(*image.RGBA) error

	// EndRendering is called when the environment is closed. The Renderer
	// should be considered unusable afterwards
	EndRendering() error
}
