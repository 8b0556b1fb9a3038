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


// Package machinetest provides implementations of the environment.Machine and
// environment.Renderer interfaces for use in tests. The types record how they
// have been used so that tests can check the behaviour of the environment.
package machinetest

import (
	"image"
	"image/color"

	"github.com/jetsetilly/gym2600/environment"
)

// Machine implements the environment.Machine interface without any emulation.
type Machine struct {
	Memory []uint8
	Image  *image.RGBA
	Frames int

	// current joystick state and the joystick state for every frame since
	// the last reset
	Joystick environment.Joystick
	History  []environment.Joystick

	Resets int
	Ended  int

	// returned by RunFrame() if not nil
	RunErr error
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine() *Machine {
	return &Machine{
		Memory: make([]uint8, 128),
		Image:  image.NewRGBA(image.Rect(0, 0, 160, 210)),
	}
}

// Reset implements the environment.Machine interface.
func (m *Machine) Reset() error {
	m.Resets++
	for i := range m.Memory {
		m.Memory[i] = 0
	}
	m.History = m.History[:0]
	return nil
}

// SetJoystick implements the environment.Machine interface.
func (m *Machine) SetJoystick(js environment.Joystick) error {
	m.Joystick = js
	return nil
}

// RunFrame implements the environment.Machine interface.
func (m *Machine) RunFrame() error {
	if m.RunErr != nil {
		return m.RunErr
	}
	m.Frames++
	m.History = append(m.History, m.Joystick)
	m.Image.SetRGBA(0, 0, color.RGBA{R: uint8(m.Frames), A: 255})
	return nil
}

// RAM implements the environment.Machine interface.
func (m *Machine) RAM() []uint8 {
	return m.Memory
}

// Frame implements the environment.Machine interface.
func (m *Machine) Frame() *image.RGBA {
	return m.Image
}

// FrameNum implements the environment.Machine interface.
func (m *Machine) FrameNum() int {
	return m.Frames
}

// End implements the environment.Machine interface.
func (m *Machine) End() error {
	m.Ended++
	return nil
}

// Renderer implements the environment.Renderer interface.
type Renderer struct {
	Rendered int
	Ended    int
}

// Render implements the environment.Renderer interface.
func (r *Renderer) Render(_ *image.RGBA) error {
	r.Rendered++
	return nil
}

// EndRendering implements the environment.Renderer interface.
func (r *Renderer) EndRendering() error {
	r.Ended++
	return nil
}
