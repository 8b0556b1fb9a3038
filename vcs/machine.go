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
	"image"

	"github.com/jetsetilly/gopher2600/cartridgeloader"
	gopherenv "github.com/jetsetilly/gopher2600/environment"
	"github.com/jetsetilly/gopher2600/hardware"
	"github.com/jetsetilly/gopher2600/hardware/television"
	"github.com/jetsetilly/gopher2600/properties"
	"github.com/jetsetilly/gopher2600/setup"

	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/logger"
)

// Options for the creation of a new Machine.
type Options struct {
	// the television specification. one of AUTO, NTSC, PAL, PAL60 or
	// PAL-M. an empty string is the same as AUTO
	Spec string

	// cartridge mapping. an empty string is the same as AUTO
	Mapping string

	// optional audio mixer. attached to the television before the cartridge
	// is inserted
	Audio television.AudioMixer
}

// Machine implements the environment.Machine interface.
type Machine struct {
	tv       *television.Television
	vcs      *hardware.VCS
	cartload cartridgeloader.Loader
	obs      *observer

	joystick environment.Joystick
	ended    bool
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The cartridge in filename is attached to a newly created console.
func NewMachine(filename string, opts Options) (*Machine, error) {
	if opts.Spec == "" {
		opts.Spec = "AUTO"
	}
	if opts.Mapping == "" {
		opts.Mapping = "AUTO"
	}

	m := &Machine{
		obs: newObserver(),
	}

	var err error

	m.tv, err = television.NewTelevision(opts.Spec)
	if err != nil {
		return nil, curated.Errorf("vcs: %v", err)
	}

	// emulation runs as quickly as possible. any delay is the
	// responsibility of the caller
	m.tv.SetFPSCap(false)
	m.tv.AddPixelRenderer(m.obs)
	if opts.Audio != nil {
		m.tv.AddAudioMixer(opts.Audio)
	}

	m.vcs, err = hardware.NewVCS(gopherenv.MainEmulation, m.tv, nil, nil)
	if err != nil {
		m.tv.End()
		return nil, curated.Errorf("vcs: %v", err)
	}

	m.cartload, err = cartridgeloader.NewLoaderFromFilename(filename, opts.Mapping, "AUTO", properties.Properties{})
	if err != nil {
		m.tv.End()
		return nil, curated.Errorf("vcs: %v", err)
	}

	err = setup.AttachCartridge(m.vcs, m.cartload, nil)
	if err != nil {
		m.cartload.Close()
		m.tv.End()
		return nil, curated.Errorf("vcs: %v", err)
	}

	logger.Logf(logger.Allow, "vcs", "attached %s (%s)", m.cartload.Name, opts.Spec)

	return m, nil
}

const Ended = "vcs: machine has ended"

// Reset implements the environment.Machine interface.
func (m *Machine) Reset() error {
	if m.ended {
		return curated.Errorf(Ended)
	}

	if err := m.vcs.Reset(); err != nil {
		return curated.Errorf("vcs: %v", err)
	}

	// make sure the joystick is released after the reset
	m.joystick = releaseAll
	return m.SetJoystick(environment.Joystick{})
}

// SetJoystick implements the environment.Machine interface.
func (m *Machine) SetJoystick(js environment.Joystick) error {
	if m.ended {
		return curated.Errorf(Ended)
	}

	for _, ev := range joystickEvents(m.joystick, js) {
		if _, err := m.vcs.Input.HandleInputEvent(ev); err != nil {
			return curated.Errorf("vcs: %v", err)
		}
	}
	m.joystick = js

	return nil
}

// RunFrame implements the environment.Machine interface.
func (m *Machine) RunFrame() error {
	if m.ended {
		return curated.Errorf(Ended)
	}

	if err := m.vcs.RunForFrameCount(1, nil); err != nil {
		return curated.Errorf("vcs: %v", err)
	}

	return nil
}

// RAM implements the environment.Machine interface. The returned slice is the
// live memory of the console.
func (m *Machine) RAM() []uint8 {
	return m.vcs.Mem.RAM.RAM
}

// Frame implements the environment.Machine interface.
func (m *Machine) Frame() *image.RGBA {
	return m.obs.frame
}

// FrameNum implements the environment.Machine interface.
func (m *Machine) FrameNum() int {
	return m.vcs.TV.GetCoords().Frame
}

// Name of the attached cartridge.
func (m *Machine) Name() string {
	return m.cartload.Name
}

// End implements the environment.Machine interface.
func (m *Machine) End() error {
	if m.ended {
		return nil
	}
	m.ended = true

	m.cartload.Close()
	m.tv.End()

	logger.Logf(logger.Allow, "vcs", "ended after %d frames", m.FrameNum())

	return nil
}
