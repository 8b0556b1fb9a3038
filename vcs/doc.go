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


// Package vcs connects the gym environment to the Gopher2600 emulator. The
// Machine type implements the environment.Machine interface and is the only
// part of Gym2600 that deals with the emulator directly.
//
// Video output is captured by attaching a PixelRenderer to the television.
// The captured image is cropped to the visible area of the screen before
// being handed to the environment. Joystick input is forwarded to the left
// player port as a series of input events. Only changes to the joystick are
// forwarded.
//
// An optional AudioMixer can be attached with the Options type, for example,
// to record the audio of a session with the wavwriter package.
package vcs
