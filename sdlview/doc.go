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


// Package sdlview is a simple window for displaying the frames rendered by a
// gym environment. The SdlView type implements the environment.Renderer
// interface.
//
// SDL requires that all calls are made from the main thread. The
// runtime.LockOSThread() function should be called in the init() function of
// the main package and the environment should be stepped from the main
// goroutine.
package sdlview
