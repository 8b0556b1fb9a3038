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

package noise

import (
	"github.com/jetsetilly/gym2600/logger"
)

// Memory is implemented by types that expose a live memory buffer. The
// environment.Environment type satisfies this interface by returning the
// emulated RAM.
type Memory interface {
	RAM() []uint8
}

// Injector applies effects to memory, logging each application.
type Injector struct {
	rnd Source

	// total number of bits flipped by the injector
	flipped int
}

// NewInjector is the preferred method of initialisation for the Injector type.
func NewInjector(rnd Source) *Injector {
	return &Injector{
		rnd: rnd,
	}
}

// Apply the effect with the parameter value to the memory. Returns the number
// of bits flipped.
func (inj *Injector) Apply(mem Memory, e Effect, param float64) int {
	p := e.Probability(param)
	n := flipBits(mem.RAM(), p, inj.rnd)
	inj.flipped += n
	logger.Logf(logger.Allow, "noise", "applied %s (p=%g, %d bits flipped)", e.Describe(param), Clamp(p), n)
	return n
}

// Flipped returns the total number of bits flipped by the injector.
func (inj *Injector) Flipped() int {
	return inj.flipped
}
