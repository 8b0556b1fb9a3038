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

package random

import (
	"math/rand"
	"time"
)

var baseSeed int64

// NormalisedSeed is the seed value that asks NewRandom() for the normalised
// source. It is the value returned by Seed() for a normalised instance.
const NormalisedSeed int64 = -1

func init() {
	baseSeed = time.Now().UnixNano()
}

// Random is a source of random numbers. It is not safe for concurrent use.
type Random struct {
	rnd  *rand.Rand
	seed int64
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed value of zero means that the seed is taken from the time of program
// start. A seed of NormalisedSeed is the same as calling NewNormalised().
func NewRandom(seed int64) *Random {
	if seed == NormalisedSeed {
		return NewNormalised()
	}
	if seed == 0 {
		seed = baseSeed
	}
	return &Random{
		rnd:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// NewNormalised returns a Random instance with a fixed seed. Useful for
// regression testing where the random numbers must be the same on every run.
func NewNormalised() *Random {
	return &Random{
		rnd:  rand.New(rand.NewSource(0)),
		seed: NormalisedSeed,
	}
}

// Seed returns the seed used to initialise the instance. Logging the seed
// allows a run to be repeated with the same sequence of random numbers.
func (rnd *Random) Seed() int64 {
	return rnd.seed
}

// Float64 returns a random number in the half-open interval [0.0,1.0).
func (rnd *Random) Float64() float64 {
	return rnd.rnd.Float64()
}

// IntN returns a random number in the half-open interval [0,n). It panics
// if n <= 0.
func (rnd *Random) IntN(n int) int {
	return rnd.rnd.Intn(n)
}
