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

// Package random should be used in preference to the math/rand package when
// a random number is required inside the gym. Both the fault injector and
// the action space sampler draw from an instance of the Random type.
//
// A Random instance created with NewRandom() and a non-zero seed, or with
// NewNormalised(), produces the same sequence of numbers every time. The
// seed value NormalisedSeed (-1) selects the normalised source from the
// command line or a scenario file. This
// makes a fuzzing or fault injection run repeatable when a problem is found.
package random
