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

import "math"

// Source of random numbers used to decide whether a bit is flipped. The
// random.Random type satisfies this interface.
type Source interface {
	// Float64 returns a number in the half-open interval [0.0,1.0)
	Float64() float64
}

// Clamp probability to the range [0.0, 1.0]. NaN is treated as zero.
func Clamp(probability float64) float64 {
	if math.IsNaN(probability) || probability < 0.0 {
		return 0.0
	}
	if probability > 1.0 {
		return 1.0
	}
	return probability
}

// FlipBits toggles each bit of every byte in mem with the given probability.
// The memory is changed in place.
func FlipBits(mem []uint8, probability float64, rnd Source) {
	_ = flipBits(mem, probability, rnd)
}

// flipBits is the implementation of FlipBits() but also returns the number of
// bits that were flipped.
func flipBits(mem []uint8, probability float64, rnd Source) int {
	probability = Clamp(probability)

	var n int
	for i := range mem {
		for b := range 8 {
			if rnd.Float64() < probability {
				mem[i] ^= 1 << b
				n++
			}
		}
	}
	return n
}
