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

package random_test

import (
	"testing"

	"github.com/jetsetilly/gym2600/random"
	"github.com/jetsetilly/gym2600/test"
)

func TestNormalised(t *testing.T) {
	a := random.NewNormalised()
	b := random.NewNormalised()

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.IntN(i), b.IntN(i))
		test.ExpectEquality(t, a.Float64(), b.Float64())
	}
}

func TestSeeded(t *testing.T) {
	a := random.NewRandom(2600)
	b := random.NewRandom(2600)
	test.ExpectEquality(t, a.Seed(), int64(2600))

	for range 256 {
		test.ExpectEquality(t, a.Float64(), b.Float64())
	}

	// the normalised seed gives the same sequence as NewNormalised()
	d := random.NewRandom(random.NormalisedSeed)
	e := random.NewNormalised()
	test.ExpectEquality(t, d.Seed(), random.NormalisedSeed)
	test.ExpectEquality(t, e.Seed(), random.NormalisedSeed)
	for range 256 {
		test.ExpectEquality(t, d.Float64(), e.Float64())
	}

	// a zero seed is replaced by the time based seed
	c := random.NewRandom(0)
	test.ExpectInequality(t, c.Seed(), int64(0))
}

func TestRange(t *testing.T) {
	rnd := random.NewNormalised()
	for range 1000 {
		f := rnd.Float64()
		test.ExpectSuccess(t, f >= 0.0 && f < 1.0)
		n := rnd.IntN(18)
		test.ExpectSuccess(t, n >= 0 && n < 18)
	}
}
