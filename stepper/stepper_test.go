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

package stepper_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gym2600/stepper"
	"github.com/jetsetilly/gym2600/test"
)

func TestWait(t *testing.T) {
	s := stepper.NewStepperFromReader(strings.NewReader("  xq "))

	for range 3 {
		ok, err := s.Wait()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, ok, true)
	}

	ok, err := s.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, false)

	// closing a stepper that was not opened on a terminal does nothing
	test.ExpectSuccess(t, s.Close())
}

func TestEndOfInput(t *testing.T) {
	s := stepper.NewStepperFromReader(strings.NewReader("a"))

	ok, err := s.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, true)

	ok, err = s.Wait()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ok, false)
}

type badReader struct{}

func (badReader) Read(_ []byte) (int, error) {
	return 0, errors.New("device not ready")
}

func TestReadError(t *testing.T) {
	s := stepper.NewStepperFromReader(badReader{})

	ok, err := s.Wait()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, ok, false)
	test.ExpectEquality(t, err.Error(), "stepper: device not ready")
}
