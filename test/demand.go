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

package test

import "testing"

// the Demand functions stop the test immediately when the condition is not
// met. they should be used when the remainder of the test depends on the
// value, for example the length of a slice that is about to be indexed

// DemandEquality is the fatal version of ExpectEquality().
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sdemanded equality of type %T: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess is the fatal version of ExpectSuccess(). Errors are included
// in the failure message.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		return
	}
	if err, ok := v.(error); ok {
		t.Fatalf("%sdemanded success of type %T: %v", id(tags...), v, err)
	}
	t.Fatalf("%sdemanded success of type %T", id(tags...), v)
}
