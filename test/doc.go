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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report a failure with t.Fatalf() and
// should be used when the value being tested is required for the remainder
// of the test. For example, testing the length of two slices before
// iterating over them in unison.
//
// ExpectSuccess() and ExpectFailure() interpret their argument according to
// its type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The optional tags argument is printed at the start of any failure message
// and can be used to identify which iteration of a loop failed.
package test
