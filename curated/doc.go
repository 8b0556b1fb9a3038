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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
//
// The pattern is retained and can be tested for with the Is() and Has()
// functions. Patterns intended for testing should be stored as named
// constants. For example, from the bots/tas package:
//
//	const UnknownAction = "tas: unknown action (%s) on line %d"
//
//	err := curated.Errorf(UnknownAction, tok, ln)
//	if curated.Is(err, UnknownAction) {
//		...
//	}
//
// Has() is similar but looks for the pattern anywhere in the chain of
// curated errors. Wrapping a curated error with another curated error is
// done by passing it as a placeholder value:
//
//	f := curated.Errorf("scenario: %v", err)
//	curated.Has(f, UnknownAction) == true
//	curated.Is(f, UnknownAction) == false
//
// Chains are thought of as parts separated by the sub-string ": ". The
// Error() function removes duplicate adjacent parts so that wrapping an error
// with the same prefix more than once does not result in a stuttering
// message. ie. "vcs: vcs: rom not found" becomes "vcs: rom not found".
package curated
