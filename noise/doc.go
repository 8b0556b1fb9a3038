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

// Package noise perturbs emulated memory to simulate environmental
// interference. Each bit of a memory buffer is toggled independently with a
// probability derived from an environmental parameter.
//
// Four effects are defined. The mapping from parameter to probability for
// each is:
//
//	Thermodynamic   0.01 * (temperature / 300)     capped at 1.0
//	Cosmodynamic    0.01 * intensity               capped at 1.0
//	Cold            0.01 * (1 - coldLevel / 300)   floored at 0.0
//	AmbientHeat     0.01 * (heatLevel / 300)       capped at 1.0
//
// The coefficients are illustrative and not a physical model.
//
// Effects compose by calling FlipBits() more than once. Flips accumulate so
// that two applications with probability p are not the same as one
// application with probability 2p.
package noise
