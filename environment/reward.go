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

package environment

// ScoreReward returns a RewardFunc that reads a binary-coded-decimal score
// from RAM. The addresses argument lists the RAM indexes of the score, most
// significant byte first. The reward is the change in score over the step.
//
// Most VCS games store the score in this way, although the location differs
// from game to game.
func ScoreReward(addresses ...int) RewardFunc {
	return func(prev []uint8, curr []uint8) float64 {
		return float64(bcdScore(curr, addresses) - bcdScore(prev, addresses))
	}
}

func bcdScore(ram []uint8, addresses []int) int {
	var score int
	for _, a := range addresses {
		if a < 0 || a >= len(ram) {
			continue
		}
		v := ram[a]
		score = score*100 + int(v>>4)*10 + int(v&0x0f)
	}
	return score
}
