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

package paths

import (
	"testing"
	"time"

	"github.com/jetsetilly/gym2600/test"
)

func TestUniqueFilename(t *testing.T) {
	now := time.Date(2024, time.March, 7, 9, 5, 2, 0, time.UTC)

	test.ExpectEquality(t, uniqueFilename("fuzz", "roms/Pitfall.bin", "txt", now), "fuzz_Pitfall_20240307_090502.txt")
	test.ExpectEquality(t, uniqueFilename("audio", "", ".wav", now), "audio_20240307_090502.wav")
	test.ExpectEquality(t, uniqueFilename("", "combat.a26", "", now), "combat_20240307_090502")
}

func TestResolve(t *testing.T) {
	test.ExpectEquality(t, Resolve("out.wav", "audio", "rom.bin", "wav"), "out.wav")
	test.ExpectEquality(t, Resolve("", "audio", "rom.bin", "wav"), "")
	test.ExpectInequality(t, Resolve("auto", "audio", "rom.bin", "wav"), "auto")
}
