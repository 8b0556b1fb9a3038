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

package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gym2600/test"
)

func TestEchoTimestamp(t *testing.T) {
	log := NewLogger(10)
	log.now = func() time.Time {
		return time.Date(2024, time.March, 1, 12, 30, 15, 250000000, time.UTC)
	}

	w := &strings.Builder{}
	log.SetEcho(w, false)
	log.Log(Allow, "noise", "applied thermodynamic effects with temperature: 300K")
	test.ExpectEquality(t, w.String(), "2024-03-01 12:30:15.250 - noise: applied thermodynamic effects with temperature: 300K\n")

	// existing entries are written when writeRecent is true
	w2 := &strings.Builder{}
	log.SetEcho(w2, true)
	test.ExpectEquality(t, w2.String(), w.String())

	// nil stops echoing
	log.SetEcho(nil, false)
	log.Log(Allow, "noise", "another")
	test.ExpectEquality(t, w2.String(), w.String())
}
