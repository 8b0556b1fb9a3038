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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher2600/hardware/television/signal"

	"github.com/jetsetilly/gym2600/test"
	"github.com/jetsetilly/gym2600/wavwriter"
)

func TestNoFilename(t *testing.T) {
	_, err := wavwriter.NewWavWriter("", 0)
	test.ExpectFailure(t, err)
}

func TestWrite(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.NewWavWriter(fn, 0)
	test.DemandSuccess(t, err)

	sig := make([]signal.AudioSignalAttributes, 1000)
	for i := range sig {
		sig[i].AudioChannel0 = uint8(i % 16)
		sig[i].AudioChannel1 = uint8((i / 16) % 16)
	}
	test.ExpectSuccess(t, aw.SetAudio(sig))
	test.ExpectSuccess(t, aw.SetAudio(sig[:500]))
	test.ExpectEquality(t, aw.Len(), 1500)

	test.DemandSuccess(t, aw.EndMixing())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(buf.Data), 1500)
	test.ExpectEquality(t, int(dec.SampleRate), wavwriter.DefaultSampleRate)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.ExpectEquality(t, int(dec.BitDepth), 16)
}

func TestReset(t *testing.T) {
	aw, err := wavwriter.NewWavWriter(filepath.Join(t.TempDir(), "test.wav"), 44100)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, aw.SetAudio(make([]signal.AudioSignalAttributes, 10)))
	aw.Reset()
	test.ExpectEquality(t, aw.Len(), 0)
}
