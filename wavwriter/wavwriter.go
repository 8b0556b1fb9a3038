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


// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety, and written to disk
// when the television ends. It is therefore only suitable for sessions of
// a reasonable length.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher2600/hardware/television/signal"
	tiaaudio "github.com/jetsetilly/gopher2600/hardware/tia/audio"
	"github.com/jetsetilly/gopher2600/hardware/tia/audio/mix"

	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/logger"
)

// DefaultSampleRate is the average sample rate of the VCS audio.
const DefaultSampleRate = tiaaudio.AverageSampleFreq

// WavWriter implements the television.AudioMixer interface.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type. A sample rate of zero will be replaced with the DefaultSampleRate.
func NewWavWriter(filename string, sampleRate int) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename specified")
	}
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0, sampleRate),
	}

	return aw, nil
}

// SetAudio implements the television.AudioMixer interface.
func (aw *WavWriter) SetAudio(sig []signal.AudioSignalAttributes) error {
	for _, s := range sig {
		aw.buffer = append(aw.buffer, int(mix.Mono(s.AudioChannel0, s.AudioChannel1)))
	}
	return nil
}

// Len returns the number of samples buffered so far.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// EndMixing implements the television.AudioMixer interface.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		SourceBitDepth: 16,
		Data:           aw.buffer,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "written %d samples to %s", len(aw.buffer), aw.filename)

	return nil
}

// Reset implements the television.AudioMixer interface.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
