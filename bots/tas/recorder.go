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

package tas

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/environment"
)

// Recorder implements the bots.Observer interface and writes the requested
// actions as a transcript. Consecutive identical actions are written as a
// single line with a repeat count.
type Recorder struct {
	output io.Writer
	header []string

	current Entry
	steps   int
	ended   bool

	headerWritten bool
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type. Each header string is written as a comment line at the top of the
// transcript.
func NewRecorder(output io.Writer, header ...string) *Recorder {
	return &Recorder{
		output: output,
		header: header,
	}
}

// Observe implements the bots.Observer interface.
func (rec *Recorder) Observe(requested environment.Action, _ environment.StepResult) error {
	if rec.ended {
		return curated.Errorf("tas: recorder has ended")
	}

	if err := rec.writeHeader(); err != nil {
		return err
	}
	rec.steps++

	if rec.current.Repeat > 0 && rec.current.Repeat < MaxRepeat && rec.current.Action == requested {
		rec.current.Repeat++
		return nil
	}

	if err := rec.flush(); err != nil {
		return err
	}
	rec.current = Entry{Action: requested, Repeat: 1}

	return nil
}

// writeHeader writes the header lines if they have not been written already
func (rec *Recorder) writeHeader() error {
	if rec.headerWritten {
		return nil
	}
	rec.headerWritten = true

	var b strings.Builder
	for _, h := range rec.header {
		fmt.Fprintf(&b, "%s %s\n", commentPrefix, h)
	}

	if _, err := io.WriteString(rec.output, b.String()); err != nil {
		return curated.Errorf("tas: %v", err)
	}

	return nil
}

func (rec *Recorder) flush() error {
	if rec.current.Repeat == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(rec.output, rec.current.String()); err != nil {
		return curated.Errorf("tas: %v", err)
	}
	rec.current = Entry{}

	return nil
}

// Steps returns the number of steps recorded.
func (rec *Recorder) Steps() int {
	return rec.steps
}

// End writes any outstanding entry. The header is written even if no steps
// were recorded. Further calls to Observe() will fail.
func (rec *Recorder) End() error {
	if rec.ended {
		return nil
	}
	rec.ended = true
	if err := rec.writeHeader(); err != nil {
		return err
	}
	return rec.flush()
}
