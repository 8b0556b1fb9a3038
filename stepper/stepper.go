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


// Package stepper allows an environment to be advanced one step at a time
// with a key press. When reading from a terminal the terminal is put into
// cbreak mode so that a key press is registered without the need to press
// return.
//
// Pressing q (or closing the input) indicates that the session should end.
package stepper

import (
	"errors"
	"io"

	"github.com/pkg/term"

	"github.com/jetsetilly/gym2600/curated"
)

// Terminal is the device opened by NewStepper().
const Terminal = "/dev/tty"

// Stepper waits for key presses.
type Stepper struct {
	in io.Reader
	t  *term.Term
}

// NewStepper opens the terminal in cbreak mode.
func NewStepper() (*Stepper, error) {
	t, err := term.Open(Terminal, term.CBreakMode)
	if err != nil {
		return nil, curated.Errorf("stepper: %v", err)
	}
	return &Stepper{in: t, t: t}, nil
}

// NewStepperFromReader creates a Stepper that reads key presses from any
// io.Reader.
func NewStepperFromReader(r io.Reader) *Stepper {
	return &Stepper{in: r}
}

// Wait blocks until a key is pressed. Returns false if the quit key was
// pressed or if there is no more input.
func (s *Stepper) Wait() (bool, error) {
	b := make([]byte, 1)
	for {
		n, err := s.in.Read(b)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return false, curated.Errorf("stepper: %v", err)
		}
		if n == 0 {
			continue // for loop
		}

		switch b[0] {
		case 'q', 'Q':
			return false, nil
		}

		return true, nil
	}
}

// Close restores the terminal to the state it was in before NewStepper() was
// called.
func (s *Stepper) Close() error {
	if s.t == nil {
		return nil
	}

	err := s.t.Restore()
	if err != nil {
		s.t.Close()
		return curated.Errorf("stepper: %v", err)
	}

	if err := s.t.Close(); err != nil {
		return curated.Errorf("stepper: %v", err)
	}

	s.t = nil
	return nil
}
