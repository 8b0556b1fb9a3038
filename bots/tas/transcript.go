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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/environment"
)

// transcript file format
// ----------------------
//
// # comment lines start with a hash and are ignored, as are empty lines
// <action> [repeat]
//
// the action is an action name or a number. the optional repeat count is the
// number of consecutive steps the action is used for

const commentPrefix = "#"

// MaxRepeat is the largest repeat count accepted for a single entry. Longer
// runs of an action must be split over several lines.
const MaxRepeat = 100000

// Sentinal error patterns for transcript parsing.
const (
	UnknownAction = "tas: line %d: unknown action (%s)"
	BadRepeat     = "tas: line %d: bad repeat count (%s)"
	TooManyFields = "tas: line %d: too many fields"
)

// Entry is a single line of a transcript.
type Entry struct {
	Action environment.Action
	Repeat int

	// the line in the transcript file the entry appears. zero if the entry
	// was not parsed from a file
	Line int
}

func (e Entry) String() string {
	if e.Repeat == 1 {
		return e.Action.String()
	}
	return fmt.Sprintf("%s %d", e.Action, e.Repeat)
}

// Transcript is a sequence of actions to replay in an environment.
type Transcript struct {
	Entries []Entry
}

// NewTranscript creates a transcript containing each action once.
func NewTranscript(actions ...environment.Action) Transcript {
	var t Transcript
	for _, a := range actions {
		t.Entries = append(t.Entries, Entry{Action: a, Repeat: 1})
	}
	return t
}

// DefaultTranscript is the transcript used when no transcript file is
// specified. Contains the first six actions of the full action space.
func DefaultTranscript() Transcript {
	return NewTranscript(environment.Noop, environment.Fire, environment.Up,
		environment.Right, environment.Left, environment.Down)
}

// Len returns the number of steps in the transcript.
func (t Transcript) Len() int {
	var n int
	for _, e := range t.Entries {
		n += e.Repeat
	}
	return n
}

// Actions returns the sequence of actions with all repeats expanded.
func (t Transcript) Actions() []environment.Action {
	acts := make([]environment.Action, 0, t.Len())
	for _, e := range t.Entries {
		for range e.Repeat {
			acts = append(acts, e.Action)
		}
	}
	return acts
}

// Parse a transcript. Errors in the transcript contain the line number at
// which the error occurred.
func Parse(r io.Reader) (Transcript, error) {
	var t Transcript

	scanner := bufio.NewScanner(r)

	var line int
	for scanner.Scan() {
		line++

		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, commentPrefix) {
			continue // for loop
		}

		toks := strings.Fields(s)
		if len(toks) > 2 {
			return Transcript{}, curated.Errorf(TooManyFields, line)
		}

		a, err := environment.ParseAction(toks[0])
		if err != nil {
			return Transcript{}, curated.Errorf(UnknownAction, line, toks[0])
		}

		entry := Entry{Action: a, Repeat: 1, Line: line}

		if len(toks) == 2 {
			entry.Repeat, err = strconv.Atoi(toks[1])
			if err != nil || entry.Repeat < 1 || entry.Repeat > MaxRepeat {
				return Transcript{}, curated.Errorf(BadRepeat, line, toks[1])
			}
		}

		t.Entries = append(t.Entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return Transcript{}, curated.Errorf("tas: %v", err)
	}

	return t, nil
}

// Load a transcript from a file.
func Load(filename string) (Transcript, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Transcript{}, curated.Errorf("tas: %v", err)
	}
	defer f.Close()

	return Parse(f)
}
