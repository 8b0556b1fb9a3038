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


// Package tas is a bot that replays a predetermined sequence of actions. The
// sequence is described by a Transcript, which can be parsed from a simple
// line based file format.
//
// The Recorder type writes transcripts in the same format. It can be used as
// a bots.Observer for any bot, allowing a fuzzing session to be saved and
// replayed.
package tas

import (
	"context"

	"github.com/jetsetilly/gym2600/bots"
	"github.com/jetsetilly/gym2600/curated"
	"github.com/jetsetilly/gym2600/environment"
	"github.com/jetsetilly/gym2600/logger"
)

// ID of the tas bot. Used as the logging tag.
const ID = "tas"

// TAS implements the bots.Bot interface.
type TAS struct {
	transcript Transcript

	// position in the transcript
	entry  int
	repeat int
}

// NewTAS is the preferred method of initialisation for the TAS type.
func NewTAS(transcript Transcript) *TAS {
	return &TAS{
		transcript: transcript,
	}
}

// BotID implements the bots.Bot interface.
func (tas *TAS) BotID() string {
	return ID
}

// Next implements the bots.Bot interface.
func (tas *TAS) Next(env *environment.Environment) (environment.Action, bool, error) {
	for tas.entry < len(tas.transcript.Entries) {
		e := tas.transcript.Entries[tas.entry]
		if tas.repeat < e.Repeat {
			tas.repeat++
			return e.Action, true, nil
		}
		tas.entry++
		tas.repeat = 0
	}
	return environment.Noop, false, nil
}

// Replay resets the environment and then steps it with every action in the
// transcript.
func Replay(ctx context.Context, env *environment.Environment, transcript Transcript, opts bots.Options) (bots.Summary, error) {
	if err := env.Reset(); err != nil {
		return bots.Summary{}, curated.Errorf("tas: %v", err)
	}

	opts.Steps = 0

	sum, err := bots.Run(ctx, env, NewTAS(transcript), opts)
	if err != nil {
		return sum, err
	}

	logger.Logf(logger.Allow, ID, "replayed %d of %d actions", sum.Steps, transcript.Len())

	return sum, nil
}
