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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows a different set of flags for
// each mode.
//
// Arguments are first given to NewArgs() and are then parsed by one or more
// calls to Parse(). For example, a program with a RUN and a FUZZ mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "FUZZ")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "FUZZ":
//		md.NewMode()
//		steps := md.AddInt("steps", 1000, "number of steps")
//		_, _ = md.Parse()
//		fuzz(*steps, md.GetArg(0))
//	}
//
// The first sub-mode in the list is the default mode. The default mode is
// selected when the first argument after the flags does not name a mode.
// Comparison of sub-mode names is case insensitive.
//
// Help messages are produced automatically when the -help flag is found. The
// message lists the flags and the sub-modes available at that point.
package modalflag
