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


// Package paths helps name the files written by Gym2600.
package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Auto is the special filename value that asks for a generated filename.
const Auto = "AUTO"

// UniqueFilename creates a filename that (assuming a functioning clock)
// should not collide with any existing file. The filename is made up of the
// prepend string, the base name of the ROM (without extension), a timestamp
// and the extension.
//
// Format of returned string:
//
//	prepend_rom_YYYYMMDD_HHMMSS.ext
func UniqueFilename(prepend string, rom string, ext string) string {
	return uniqueFilename(prepend, rom, ext, time.Now())
}

func uniqueFilename(prepend string, rom string, ext string, now time.Time) string {
	var s strings.Builder

	if prepend != "" {
		s.WriteString(prepend)
		s.WriteString("_")
	}

	rom = filepath.Base(rom)
	rom = strings.TrimSuffix(rom, filepath.Ext(rom))
	if rom != "" && rom != "." {
		s.WriteString(rom)
		s.WriteString("_")
	}

	s.WriteString(fmt.Sprintf("%04d%02d%02d_%02d%02d%02d",
		now.Year(), now.Month(), now.Day(), now.Hour(), now.Minute(), now.Second()))

	if ext != "" {
		s.WriteString(".")
		s.WriteString(strings.TrimPrefix(ext, "."))
	}

	return s.String()
}

// Resolve returns filename unchanged unless it is Auto, in which case a
// unique filename is generated.
func Resolve(filename string, prepend string, rom string, ext string) string {
	if strings.ToUpper(filename) != Auto {
		return filename
	}
	return UniqueFilename(prepend, rom, ext)
}
