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


//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/gym2600/logger"
)

// sampling interval in milliseconds. sessions are long so there is no need
// for the library's default rate
const interval = 1000

// number of samples shown in each chart
const maxPoints = 120

// Launch starts the statsview server in a new goroutine. The returned function
// stops the server.
func Launch(output io.Writer) func() {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithInterval(interval),
		viewer.WithMaxPoints(maxPoints),
	)
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "launched at %s%s", Address, Path)
	if output != nil {
		fmt.Fprintf(output, "stats server available at %s%s\n", Address, Path)
	}

	return func() {
		mgr.Stop()
		logger.Log(logger.Allow, "statsview", "stopped")
	}
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}
