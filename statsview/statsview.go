// This file is part of Famicore.
//
// Famicore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famicore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famicore.  If not, see <https://www.gnu.org/licenses/>.

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statsview HTTP server.
const Address = "localhost:12600"

// one sample per second, ten minutes of history
const (
	interval  = 1000
	maxPoints = 600
)

// Launch the stats server in a new goroutine and print the URL of the charts
// to output.
func Launch(output io.Writer) {
	viewer.SetConfiguration(
		viewer.WithAddr(Address),
		viewer.WithInterval(interval),
		viewer.WithMaxPoints(maxPoints),
	)

	mgr := statsview.New()
	go mgr.Start()

	fmt.Fprintf(output, "stats: http://%s/debug/statsview\n", Address)
}

// Available returns true if the stats server has been compiled in.
func Available() bool {
	return true
}
