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

// Package statsview serves live runtime charts of the emulator process (heap,
// goroutines, GC pauses) using "github.com/go-echarts/statsview".
//
// The server is only compiled when the statsview build tag is given:
//
//	go build -tags statsview
//
// Without the tag Launch() prints a notice and Available() returns false. The
// famicore -statsview flag calls Launch() before the emulation starts. Charts
// are then at:
//
//	http://localhost:12600/debug/statsview
//
// and the standard pprof endpoints at /debug/pprof/ on the same address.
package statsview
