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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/jetsetilly/famicore/curated"
)

// RunProfiler runs the supplied function. If profile is true then a CPU
// profile is written while the function runs and a heap profile is written
// after it returns. The filenames are prefixed with filenameHeader.
func RunProfiler(profile bool, filenameHeader string, run func() error) error {
	if !profile {
		return run()
	}

	f, err := os.Create(fmt.Sprintf("%s_cpu.profile", filenameHeader))
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	err = pprof.StartCPUProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	err = run()
	pprof.StopCPUProfile()
	if err != nil {
		return err
	}

	return memProfile(fmt.Sprintf("%s_mem.profile", filenameHeader))
}

func memProfile(outFile string) error {
	f, err := os.Create(outFile)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}
	defer f.Close()

	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	return nil
}
