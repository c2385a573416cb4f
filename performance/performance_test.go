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

package performance_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/famicore/performance"
	"github.com/jetsetilly/famicore/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(120, 2*time.Second)
	test.ExpectEquality(t, fps, 60.0)
	test.ExpectEquality(t, accuracy > 99.8 && accuracy < 100.0, true)

	fps, accuracy = performance.CalcFPS(10, 0)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestRunProfiler(t *testing.T) {
	ran := false
	err := performance.RunProfiler(false, "", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ran, true)

	header := filepath.Join(t.TempDir(), "test")
	err = performance.RunProfiler(true, header, func() error {
		return nil
	})
	test.ExpectSuccess(t, err)

	_, err = os.Stat(header + "_cpu.profile")
	test.ExpectSuccess(t, err)
	_, err = os.Stat(header + "_mem.profile")
	test.ExpectSuccess(t, err)
}
