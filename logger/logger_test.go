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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/famicore/logger"
	"github.com/jetsetilly/famicore/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.CompareWriter buffer before continuing, makes comparisons
	// easier to manage
	tw.Clear()

	logger.Logf(logger.Allow, "test2", "this is %s test", "another")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))

	// repeated entries are collapsed
	tw.Clear()
	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test (repeat x2)\n"))

	// permission denied
	tw.Clear()
	logger.Log(logger.Deny, "denied", "should not appear")
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test (repeat x2)\n"))
}

func TestEcho(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}
	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "echo", "hello")
	test.ExpectSuccess(t, tw.Compare("echo: hello\n"))
}
