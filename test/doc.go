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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a test error but allow the test to
// continue. The Demand*() functions are the same except that they are fatal.
// Use Demand*() when later parts of the test depend on the value being
// correct. For example, testing the length of a slice before iterating over
// it.
//
// Success and failure are interpreted according to the type of the value:
//
//	bool -> true is success
//	error -> nil is success
//
// An untyped nil is considered a success because of how errors are usually
// returned.
//
// The CompareWriter type implements the io.Writer interface and should be
// used to capture output for comparison with a predefined string.
package test
