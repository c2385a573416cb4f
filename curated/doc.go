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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	const ReadOnly = "read only address (%#04x)"
//
//	e := curated.Errorf(ReadOnly, 0x8000)
//
//	if curated.Is(e, ReadOnly) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("cpu: %v", e)
//
//	if curated.Has(f, ReadOnly) {
//		fmt.Println("true")
//	}
//
// In this example curated.Is(f, ReadOnly) would be false because the error f
// has the pattern "cpu: %v".
//
// Sentinel patterns are stored as const strings, suitably named and
// commented. The error taxonomy of the emulated hardware is defined this way
// in the cpubus package.
//
// The Error() function ensures that the error chain does not contain
// duplicate adjacent parts. Parts are separated by the sub-string ": ". This
// means that a function can wrap an error with its own prefix without
// worrying whether the error was already prefixed in the same way. For
// example:
//
//	memory: memory: read only address (0x8000)
//
// is printed as:
//
//	memory: read only address (0x8000)
package curated
