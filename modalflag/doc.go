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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// The arguments are first given to the Modes type with NewArgs() and then
// parsed with Parse(). Flags are added before each call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP", "DISASM")
//	verbose := md.AddBool("log", false, "echo log to stdout")
//
// A mode is a command line argument that puts the program into a different
// mode of operation, each with its own set of flags and expected arguments.
// After Parse() the Mode() function returns the selected mode. The first
// sub-mode is the default if no mode is specified on the command line.
// Sub-mode comparisons are case insensitive.
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 60, "number of frames to run")
//		p, err := md.Parse()
//		...
//	}
//
// The second call to Parse() only processes the arguments following the
// mode selector. Modes can be chained as deep as required and Path() returns
// the series of modes that have been selected.
package modalflag
