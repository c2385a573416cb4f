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

// Package disassembly coordinates the disassembly of cartridge program ROM.
//
// Every byte of the program is first decoded as though it were the start of
// an instruction. Entries are then blessed by following the flow of the
// program from the interrupt vectors: an entry is blessed if it is reached
// by falling through from the preceding blessed instruction or if it is the
// target of a jump, subroutine call or branch.
//
// For quick disassemblies the FromCartridge() function can be used.
//
//	dsm, err := disassembly.FromCartridge(cart)
//	if err != nil {
//		return err
//	}
//	dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: true})
package disassembly
