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

// Package instructions defines the instruction set of the CPU. Opcodes are
// decoded through a 16x16 table indexed by the high and low nibbles of the
// opcode byte. A parallel 16x16 table gives the base cycle cost of each
// opcode.
//
// The Lookup() function combines both tables into a Definition, which is the
// type used by the CPU, the disassembler and the execution trace.
//
// Opcodes that are not part of the official instruction set decode to the
// Undefined mnemonic.
package instructions
