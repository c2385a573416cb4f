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

// Package registers implements the three types of registers found in the
// 6502-style CPU. The 8 bit Register is used for the accumulator and the two
// index registers. The 16 bit ProgramCounter and StackPointer, and the
// special purpose StatusRegister.
//
// Arithmetic and logical operations on the Register type return the carry
// and overflow states as appropriate. The CPU uses these return values to
// update the StatusRegister. The registers do not update the status register
// themselves.
//
// The stack pointer is a 16 bit counter rather than an 8 bit value confined to
// page one. It is initialised to the top of page one and so behaves like the
// hardware unless a program pushes more than 256 bytes.
package registers
