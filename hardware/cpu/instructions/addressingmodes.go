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

package instructions

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

// Bytes returns the number of operand bytes that follow the opcode for the
// addressing mode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect:
		return 2
	}
	return 1
}

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "implied"
	case Accumulator:
		return "accumulator"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	case ZeroPage:
		return "zero page"
	case Indirect:
		return "indirect"
	case IndexedIndirect:
		return "indexed indirect"
	case IndirectIndexed:
		return "indirect indexed"
	case AbsoluteIndexedX:
		return "absolute indexed X"
	case AbsoluteIndexedY:
		return "absolute indexed Y"
	case ZeroPageIndexedX:
		return "zero page indexed X"
	case ZeroPageIndexedY:
		return "zero page indexed Y"
	}
	return "unknown"
}
