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

import (
	"fmt"

	"github.com/jetsetilly/famicore/bits"
)

// Entry is a single cell of the opcode table.
type Entry struct {
	Mnemonic       Mnemonic
	AddressingMode AddressingMode
}

// short forms of the addressing modes to keep the table readable
const (
	imp = Implied
	acc = Accumulator
	imm = Immediate
	rel = Relative
	abs = Absolute
	zpg = ZeroPage
	ind = Indirect
	izx = IndexedIndirect
	izy = IndirectIndexed
	abx = AbsoluteIndexedX
	aby = AbsoluteIndexedY
	zpx = ZeroPageIndexedX
	zpy = ZeroPageIndexedY
)

// Table maps the high nibble (first index) and low nibble (second index) of
// an opcode to the instruction mnemonic and addressing mode.
var Table = [16][16]Entry{
	0x0: {0x0: {BRK, imp}, 0x1: {ORA, izx}, 0x5: {ORA, zpg}, 0x6: {ASL, zpg}, 0x8: {PHP, imp}, 0x9: {ORA, imm}, 0xa: {ASL, acc}, 0xd: {ORA, abs}, 0xe: {ASL, abs}},
	0x1: {0x0: {BPL, rel}, 0x1: {ORA, izy}, 0x5: {ORA, zpx}, 0x6: {ASL, zpx}, 0x8: {CLC, imp}, 0x9: {ORA, aby}, 0xd: {ORA, abx}, 0xe: {ASL, abx}},
	0x2: {0x0: {JSR, abs}, 0x1: {AND, izx}, 0x4: {BIT, zpg}, 0x5: {AND, zpg}, 0x6: {ROL, zpg}, 0x8: {PLP, imp}, 0x9: {AND, imm}, 0xa: {ROL, acc}, 0xc: {BIT, abs}, 0xd: {AND, abs}, 0xe: {ROL, abs}},
	0x3: {0x0: {BMI, rel}, 0x1: {AND, izy}, 0x5: {AND, zpx}, 0x6: {ROL, zpx}, 0x8: {SEC, imp}, 0x9: {AND, aby}, 0xd: {AND, abx}, 0xe: {ROL, abx}},
	0x4: {0x0: {RTI, imp}, 0x1: {EOR, izx}, 0x5: {EOR, zpg}, 0x6: {LSR, zpg}, 0x8: {PHA, imp}, 0x9: {EOR, imm}, 0xa: {LSR, acc}, 0xc: {JMP, abs}, 0xd: {EOR, abs}, 0xe: {LSR, abs}},
	0x5: {0x0: {BVC, rel}, 0x1: {EOR, izy}, 0x5: {EOR, zpx}, 0x6: {LSR, zpx}, 0x8: {CLI, imp}, 0x9: {EOR, aby}, 0xd: {EOR, abx}, 0xe: {LSR, abx}},
	0x6: {0x0: {RTS, imp}, 0x1: {ADC, izx}, 0x5: {ADC, zpg}, 0x6: {ROR, zpg}, 0x8: {PLA, imp}, 0x9: {ADC, imm}, 0xa: {ROR, acc}, 0xc: {JMP, ind}, 0xd: {ADC, abs}, 0xe: {ROR, abs}},
	0x7: {0x0: {BVS, rel}, 0x1: {ADC, izy}, 0x5: {ADC, zpx}, 0x6: {ROR, zpx}, 0x8: {SEI, imp}, 0x9: {ADC, aby}, 0xd: {ADC, abx}, 0xe: {ROR, abx}},
	0x8: {0x1: {STA, izx}, 0x4: {STY, zpg}, 0x5: {STA, zpg}, 0x6: {STX, zpg}, 0x8: {DEY, imp}, 0xa: {TXA, imp}, 0xc: {STY, abs}, 0xd: {STA, abs}, 0xe: {STX, abs}},
	0x9: {0x0: {BCC, rel}, 0x1: {STA, izy}, 0x4: {STY, zpx}, 0x5: {STA, zpx}, 0x6: {STX, zpy}, 0x8: {TYA, imp}, 0x9: {STA, aby}, 0xa: {TXS, imp}, 0xd: {STA, abx}},
	0xa: {0x0: {LDY, imm}, 0x1: {LDA, izx}, 0x2: {LDX, imm}, 0x4: {LDY, zpg}, 0x5: {LDA, zpg}, 0x6: {LDX, zpg}, 0x8: {TAY, imp}, 0x9: {LDA, imm}, 0xa: {TAX, imp}, 0xc: {LDY, abs}, 0xd: {LDA, abs}, 0xe: {LDX, abs}},
	0xb: {0x0: {BCS, rel}, 0x1: {LDA, izy}, 0x4: {LDY, zpx}, 0x5: {LDA, zpx}, 0x6: {LDX, zpy}, 0x8: {CLV, imp}, 0x9: {LDA, aby}, 0xa: {TSX, imp}, 0xc: {LDY, abx}, 0xd: {LDA, abx}, 0xe: {LDX, aby}},
	0xc: {0x0: {CPY, imm}, 0x1: {CMP, izx}, 0x4: {CPY, zpg}, 0x5: {CMP, zpg}, 0x6: {DEC, zpg}, 0x8: {INY, imp}, 0x9: {CMP, imm}, 0xa: {DEX, imp}, 0xc: {CPY, abs}, 0xd: {CMP, abs}, 0xe: {DEC, abs}},
	0xd: {0x0: {BNE, rel}, 0x1: {CMP, izy}, 0x5: {CMP, zpx}, 0x6: {DEC, zpx}, 0x8: {CLD, imp}, 0x9: {CMP, aby}, 0xd: {CMP, abx}, 0xe: {DEC, abx}},
	0xe: {0x0: {CPX, imm}, 0x1: {SBC, izx}, 0x4: {CPX, zpg}, 0x5: {SBC, zpg}, 0x6: {INC, zpg}, 0x8: {INX, imp}, 0x9: {SBC, imm}, 0xa: {NOP, imp}, 0xc: {CPX, abs}, 0xd: {SBC, abs}, 0xe: {INC, abs}},
	0xf: {0x0: {BEQ, rel}, 0x1: {SBC, izy}, 0x5: {SBC, zpx}, 0x6: {INC, zpx}, 0x8: {SED, imp}, 0x9: {SBC, aby}, 0xd: {SBC, abx}, 0xe: {INC, abx}},
}

// Cycles is the base cycle cost of each opcode, indexed in the same way as
// Table. Undefined opcodes cost zero cycles.
var Cycles = [16][16]int{
	//   0  1  2  3  4  5  6  7  8  9  a  b  c  d  e  f
	0x0: {7, 6, 0, 0, 0, 3, 5, 0, 3, 2, 2, 0, 0, 4, 6, 0},
	0x1: {2, 5, 0, 0, 0, 4, 6, 0, 2, 4, 0, 0, 0, 4, 7, 0},
	0x2: {6, 6, 0, 0, 3, 3, 5, 0, 4, 2, 2, 0, 4, 4, 6, 0},
	0x3: {2, 5, 0, 0, 0, 4, 6, 0, 2, 4, 0, 0, 0, 4, 7, 0},
	0x4: {6, 6, 0, 0, 0, 3, 5, 0, 3, 2, 2, 0, 3, 4, 6, 0},
	0x5: {2, 5, 0, 0, 0, 4, 6, 0, 2, 4, 0, 0, 0, 4, 7, 0},
	0x6: {6, 6, 0, 0, 0, 3, 5, 0, 4, 2, 2, 0, 5, 4, 6, 0},
	0x7: {2, 5, 0, 0, 0, 4, 6, 0, 2, 4, 0, 0, 0, 4, 7, 0},
	0x8: {0, 6, 0, 0, 3, 3, 3, 0, 2, 0, 2, 0, 4, 4, 4, 0},
	0x9: {2, 6, 0, 0, 4, 4, 4, 0, 2, 5, 2, 0, 0, 5, 0, 0},
	0xa: {2, 6, 2, 0, 3, 3, 3, 0, 2, 2, 2, 0, 4, 4, 4, 0},
	0xb: {2, 5, 0, 0, 4, 4, 4, 0, 2, 4, 2, 0, 4, 4, 4, 0},
	0xc: {2, 6, 0, 0, 3, 3, 5, 0, 2, 2, 2, 0, 4, 4, 6, 0},
	0xd: {2, 5, 0, 0, 0, 4, 6, 0, 2, 4, 0, 0, 0, 4, 7, 0},
	0xe: {2, 6, 0, 0, 3, 3, 5, 0, 2, 2, 2, 0, 4, 4, 6, 0},
	0xf: {2, 5, 0, 0, 0, 4, 6, 0, 2, 4, 0, 0, 0, 4, 7, 0},
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       Mnemonic
	AddressingMode AddressingMode
	Cycles         int
}

// Lookup decodes an opcode into its Definition.
func Lookup(opcode uint8) Definition {
	hi, lo := bits.Nibbles(opcode)
	e := Table[hi][lo]
	return Definition{
		OpCode:         opcode,
		Mnemonic:       e.Mnemonic,
		AddressingMode: e.AddressingMode,
		Cycles:         Cycles[hi][lo],
	}
}

// Bytes returns the total length of the instruction, including the opcode.
func (defn Definition) Bytes() int {
	return 1 + defn.AddressingMode.Bytes()
}

// IsDefined returns false if the opcode is not part of the instruction set.
func (defn Definition) IsDefined() bool {
	return defn.Mnemonic != Undefined
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.Mnemonic.IsBranch()
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if !defn.IsDefined() {
		return fmt.Sprintf("%02x undefined instruction", defn.OpCode)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [%s]", defn.OpCode, defn.Mnemonic, defn.Bytes(), defn.Cycles, defn.AddressingMode)
}
