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

package execution

import (
	"fmt"

	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
)

// Result records the state/result of the last instruction executed by the
// CPU.
type Result struct {
	// the address of the opcode
	Address uint16

	// the instruction definition of the opcode
	Defn instructions.Definition

	// the number of bytes read during decode. should equal Defn.Bytes() once
	// the instruction is finalised
	ByteCount int

	// the operand of the instruction. an 8 bit or 16 bit value depending on
	// the addressing mode
	InstructionData uint16

	// number of cycles consumed by the instruction
	Cycles int

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Operand returns the instruction data formatted according to the addressing
// mode.
func (r Result) Operand() string {
	var data string

	switch r.Defn.AddressingMode.Bytes() {
	case 1:
		if r.ByteCount < 2 {
			data = "$??"
		} else {
			data = fmt.Sprintf("$%02x", r.InstructionData)
		}
	case 2:
		if r.ByteCount < 3 {
			data = "$????"
		} else {
			data = fmt.Sprintf("$%04x", r.InstructionData)
		}
	}

	switch r.Defn.AddressingMode {
	case instructions.Accumulator:
		data = "A"
	case instructions.Immediate:
		data = fmt.Sprintf("#%s", data)
	case instructions.Relative:
		// show the branch target rather than the offset
		if r.ByteCount == 2 {
			next := r.Address + 2
			data = fmt.Sprintf("$%04x", uint16(int32(next)+int32(int8(r.InstructionData))))
		}
	case instructions.Indirect:
		data = fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		data = fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		data = fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		data = fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		data = fmt.Sprintf("%s,Y", data)
	}

	return data
}

func (r Result) String() string {
	cycles := "[v]"
	if r.Final {
		cycles = fmt.Sprintf("[%d]", r.Cycles)
	}
	return fmt.Sprintf("%#04x\t%s\t%s\t%s", r.Address, r.Defn.Mnemonic, r.Operand(), cycles)
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return fmt.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.ByteCount != r.Defn.Bytes() {
		return fmt.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes())
	}

	if r.Cycles != r.Defn.Cycles {
		return fmt.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
			r.Defn.OpCode,
			r.Defn.Mnemonic,
			r.Cycles,
			r.Defn.Cycles)
	}

	return nil
}
