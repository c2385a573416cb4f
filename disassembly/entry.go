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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/famicore/hardware/cpu/execution"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/hardware/memory"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
	"github.com/jetsetilly/famicore/hardware/memory/memorymap"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte point is a valid
// instruction. Blessed entries meanwhile have been reached according to the
// flow of the instructions from one of the interrupt vectors.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown"
}

// Entry is a disassembled instruction. It is a representation of
// execution.Result.
type Entry struct {
	Level EntryLevel

	// the decoded instruction. Result.Final is false if the instruction is
	// undefined or if the operand runs off the end of the program
	Result execution.Result

	// label for the address of the instruction. empty if the address is not
	// the target of any flow control
	Label string

	// string representations of information in execution.Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func newEntry(result execution.Result, data []uint8) *Entry {
	e := &Entry{
		Result:  result,
		Address: fmt.Sprintf("%04x", result.Address),
	}

	b := strings.Builder{}
	for i, v := range data {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteString(fmt.Sprintf("%02x", v))
	}
	e.Bytecode = b.String()

	if !result.Defn.IsDefined() {
		e.Operator = "???"
		return e
	}

	e.Operator = result.Defn.Mnemonic.String()
	e.Operand = symbolic(result)

	return e
}

func (e *Entry) String() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s %s", e.Address, e.Operator)
	}
	return fmt.Sprintf("%s %s %s", e.Address, e.Operator, e.Operand)
}

// symbolic returns the operand of the result, substituting the name of any
// hardware register that is addressed directly.
func symbolic(result execution.Result) string {
	if !result.Final {
		return result.Operand()
	}

	switch result.Defn.AddressingMode {
	case instructions.Absolute, instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
	default:
		return result.Operand()
	}

	// JMP and JSR always refer to program addresses
	switch result.Defn.Mnemonic {
	case instructions.JMP, instructions.JSR:
		return result.Operand()
	}

	var name string

	address := result.InstructionData
	switch {
	case address >= memorymap.OriginPPU && address <= memorymap.MemtopPPUMirror:
		name = string(cpubus.PPURegisters[address&0x07])
	case address == memory.DMA:
		name = "OAMDMA"
	default:
		return result.Operand()
	}

	switch result.Defn.AddressingMode {
	case instructions.AbsoluteIndexedX:
		name = fmt.Sprintf("%s,X", name)
	case instructions.AbsoluteIndexedY:
		name = fmt.Sprintf("%s,Y", name)
	}

	return name
}
