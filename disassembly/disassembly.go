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

	"github.com/jetsetilly/famicore/cartridgeloader"
	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/cpu/execution"
	"github.com/jetsetilly/famicore/hardware/cpu/instructions"
	"github.com/jetsetilly/famicore/hardware/memory/memorymap"
)

// Disassembly represents the annotated disassembly of the program ROM.
type Disassembly struct {
	program []uint8

	// one entry for every byte in the program
	Entries []*Entry
}

// FromCartridge initialises a new disassembly of the cartridge's program.
func FromCartridge(cart cartridgeloader.Cartridge) (*Disassembly, error) {
	return FromProgram(cart.Program)
}

// FromProgram disassembles the program data. The program is assumed to be
// mirrored across the program ROM area in the same way as it is by the
// memory bus.
func FromProgram(program []uint8) (*Disassembly, error) {
	if len(program) == 0 {
		return nil, curated.Errorf("disassembly: no program data")
	}

	if len(program) > int(memorymap.MemtopProgramROM-memorymap.OriginProgramROM)+1 {
		return nil, curated.Errorf("disassembly: program too large (%d bytes)", len(program))
	}

	dsm := &Disassembly{
		program: make([]uint8, len(program)),
		Entries: make([]*Entry, len(program)),
	}
	copy(dsm.program, program)

	for i := range dsm.program {
		dsm.Entries[i] = dsm.decode(i)
	}

	dsm.bless()

	return dsm, nil
}

func (dsm *Disassembly) String() string {
	return fmt.Sprintf("%d bytes, %d instructions", len(dsm.program), dsm.Count(EntryLevelBlessed))
}

// decode the instruction at the program offset. instructions do not wrap
// around to the start of the program.
func (dsm *Disassembly) decode(offset int) *Entry {
	opcode := dsm.program[offset]
	defn := instructions.Lookup(opcode)

	result := execution.Result{
		Address:   memorymap.OriginProgramROM + uint16(offset),
		Defn:      defn,
		ByteCount: 1,
	}

	end := offset + defn.Bytes()
	if !defn.IsDefined() || end > len(dsm.program) {
		return newEntry(result, dsm.program[offset:offset+1])
	}

	for i := 1; i < defn.Bytes(); i++ {
		result.InstructionData |= uint16(dsm.program[offset+i]) << (8 * (i - 1))
		result.ByteCount++
	}
	result.Cycles = defn.Cycles
	result.Final = true

	return newEntry(result, dsm.program[offset:end])
}

// offset returns the program offset for a CPU address. returns false if the
// address is not in the program ROM area.
func (dsm *Disassembly) offset(address uint16) (int, bool) {
	if address < memorymap.OriginProgramROM {
		return 0, false
	}
	return int(address-memorymap.OriginProgramROM) % len(dsm.program), true
}

// Get returns the entry for the CPU address. Addresses in the mirrored areas
// of the program ROM return the entry for the primary address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	o, ok := dsm.offset(address)
	if !ok {
		return nil, false
	}
	return dsm.Entries[o], true
}

// Count returns the number of entries at or above the specified level.
func (dsm *Disassembly) Count(level EntryLevel) int {
	n := 0
	for _, e := range dsm.Entries {
		if e.Level >= level {
			n++
		}
	}
	return n
}
