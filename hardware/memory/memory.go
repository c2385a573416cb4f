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

package memory

import (
	"fmt"

	"github.com/jetsetilly/famicore/bits"
	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
	"github.com/jetsetilly/famicore/hardware/memory/memorymap"
)

// Registers is implemented by the PPU. Offset is the offset from the origin
// of the PPU register window and is always in the range 0 to 7.
type Registers interface {
	ReadRegister(offset uint16) (uint8, error)
	WriteRegister(offset uint16, data uint8) error

	// PeekRegister returns the value that would be returned by
	// ReadRegister() but without any side effects
	PeekRegister(offset uint16) uint8
}

// SpriteDMA is an optional extension of the Registers interface. Writing to
// the DMA address copies a page of memory to the sprite memory of the PPU.
type SpriteDMA interface {
	SpriteDMA(data []uint8) error
}

// DMA is the IO address that starts a sprite DMA. The value written is the
// high byte of the page to be copied.
const DMA = uint16(0x4014)

// Memory is the CPU bus. It implements the cpubus.Memory interface.
type Memory struct {
	RAM          *Area
	IO           *Area
	ExpansionROM *Area
	ExpansionRAM *Area

	// program ROM is supplied by the cartridge. program is empty until
	// AttachCartridge() is called
	program []uint8

	// the PPU register window. nil until AttachRegisters() is called
	registers Registers
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		RAM:          NewArea("RAM", memorymap.OriginRAM, int(memorymap.MemtopRAM-memorymap.OriginRAM)+1, false),
		IO:           NewArea("IO", memorymap.OriginIO, int(memorymap.MemtopIO-memorymap.OriginIO)+1, false),
		ExpansionROM: NewArea("Expansion ROM", memorymap.OriginExpansionROM, int(memorymap.MemtopExpansionROM-memorymap.OriginExpansionROM)+1, true),
		ExpansionRAM: NewArea("Expansion RAM", memorymap.OriginExpansionRAM, int(memorymap.MemtopExpansionRAM-memorymap.OriginExpansionRAM)+1, false),
	}
}

func (mem *Memory) String() string {
	return fmt.Sprintf("RAM: %d bytes, program: %d bytes", len(mem.RAM.data), len(mem.program))
}

// Reset contents of all writable areas.
func (mem *Memory) Reset() {
	mem.RAM.Reset()
	mem.IO.Reset()
	mem.ExpansionRAM.Reset()
}

// AttachCartridge copies the program data into program ROM. Data smaller than
// the program ROM area is mirrored to fill the area.
func (mem *Memory) AttachCartridge(program []uint8) {
	mem.program = make([]uint8, len(program))
	copy(mem.program, program)
}

// AttachRegisters connects the PPU register window to the memory bus.
func (mem *Memory) AttachRegisters(r Registers) {
	mem.registers = r
}

// readProgram returns the program ROM byte for a normalised address.
func (mem *Memory) readProgram(address uint16) (uint8, error) {
	if len(mem.program) == 0 {
		return 0, curated.Errorf(cpubus.Unimplemented, address)
	}
	return mem.program[int(address-memorymap.OriginProgramROM)%len(mem.program)], nil
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Read(ma)
	case memorymap.PPU:
		if mem.registers == nil {
			return 0, curated.Errorf(cpubus.Unimplemented, address)
		}
		return mem.registers.ReadRegister(ma - memorymap.OriginPPU)
	case memorymap.IO:
		return mem.IO.Read(ma)
	case memorymap.ExpansionROM:
		return mem.ExpansionROM.Read(ma)
	case memorymap.ExpansionRAM:
		return mem.ExpansionRAM.Read(ma)
	case memorymap.ProgramROM:
		return mem.readProgram(ma)
	}

	return 0, curated.Errorf(cpubus.OutOfRange, address)
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.RAM:
		return mem.RAM.Write(ma, data)
	case memorymap.PPU:
		if mem.registers == nil {
			return curated.Errorf(cpubus.Unimplemented, address)
		}
		return mem.registers.WriteRegister(ma-memorymap.OriginPPU, data)
	case memorymap.IO:
		if err := mem.IO.Write(ma, data); err != nil {
			return err
		}
		if ma == DMA {
			return mem.spriteDMA(data)
		}
		return nil
	case memorymap.ExpansionROM:
		return curated.Errorf(cpubus.ReadOnly, address)
	case memorymap.ExpansionRAM:
		return mem.ExpansionRAM.Write(ma, data)
	case memorymap.ProgramROM:
		return curated.Errorf(cpubus.ReadOnly, address)
	}

	return curated.Errorf(cpubus.OutOfRange, address)
}

// spriteDMA copies the page to the PPU if the PPU supports it.
func (mem *Memory) spriteDMA(page uint8) error {
	dma, ok := mem.registers.(SpriteDMA)
	if !ok {
		return nil
	}

	data := make([]uint8, 256)
	origin := uint16(page) << 8
	for i := range data {
		v, err := mem.Read(origin + uint16(i))
		if err != nil {
			return err
		}
		data[i] = v
	}

	return dma.SpriteDMA(data)
}

// Read16 returns the little-endian 16 bit value at address and address+1.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return bits.Word(lo, hi), nil
}

// Peek returns the value at address without side effects.
func (mem *Memory) Peek(address uint16) (uint8, error) {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.PPU:
		if mem.registers == nil {
			return 0, curated.Errorf(cpubus.Unimplemented, address)
		}
		return mem.registers.PeekRegister(ma - memorymap.OriginPPU), nil
	case memorymap.ExpansionROM:
		return mem.ExpansionROM.Peek(ma)
	}

	return mem.Read(address)
}

// Poke writes data to address. Unlike Write() read-only RAM areas will be
// altered. The PPU register window and program ROM cannot be poked.
func (mem *Memory) Poke(address uint16, data uint8) error {
	ma, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.ExpansionROM:
		return mem.ExpansionROM.Poke(ma, data)
	case memorymap.PPU:
		return curated.Errorf(cpubus.Unimplemented, address)
	}

	return mem.Write(address, data)
}
