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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case IO:
		return "IO"
	case ExpansionROM:
		return "Expansion ROM"
	case ExpansionRAM:
		return "Expansion RAM"
	case ProgramROM:
		return "Program ROM"
	}

	return "undefined"
}

// The different memory areas in the console.
const (
	Undefined Area = iota
	RAM
	PPU
	IO
	ExpansionROM
	ExpansionRAM
	ProgramROM
)

// Policy describes how a region responds to reads and writes.
type Policy int

func (p Policy) String() string {
	switch p {
	case ReadWrite:
		return "read-write"
	case ReadOnly:
		return "read-only"
	case Registers:
		return "registers"
	case Mirror:
		return "mirror"
	}

	return "unbacked"
}

// List of region policies. Registers are read-write in general but each
// address can have its own behaviour, including being write-only or
// read-only.
const (
	Unbacked Policy = iota
	ReadWrite
	ReadOnly
	Registers
	Mirror
)

// The origin and memory top for each area of memory.
//
// Implementations of the different memory areas may need to drag the address
// down into the range of an array. This is done by subtracting the origin.
const (
	OriginRAM          = uint16(0x0000)
	MemtopRAM          = uint16(0x07ff)
	OriginRAMMirror    = uint16(0x0800)
	MemtopRAMMirror    = uint16(0x1fff)
	OriginPPU          = uint16(0x2000)
	MemtopPPU          = uint16(0x2007)
	OriginPPUMirror    = uint16(0x2008)
	MemtopPPUMirror    = uint16(0x3fff)
	OriginIO           = uint16(0x4000)
	MemtopIO           = uint16(0x401f)
	OriginExpansionROM = uint16(0x4020)
	MemtopExpansionROM = uint16(0x5fff)
	OriginExpansionRAM = uint16(0x6000)
	MemtopExpansionRAM = uint16(0x7fff)
	OriginProgramROM   = uint16(0x8000)
	MemtopProgramROM   = uint16(0xffff)
)

// Memtop is the top most address of memory.
const Memtop = MemtopProgramROM

// Region is a contiguous range of addresses with a single policy.
type Region struct {
	Origin uint16
	Memtop uint16
	Area   Area
	Policy Policy
}

// Contains returns true if address is inside the region.
func (r Region) Contains(address uint16) bool {
	return address >= r.Origin && address <= r.Memtop
}

func (r Region) String() string {
	if r.Policy == Mirror {
		return r.Area.String() + " (mirror)"
	}
	return r.Area.String()
}

// Regions is the complete list of regions in the address space, in address
// order.
var Regions = []Region{
	{Origin: OriginRAM, Memtop: MemtopRAM, Area: RAM, Policy: ReadWrite},
	{Origin: OriginRAMMirror, Memtop: MemtopRAMMirror, Area: RAM, Policy: Mirror},
	{Origin: OriginPPU, Memtop: MemtopPPU, Area: PPU, Policy: Registers},
	{Origin: OriginPPUMirror, Memtop: MemtopPPUMirror, Area: PPU, Policy: Mirror},
	{Origin: OriginIO, Memtop: MemtopIO, Area: IO, Policy: Registers},
	{Origin: OriginExpansionROM, Memtop: MemtopExpansionROM, Area: ExpansionROM, Policy: ReadOnly},
	{Origin: OriginExpansionRAM, Memtop: MemtopExpansionRAM, Area: ExpansionRAM, Policy: ReadWrite},
	{Origin: OriginProgramROM, Memtop: MemtopProgramROM, Area: ProgramROM, Policy: ReadOnly},
}

// Lookup returns the region containing address. The second return value is
// false if no region contains the address.
func Lookup(address uint16) (Region, bool) {
	for _, r := range Regions {
		if r.Contains(address) {
			return r, true
		}
	}
	return Region{}, false
}

// MapAddress translates the address argument from mirror space to primary
// space. Returns the Undefined area if the address is in no region.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address <= MemtopRAMMirror {
		return address % (MemtopRAM + 1), RAM
	}

	if address <= MemtopPPUMirror {
		return OriginPPU + (address-OriginPPU)%(MemtopPPU-OriginPPU+1), PPU
	}

	if address >= OriginProgramROM {
		return address, ProgramROM
	}

	if address >= OriginExpansionRAM {
		return address, ExpansionRAM
	}

	if address >= OriginExpansionROM {
		return address, ExpansionROM
	}

	if address >= OriginIO {
		return address, IO
	}

	return address, Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
