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

package vram

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/famicore/cartridgeloader"
	"github.com/jetsetilly/famicore/curated"
	"github.com/jetsetilly/famicore/hardware/memory/cpubus"
	"github.com/jetsetilly/famicore/hardware/patterns"
)

// Video memory address ranges.
const (
	OriginPatterns   = uint16(0x0000)
	MemtopPatterns   = uint16(0x1fff)
	OriginBackground = uint16(0x2000)
	MemtopBackground = uint16(0x3eff)
	OriginPalette    = uint16(0x3f00)
	MemtopPalette    = uint16(0x3fff)

	// the address space is 14 bits wide
	AddressMask = uint16(0x3fff)
)

// Memory is the video memory address space.
type Memory struct {
	patterns *patterns.Store

	// physical tables. only two are used unless the mirroring is FourScreen
	tables [4]Background

	// quadrants refer to the physical tables
	quadrants [4]*Background

	mirroring cartridgeloader.Mirroring

	Palette PaletteTable
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(pat *patterns.Store, mirroring cartridgeloader.Mirroring) *Memory {
	mem := &Memory{
		patterns:  pat,
		mirroring: mirroring,
	}

	switch mirroring {
	case cartridgeloader.Vertical:
		mem.quadrants = [4]*Background{&mem.tables[0], &mem.tables[1], &mem.tables[0], &mem.tables[1]}
	case cartridgeloader.FourScreen:
		mem.quadrants = [4]*Background{&mem.tables[0], &mem.tables[1], &mem.tables[2], &mem.tables[3]}
	default:
		mem.quadrants = [4]*Background{&mem.tables[0], &mem.tables[0], &mem.tables[1], &mem.tables[1]}
	}

	return mem
}

func (mem *Memory) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s mirroring\n", mem.mirroring))
	s.WriteString(fmt.Sprintf("palette: %s\n", mem.Palette))
	return s.String()
}

// Reset clears the background tables and the palette. The pattern data is
// unchanged.
func (mem *Memory) Reset() {
	mem.tables = [4]Background{}
	mem.Palette = PaletteTable{}
}

// Quadrant returns the background table for quadrant n.
func (mem *Memory) Quadrant(n int) *Background {
	return mem.quadrants[n&0x03]
}

// Patterns returns the pattern store attached to the video memory.
func (mem *Memory) Patterns() *patterns.Store {
	return mem.patterns
}

// background maps an address in the background range to a quadrant and an
// offset in that quadrant.
func background(address uint16) (int, uint16) {
	address = (address - OriginBackground) & 0x0fff
	return int(address / BackgroundLength), address % BackgroundLength
}

// Read the byte at address. The address is masked to 14 bits.
func (mem *Memory) Read(address uint16) (uint8, error) {
	address &= AddressMask

	switch {
	case address <= MemtopPatterns:
		return mem.patterns.Read(address)
	case address <= MemtopBackground:
		q, offset := background(address)
		return mem.quadrants[q].Read(offset)
	}

	return mem.Palette.Read((address - OriginPalette) % PaletteTableLength)
}

// Write the byte at address. The address is masked to 14 bits. Pattern data
// is read only.
func (mem *Memory) Write(address uint16, data uint8) error {
	address &= AddressMask

	switch {
	case address <= MemtopPatterns:
		return curated.Errorf(cpubus.ReadOnly, address)
	case address <= MemtopBackground:
		q, offset := background(address)
		return mem.quadrants[q].Write(offset, data)
	}

	return mem.Palette.Write((address-OriginPalette)%PaletteTableLength, data)
}
