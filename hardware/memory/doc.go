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

// Package memory implements the memory bus of the console as seen from the
// CPU. The Memory type satisfies the cpubus.Memory interface and routes every
// address to the area that backs it, using the memorymap package to resolve
// mirrors.
//
// RAM, the IO registers, expansion RAM and expansion ROM are owned by the
// Memory type. Program ROM is supplied by the cartridge with the
// AttachCartridge() function. The PPU register window is not owned by Memory
// and is instead reached through the Registers interface. This means that
// writes from the CPU and reads by the PPU itself see the same register
// state.
//
// Reads and writes that cannot be honoured return curated errors with one of
// the sentinel patterns defined in the cpubus package. For example, writing to
// program ROM:
//
//	err := mem.Write(0x8000, 0x00)
//	if curated.Is(err, cpubus.ReadOnly) {
//		...
//	}
//
// The Peek() and Poke() functions access memory without triggering side
// effects in the PPU registers and are intended for debugging.
package memory
