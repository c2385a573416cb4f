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

// Package ppu emulates the picture processing unit of the console. The PPU
// is driven by the console with a budget of PPU cycles after every CPU
// instruction. The PPU runs at three times the speed of the CPU.
//
// The PPU is presented to the CPU as a window of eight registers. The PPU
// type implements the memory.Registers interface and is attached to the
// memory bus by the console.
//
// Rendering happens one scanline at a time. A scanline is rendered when the
// cycle counter reaches the end of the scanline. The pixels of the scanline
// are sent to the FrameBuffer implementation given to NewPPU().
package ppu
