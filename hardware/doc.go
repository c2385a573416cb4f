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

// Package hardware is the base package for the console emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Console type is the root of the emulation and contains external
// references to the CPU, the memory bus and the PPU. The Step() function
// executes one CPU instruction and then advances the PPU by three PPU cycles
// for every CPU cycle consumed. The Run() and RunForFrameCount() functions
// call Step() repeatedly.
//
// A cartridge must be attached with AttachCartridge() before the emulation
// can be run.
package hardware
