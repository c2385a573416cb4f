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

// Package vram implements the video memory of the PPU: the name tables, the
// attribute tables, the palette table and the address space that joins them
// together with the pattern data of the cartridge.
//
// The address space as seen through the PPU data register:
//
//	0x0000 - 0x1fff	pattern data (read only)
//	0x2000 - 0x2fff	four background tables of 0x400 bytes
//	0x3000 - 0x3eff	mirror of 0x2000 - 0x2eff
//	0x3f00 - 0x3fff	palette table (mirrored every 0x20 bytes)
//
// Each background table is a name table of 0x3c0 bytes followed by an
// attribute table of 0x40 bytes. The four tables are arranged as quadrants:
//
//	| 0 | 1 |
//	| 2 | 3 |
//
// Only two physical tables exist unless the cartridge asks for four screen
// mirroring. How the quadrants share the physical tables is decided by the
// mirroring of the cartridge.
package vram
