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

package cpubus

// Register is the canonical name of an address in the PPU register window.
type Register string

// List of PPU registers. Indexed by the offset from the origin of the
// register window.
var PPURegisters = [8]Register{
	"PPUCTRL",
	"PPUMASK",
	"PPUSTATUS",
	"OAMADDR",
	"OAMDATA",
	"PPUSCROLL",
	"PPUADDR",
	"PPUDATA",
}
