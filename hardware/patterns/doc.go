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

// Package patterns decodes the pattern bytes of a cartridge into 8x8 tiles of
// two bit colour indices.
//
// Each tile is stored as 16 bytes, two bit-planes of eight bytes each. For
// row i of the tile, byte i is the low plane and byte i+8 is the high plane.
// The most significant bit is the leftmost pixel.
package patterns
